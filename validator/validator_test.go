package validator

import (
	"testing"

	"rentmag/dto"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateCreateRoom(t *testing.T) {
	valid := dto.RoomRequest{Name: "Room A", Price: 5000}
	assert.NoError(t, ValidateCreateRoom(&valid))

	missingName := dto.RoomRequest{Price: 5000}
	assert.Error(t, ValidateCreateRoom(&missingName))

	negativePrice := dto.RoomRequest{Name: "Room A", Price: -1}
	assert.Error(t, ValidateCreateRoom(&negativePrice))
}

func TestValidateCreateFamily(t *testing.T) {
	valid := dto.CreateFamilyRequest{
		Name:           "Smith",
		SourceOfIncome: "Employment",
		MembersList: []dto.MemberRequest{
			{Name: "Anna", Email: strPtr("anna@example.com"), BirthDay: "1990-04-12"},
		},
	}
	assert.NoError(t, ValidateCreateFamily(&valid))

	noMembers := valid
	noMembers.MembersList = nil
	assert.Error(t, ValidateCreateFamily(&noMembers))

	badEmail := valid
	badEmail.MembersList = []dto.MemberRequest{
		{Name: "Anna", Email: strPtr("not-an-email"), BirthDay: "1990-04-12"},
	}
	assert.Error(t, ValidateCreateFamily(&badEmail))

	badBirthDay := valid
	badBirthDay.MembersList = []dto.MemberRequest{
		{Name: "Anna", BirthDay: "12/04/1990"},
	}
	assert.Error(t, ValidateCreateFamily(&badBirthDay))
}

func TestValidateInvoiceStatus(t *testing.T) {
	assert.NoError(t, ValidateInvoiceStatus(&dto.UpdateInvoiceStatusRequest{Status: "PAID"}))
	assert.NoError(t, ValidateInvoiceStatus(&dto.UpdateInvoiceStatusRequest{Status: "PENDING"}))
	assert.Error(t, ValidateInvoiceStatus(&dto.UpdateInvoiceStatusRequest{Status: "CANCELLED"}))
	assert.Error(t, ValidateInvoiceStatus(&dto.UpdateInvoiceStatusRequest{Status: ""}))
}
