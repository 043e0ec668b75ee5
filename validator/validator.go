package validator

import (
	"regexp"
	"time"

	"rentmag/constants"
	"rentmag/dto"
	"rentmag/errors"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateCreateRoom checks the create/update room payload.
func ValidateCreateRoom(req *dto.RoomRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room name is required", nil)
	}
	if len(req.Name) > 255 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room name must be at most 255 characters", nil)
	}
	if len(req.Description) > 255 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room description must be at most 255 characters", nil)
	}
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room price must not be negative", nil)
	}
	return nil
}

// ValidateCreateFamily checks the family payload including its member list.
func ValidateCreateFamily(req *dto.CreateFamilyRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Family name is required", nil)
	}
	if req.SourceOfIncome == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Source of income is required", nil)
	}
	if len(req.MembersList) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one member is required", nil)
	}

	for _, member := range req.MembersList {
		if member.Name == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Member name is required", nil)
		}
		if member.Email != nil && !emailRegex.MatchString(*member.Email) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid member email: "+*member.Email, nil)
		}
		if member.Mobile != nil && !mobileRegex.MatchString(*member.Mobile) {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid member mobile: "+*member.Mobile, nil)
		}
		if member.BirthDay == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Member birthDay is required", nil)
		}
		if _, err := time.Parse("2006-01-02", member.BirthDay); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Member birthDay must be YYYY-MM-DD", err)
		}
	}
	return nil
}

// ValidateRegister checks the registration payload.
func ValidateRegister(req *dto.RegisterRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}
	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !emailRegex.MatchString(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	if len(req.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	return nil
}

// ValidateInvoiceStatus checks the invoice status update payload.
func ValidateInvoiceStatus(req *dto.UpdateInvoiceStatusRequest) error {
	if req.Status == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Status is required", nil)
	}
	if !constants.IsValidInvoiceStatus(req.Status) {
		return errors.NewAppError(errors.ErrCodeValidation, "Status must be PENDING or PAID", nil)
	}
	return nil
}
