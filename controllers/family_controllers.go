package controllers

import (
	"rentmag/dto"
	"rentmag/response"
	"rentmag/services"
	"rentmag/validator"

	"github.com/gin-gonic/gin"
)

type FamilyController struct {
	familyService *services.FamilyService
}

func NewFamilyController(familyService *services.FamilyService) *FamilyController {
	return &FamilyController{familyService: familyService}
}

// CreateFamily handles POST /families.
func (ctrl *FamilyController) CreateFamily(c *gin.Context) {
	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateCreateFamily(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	family, err := ctrl.familyService.CreateFamily(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, family)
}

// GetFamilies handles GET /families.
func (ctrl *FamilyController) GetFamilies(c *gin.Context) {
	families, err := ctrl.familyService.FetchFamilies()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, families)
}

// GetFamilyDetail handles GET /families/:id.
func (ctrl *FamilyController) GetFamilyDetail(c *gin.Context) {
	familyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	family, err := ctrl.familyService.FetchFamily(familyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, family)
}

// AssignRoom handles PUT /families/:id/room.
func (ctrl *FamilyController) AssignRoom(c *gin.Context) {
	familyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := ctrl.familyService.AssignRoom(familyID, req.RoomID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

// ChangeRoom handles PUT /families/:id/changeRoom.
func (ctrl *FamilyController) ChangeRoom(c *gin.Context) {
	familyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	family, err := ctrl.familyService.ChangeRoom(familyID, req.RoomID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, family)
}
