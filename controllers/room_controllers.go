package controllers

import (
	"strconv"

	"rentmag/dto"
	"rentmag/response"
	"rentmag/services"
	"rentmag/validator"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	roomService   *services.RoomService
	familyService *services.FamilyService
}

func NewRoomController(roomService *services.RoomService, familyService *services.FamilyService) *RoomController {
	return &RoomController{
		roomService:   roomService,
		familyService: familyService,
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// CreateRoom handles POST /rooms.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateCreateRoom(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	room, err := ctrl.roomService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, room)
}

// GetAllRooms handles GET /rooms.
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.roomService.FetchAllRooms(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, rooms)
}

// GetRoomDetail handles GET /rooms/:id.
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.roomService.FetchRoom(roomID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, room)
}

// UpdateRoom handles PUT /rooms/:id.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateCreateRoom(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	room, err := ctrl.roomService.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, room)
}

// DeleteRoom handles DELETE /rooms/:id.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

// AddFamilyToRoom handles POST /rooms/:id/family. Creates the family with its
// members and moves it in atomically.
func (ctrl *RoomController) AddFamilyToRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateCreateFamily(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	family, err := ctrl.familyService.AddFamilyToRoom(roomID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, family)
}
