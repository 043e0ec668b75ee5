package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeRoomOccupied     ErrorCode = "ROOM_OCCUPIED"
	ErrCodeFamilyAssigned   ErrorCode = "FAMILY_ASSIGNED"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError carries an error code alongside the message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("User not found.")
	ErrUserAlreadyExists = errors.New("User with the email already exists.")
	ErrInvalidPassword   = errors.New("Invalid email or password.")
	ErrUnauthorized      = errors.New("Unauthorized.")

	// Room errors
	ErrRoomNotFound = errors.New("Room not found.")
	ErrRoomOccupied = errors.New("Room already occupied.")

	// Family errors
	ErrFamilyNotFound        = errors.New("Family not found.")
	ErrFamilyAlreadyAssigned = errors.New("Family already assigned to a room.")
	ErrFamilyAlreadyInRoom   = errors.New("Family already assigned the room.")
	ErrNoActiveOccupancy     = errors.New("No active occupancy found.")

	// Invoice errors
	ErrInvoiceNotFound      = errors.New("Invoice not found.")
	ErrInvalidInvoiceStatus = errors.New("Invalid invoice status.")
)
