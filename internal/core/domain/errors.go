package domain

import "errors"

// Auth errors
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPrincipalNotFound  = errors.New("no account found for email")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// Entity errors
var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrNotTaskAssignee  = errors.New("task is not assigned to this supplier")
)
