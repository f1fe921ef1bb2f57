package models

import "fmt"

// Code types reported in the code_type field of error responses.
const (
	CodeValidation         = "validationError"
	CodeNotFound           = "notFound"
	CodeUnauthorized       = "unAuthorized"
	CodeInvalidToken       = "invalidToken"
	CodeForbidden          = "forbidden"
	CodeInternalServer     = "internalServerError"
	CodeInvalidCredentials = "invalidCredentials"
	CodeAdminExists        = "adminAlreadyExists"
	CodeUserExists         = "userAlreadyExists"
)

// ErrorValidation is returned when input is missing a required field or an
// enumerated field holds a value outside its declared set.
type ErrorValidation struct {
	Message  string
	CodeType string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorUnauthorized means no credential was presented.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorInvalidToken means a credential was presented but its signature or
// expiry check failed.
type ErrorInvalidToken struct {
	Message string
}

func (e ErrorInvalidToken) Error() string { return e.Message }

// ErrorForbidden means the token is valid but the subject lacks privilege.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func NewValidationError(format string, args ...any) error {
	return ErrorValidation{Message: fmt.Sprintf(format, args...), CodeType: CodeValidation}
}

func NewNotFoundError(format string, args ...any) error {
	return ErrorNotFound{Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidCredentials = ErrorValidation{Message: "Invalid credentials", CodeType: CodeInvalidCredentials}
	ErrAdminAlreadyExists = ErrorValidation{Message: "Admin user already exists.", CodeType: CodeAdminExists}
	ErrUserAlreadyExists  = ErrorValidation{Message: "User already exists", CodeType: CodeUserExists}
)
