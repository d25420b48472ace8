package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden       = errors.New("forbidden")
	ErrPrecondition    = errors.New("precondition failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrWorkflowAborted = errors.New("workflow aborted")
	ErrPaymentDeclined = errors.New("payment declined")
	ErrStatementFailed = errors.New("statement failed")
)

// ForbiddenError роль пользователя не совпадает с ролью, требуемой для операции.
type ForbiddenError struct {
	Actor    Role
	Required Role
}

func NewForbiddenError(actor, required Role) error {
	return &ForbiddenError{Actor: actor, Required: required}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role `%s` is not allowed, `%s` required", e.Actor, e.Required)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
