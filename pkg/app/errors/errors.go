// Package errors maps service failures onto client-facing categories.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	CategoryNoError Category = iota
	// CategoryDataError means the client sent an invalid payload or parameter
	CategoryDataError
	CategoryUnauthorized
	CategoryForbidden
	CategoryResourceNotFound
	// CategoryDataConflict means the request collides with existing state
	CategoryDataConflict
	// CategoryDependencyFailure means the chain RPC or another upstream failed
	CategoryDependencyFailure
	CategoryGeneralError
	// CategoryRecovering means the relay is saturated or shutting down and
	// the client may retry later
	CategoryRecovering
	CategoryConnectionTimeout
	CategoryRateLimited
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryRecovering:
		return "CategoryRecovering"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	case CategoryRateLimited:
		return "CategoryRateLimited"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries the message returned to the client and the
// underlying error that is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be logged as a server-side failure
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure || svcErr.Category == CategoryRateLimited) {
		return false
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
// message is returned to the user, err is only logged.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// ForbiddenError returns an error with category Forbidden
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "request forbidden")
}

// UnAuthorizedError returns an error with category Unauthorized
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ConflictError returns an error with category DataConflict
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// DependencyError reports an upstream (chain RPC) failure
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}

// UnavailableError tells the client to retry later
func UnavailableError(err error, message string) error {
	return newError(CategoryRecovering, err, message, "service unavailable")
}

// TimeoutError reports an upstream call that ran out of time
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, message, "upstream timeout")
}

// RateLimitedError rejects a client that exceeded its request budget
func RateLimitedError(message string) error {
	return newError(CategoryRateLimited, nil, message, "rate limited")
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryRecovering:
		return http.StatusServiceUnavailable
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
