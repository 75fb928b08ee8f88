// Package apierr defines the error taxonomy shared by every core operation.
// Each error carries an HTTP-like status code and a machine-readable kind;
// failures are raised at the point of detection and propagate to the caller
// unchanged.
package apierr

import "errors"

// Error kinds.
const (
	KindArticleNotFound    = "ARTICLE_NOT_FOUND"
	KindProductNotFound    = "PRODUCT_NOT_FOUND"
	KindOrderNotFound      = "ORDER_NOT_FOUND"
	KindUserNotFound       = "USER_NOT_FOUND"
	KindInvalidCredentials = "INVALID_CREDENTIALS"
	KindSessionInvalid     = "SESSION_INVALID"
	KindSessionExpired     = "SESSION_EXPIRED"
	KindForbidden          = "FORBIDDEN"
	KindInsufficientStock  = "INSUFFICIENT_STOCK"
	KindSimulatedFailure   = "SIMULATED_FAILURE"
)

type Error struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, kind, message string) *Error {
	return &Error{Status: status, Kind: kind, Message: message}
}

func NotFound(kind, message string) *Error {
	return New(404, kind, message)
}

// As unwraps err into an *Error, or nil if err is not one.
func As(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind string) bool {
	if apiErr := As(err); apiErr != nil {
		return apiErr.Kind == kind
	}
	return false
}
