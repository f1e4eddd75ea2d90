package moneydashboard

import (
	"errors"
	"fmt"
)

// Error taxonomy for the client. ErrTokenNotFound wraps
// ErrAuthentication, so callers checking for a failed login also catch
// a landing page missing the anti-forgery field.
var (
	// ErrAuthentication indicates the login handshake failed.
	ErrAuthentication = errors.New("authentication failed")
	// ErrTokenNotFound indicates the landing page had no anti-forgery token field.
	ErrTokenNotFound = fmt.Errorf("%w: verification token not found in landing page", ErrAuthentication)
	// ErrAccountList indicates the account list fetch failed.
	ErrAccountList = errors.New("account list fetch failed")
	// ErrTransactionList indicates the transaction list fetch failed.
	ErrTransactionList = errors.New("transaction list fetch failed")
	// ErrInvalidFilter indicates an unrecognized transaction filter.
	// It is raised before any network call and never wraps another error.
	ErrInvalidFilter = errors.New("invalid transaction filter")
)

// AuthError reports a login handshake that failed mid-flight or was
// rejected by the service. ErrorCode carries the remote rejection code
// when the service answered 2xx with IsSuccess=false.
type AuthError struct {
	Err       error
	ErrorCode string
}

func (e *AuthError) Error() string {
	switch {
	case e.ErrorCode != "":
		return fmt.Sprintf("login rejected by service: %s", e.ErrorCode)
	case e.Err != nil:
		return fmt.Sprintf("login failed: %v", e.Err)
	}
	return "login failed"
}

// Unwrap always exposes ErrAuthentication so errors.Is matches the
// whole authentication failure family.
func (e *AuthError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrAuthentication, e.Err}
	}
	return []error{ErrAuthentication}
}
