package domain

import "errors"

// Code is the outcome tag handed to the presentation layer.
type Code string

const (
	CodeSuccess               Code = "success"
	CodeValidation            Code = "validation_error"
	CodeInvalidAmount         Code = "invalid_amount"
	CodeUserNotFound          Code = "user_not_found"
	CodeDuplicateUser         Code = "duplicate_user"
	CodeInsufficientFunds     Code = "insufficient_funds"
	CodeSameParty             Code = "same_party"
	CodePrivilegedRecipient   Code = "quant_independence_violation"
	CodeSelfDealing           Code = "self_dealing_violation"
	CodeOfferNotFound         Code = "offer_not_found"
	CodeNoParticipants        Code = "no_participants"
	CodeSessionConflict       Code = "session_conflict"
	CodeSessionExpired        Code = "session_expired"
	CodeInvalidCredentials    Code = "invalid_credentials"
	CodeForbidden             Code = "unauthorized"
	CodeOperationFailed       Code = "operation_failed"
	CodeOfferCreated          Code = "offer_created"
	CodeOfferDenied           Code = "offer_denied"
	CodeRedistributionSkipped Code = "market_closed"
)

type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error carrying the same code, so wrapped copies still
// satisfy errors.Is against the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrValidation          = &Error{Code: CodeValidation, Message: "invalid input"}
	ErrInvalidAmount       = &Error{Code: CodeInvalidAmount, Message: "amount must be positive"}
	ErrUserNotFound        = &Error{Code: CodeUserNotFound, Message: "user not found"}
	ErrDuplicateUser       = &Error{Code: CodeDuplicateUser, Message: "username already exists"}
	ErrInsufficientFunds   = &Error{Code: CodeInsufficientFunds, Message: "insufficient funds"}
	ErrSameParty           = &Error{Code: CodeSameParty, Message: "sender and recipient must differ"}
	ErrPrivilegedRecipient = &Error{Code: CodePrivilegedRecipient, Message: "privileged account cannot accept direct payments"}
	ErrOfferNotFound       = &Error{Code: CodeOfferNotFound, Message: "no matching pending offer"}
	ErrNoParticipants      = &Error{Code: CodeNoParticipants, Message: "no performers or audience members found"}
	ErrSessionConflict     = &Error{Code: CodeSessionConflict, Message: "session already active for user"}
	ErrSessionExpired      = &Error{Code: CodeSessionExpired, Message: "session expired"}
	ErrInvalidCredentials  = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	ErrForbidden           = &Error{Code: CodeForbidden, Message: "privileged access required"}
	ErrOperationFailed     = &Error{Code: CodeOperationFailed, Message: "operation failed"}
)

// Validation returns ErrValidation with a specific message.
func Validation(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

// InvalidAmount returns ErrInvalidAmount with a specific message.
func InvalidAmount(msg string) error {
	return &Error{Code: CodeInvalidAmount, Message: msg}
}

// OperationFailed wraps a store failure that aborted a mutation.
func OperationFailed(cause error) error {
	if cause == nil {
		return nil
	}
	var e *Error
	if errors.As(cause, &e) {
		return cause
	}
	return &Error{Code: CodeOperationFailed, Message: ErrOperationFailed.Message, cause: cause}
}

// CodeOf returns the outcome tag for err. Errors outside the closed set map
// to CodeOperationFailed.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeOperationFailed
}
