package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError for callers that need to branch on outcome
// rather than on a specific code.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuth           Kind = "auth"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindExternal       Kind = "external_processor"
	KindPartialFailure Kind = "partial_failure"
	KindInternal       Kind = "internal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Kind       Kind           `json:"-"`
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"` // Exposed to the caller as-is
	Err        error          `json:"-"`                 // Wrapped internal error (not exposed to client)
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

// WithDetails returns a copy of e carrying the given key/value.
func (e *AppError) WithDetails(key string, value any) *AppError {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf reports the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ---- Validation (VAL / PAY) ----

// Validation returns a VAL_001 error for malformed or missing input.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("Amount must be greater than zero")
}

func ErrInsufficientFunds() *AppError {
	return New(KindValidation, "PAY_001", "Amount exceeds available wallet balance", http.StatusUnprocessableEntity)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(KindAuth, "SEC_001", "Invalid signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(KindAuth, "SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(KindAuth, "SEC_003", "Caller is not allowed to perform this action", http.StatusForbidden)
}

// ---- Resources & State (RES / STA) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Conflict signals a violated state precondition.
func Conflict(message string) *AppError {
	return New(KindConflict, "STA_001", message, http.StatusConflict)
}

// ---- External processor (EXT) ----

// ExternalProcessor reports a rejected or failed processor call. raw is the
// upstream response body, surfaced to operators for diagnosis.
func ExternalProcessor(message string, raw []byte, err error) *AppError {
	e := Wrap(KindExternal, "EXT_001", message, http.StatusBadGateway, err)
	if len(raw) > 0 {
		e.Details = map[string]any{"raw": rawJSON(raw)}
	}
	return e
}

// ---- Reconciliation (REC) ----

// PartialFailure reports that an irreversible external side effect succeeded
// but the local record of it did not commit. details must carry whatever an
// operator needs to reconcile (transfer code, reference, checkout URL).
func PartialFailure(message string, details map[string]any, err error) *AppError {
	e := Wrap(KindPartialFailure, "REC_001", message, http.StatusInternalServerError, err)
	e.Details = details
	return e
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindValidation, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(KindInternal, "SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
