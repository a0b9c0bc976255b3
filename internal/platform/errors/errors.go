package errors

import (
	stderrors "errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/custody/internal/platform/errors/i18n"
)

const domain = "github.com/louisbranch/custody"

// Error is a custody failure tagged with a stable Code. Params fill the
// localized message template for that code.
type Error struct {
	Code    Code
	Message string
	Params  map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so sentinels compare by code
// regardless of message.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New returns an error with code and an internal message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap returns an error with code whose chain continues at cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// With sets a template parameter and returns e.
func (e *Error) With(key, value string) *Error {
	if e.Params == nil {
		e.Params = make(map[string]string, 1)
	}
	e.Params[key] = value
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var target *Error
	if stderrors.As(err, &target) {
		return target.Code
	}
	return CodeUnknown
}

// Status renders e as a gRPC status for locale. The status message keeps the
// internal message; the LocalizedMessage detail carries the catalog text.
func (e *Error) Status(locale string) *status.Status {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)
	detailed, err := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   domain,
			Metadata: e.Params,
		},
		&errdetails.LocalizedMessage{
			Locale:  locale,
			Message: i18n.GetCatalog(locale).Format(string(e.Code), e.Params),
		},
	)
	if err != nil {
		return st
	}
	return detailed
}
