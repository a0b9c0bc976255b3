// Package errors provides structured domain errors with localized messages.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Authorization
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// Recovery
	CodeAlreadyVoted     Code = "ALREADY_VOTED"
	CodeInvalidCandidate Code = "INVALID_CANDIDATE"

	// Allowance and execution
	CodeExceedsAllowance   Code = "EXCEEDS_ALLOWANCE"
	CodeDataNotAllowed     Code = "DATA_NOT_ALLOWED"
	CodeSelfCallNotAllowed Code = "SELF_CALL_NOT_ALLOWED"
	CodeDispatchFailed     Code = "DISPATCH_FAILED"
	CodeInsufficientFunds  Code = "INSUFFICIENT_FUNDS"

	// Lifecycle
	CodeNotInitialized     Code = "NOT_INITIALIZED"
	CodeAlreadyInitialized Code = "ALREADY_INITIALIZED"

	// Input
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidAddress  Code = "INVALID_ADDRESS"
	CodeInvalidAmount   Code = "INVALID_AMOUNT"
	CodeInvalidFilter   Code = "INVALID_FILTER"

	// Storage
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps a domain code to the gRPC status code the transport returns.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeUnauthorized:
		return codes.PermissionDenied
	case CodeUnauthenticated:
		return codes.Unauthenticated
	case CodeInvalidArgument,
		CodeInvalidAddress,
		CodeInvalidAmount,
		CodeInvalidFilter,
		CodeInvalidCandidate,
		CodeDataNotAllowed,
		CodeSelfCallNotAllowed:
		return codes.InvalidArgument
	case CodeAlreadyVoted,
		CodeAlreadyInitialized:
		return codes.AlreadyExists
	case CodeExceedsAllowance,
		CodeInsufficientFunds,
		CodeNotInitialized:
		return codes.FailedPrecondition
	case CodeDispatchFailed:
		return codes.Aborted
	case CodeNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}
