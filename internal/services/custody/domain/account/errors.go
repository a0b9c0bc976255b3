package account

import (
	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/services/custody/domain/command"
)

var (
	// ErrUnauthorized indicates the caller lacks the role the operation needs.
	ErrUnauthorized = apperrors.New(apperrors.CodeUnauthorized, "caller is not authorized")
	// ErrAlreadyVoted indicates a repeat vote within the active proposal.
	ErrAlreadyVoted = apperrors.New(apperrors.CodeAlreadyVoted, "guardian already voted")
	// ErrExceedsAllowance indicates a spend beyond the remaining budget.
	ErrExceedsAllowance = apperrors.New(apperrors.CodeExceedsAllowance, "amount exceeds allowance")
	// ErrDataNotAllowed indicates a delegate sent call data.
	ErrDataNotAllowed = apperrors.New(apperrors.CodeDataNotAllowed, "delegates may not send call data")
	// ErrSelfCallNotAllowed indicates a delegate targeted the account itself.
	ErrSelfCallNotAllowed = apperrors.New(apperrors.CodeSelfCallNotAllowed, "delegates may not call the account")
	// ErrDispatchFailed indicates the outgoing call failed.
	ErrDispatchFailed = apperrors.New(apperrors.CodeDispatchFailed, "dispatch failed")
	// ErrInvalidCandidate indicates a zero candidate.
	ErrInvalidCandidate = apperrors.New(apperrors.CodeInvalidCandidate, "candidate must not be zero")
	// ErrNotInitialized indicates a command before genesis.
	ErrNotInitialized = apperrors.New(apperrors.CodeNotInitialized, "account is not initialized")
	// ErrAlreadyInitialized indicates a second genesis.
	ErrAlreadyInitialized = apperrors.New(apperrors.CodeAlreadyInitialized, "account is already initialized")
	// ErrInvalidArgument indicates a malformed command payload.
	ErrInvalidArgument = apperrors.New(apperrors.CodeInvalidArgument, "invalid argument")
)

func reject(code apperrors.Code, message string) command.Decision {
	return command.Reject(command.Rejection{Code: string(code), Message: message})
}
