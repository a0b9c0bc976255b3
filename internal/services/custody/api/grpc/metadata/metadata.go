// Package metadata carries custody request headers across gRPC boundaries
// and authenticates callers.
package metadata

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/platform/errors/i18n"
	platformgrpc "github.com/louisbranch/custody/internal/platform/grpc"
	"github.com/louisbranch/custody/internal/platform/id"
	"github.com/louisbranch/custody/internal/platform/requestctx"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
)

// RequestIDHeader is the metadata key for request correlation ids.
const RequestIDHeader = "x-custody-request-id"

// LocaleHeader selects the language of user-facing error messages.
const LocaleHeader = "accept-language"

// Authenticator resolves a bearer token to a caller address.
type Authenticator interface {
	Authenticate(token string) (address.Address, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(token string) (address.Address, error)

// Authenticate implements Authenticator.
func (fn AuthenticatorFunc) Authenticate(token string) (address.Address, error) {
	return fn(token)
}

type localeContextKey struct{}

// LocaleFromContext returns the negotiated locale, defaulting to the base locale.
func LocaleFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, _ := ctx.Value(localeContextKey{}).(string); v != "" {
			return v
		}
	}
	return i18n.BaseLocale
}

// IsPrintableASCII reports whether value contains only printable ASCII.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII value for key.
func FirstMetadataValue(md metadata.MD, key string) string {
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor assigns a request id, negotiates the error locale,
// and authenticates the bearer token when one is sent. A request without a
// token proceeds anonymously; a request with an invalid token is rejected.
func UnaryServerInterceptor(auth Authenticator, idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		requestID := FirstMetadataValue(md, RequestIDHeader)
		if requestID == "" {
			generated, err := idGenerator()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "generate request id: %v", err)
			}
			requestID = generated
		}
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		ctx = requestctx.WithRequestID(ctx, requestID)

		locale := i18n.ResolveLocale(FirstMetadataValue(md, LocaleHeader)).String()
		ctx = context.WithValue(ctx, localeContextKey{}, locale)

		if header := FirstMetadataValue(md, platformgrpc.AuthorizationHeader); header != "" {
			token, ok := platformgrpc.BearerFromHeader(header)
			if !ok {
				return nil, ToStatus(ctx, apperrors.New(apperrors.CodeUnauthenticated, "authorization must be a bearer token"))
			}
			if auth == nil {
				return nil, ToStatus(ctx, apperrors.New(apperrors.CodeUnauthenticated, "caller tokens are not accepted by this server"))
			}
			caller, err := auth.Authenticate(token)
			if err != nil {
				return nil, ToStatus(ctx, err)
			}
			ctx = requestctx.WithCaller(ctx, caller.String())
		}
		return handler(ctx, req)
	}
}

// CallerFromContext returns the authenticated caller or an Unauthenticated error.
func CallerFromContext(ctx context.Context) (address.Address, error) {
	raw := requestctx.CallerFromContext(ctx)
	if raw == "" {
		return address.Address{}, apperrors.New(apperrors.CodeUnauthenticated, "caller token is required")
	}
	caller, err := address.Parse(raw)
	if err != nil {
		return address.Address{}, apperrors.Wrap(apperrors.CodeUnauthenticated, "caller is not an address", err)
	}
	return caller, nil
}

// ToStatus converts err to a gRPC status carrying a localized message for the
// request's locale. Errors that are already statuses pass through.
func ToStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return status.FromContextError(ctxErr).Err()
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		return status.Error(codes.Internal, "internal error")
	}
	return domainErr.Status(LocaleFromContext(ctx)).Err()
}
