package grpc

import (
	"context"
	"strings"
)

// AuthorizationHeader is the metadata key carrying the caller token.
const AuthorizationHeader = "authorization"

// BearerToken attaches a caller token to every outgoing request.
type BearerToken string

// GetRequestMetadata implements credentials.PerRPCCredentials.
func (t BearerToken) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	token := strings.TrimSpace(string(t))
	if token == "" {
		return nil, nil
	}
	return map[string]string{AuthorizationHeader: "Bearer " + token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials. The
// custody API listens on loopback or behind a TLS-terminating proxy.
func (BearerToken) RequireTransportSecurity() bool { return false }

// BearerFromHeader extracts the token from an authorization header value.
func BearerFromHeader(value string) (string, bool) {
	value = strings.TrimSpace(value)
	scheme, token, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
