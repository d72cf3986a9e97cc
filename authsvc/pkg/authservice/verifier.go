package authservice

import (
	"context"
	"crypto/rsa"
	"errors"
	"strings"

	stdjwt "github.com/dgrijalva/jwt-go"
	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	"github.com/ichigozero/todogrpc/authsvc"
)

// Verifier resolves the caller identity from an "authorization" value of the
// form "Bearer <token>".
type Verifier interface {
	Verify(ctx context.Context, authorization string) (authsvc.Identity, error)
}

type VerifierOption func(*jwtVerifier)

func WithIssuer(issuer string) VerifierOption {
	return func(v *jwtVerifier) { v.expect.issuer = issuer }
}

func WithAudience(audience string) VerifierOption {
	return func(v *jwtVerifier) { v.expect.audience = audience }
}

// InsecureSkipExpiry accepts expired tokens. Only for testing against
// fixed fixtures.
func InsecureSkipExpiry() VerifierOption {
	return func(v *jwtVerifier) { v.expect.skipExpiry = true }
}

type jwtVerifier struct {
	keyFunc stdjwt.Keyfunc
	method  stdjwt.SigningMethod
	expect  expectations
}

// NewHMACVerifier verifies HS256 tokens signed with a shared secret.
func NewHMACVerifier(secret []byte, options ...VerifierOption) Verifier {
	key := append([]byte(nil), secret...)
	return newJWTVerifier(
		func(*stdjwt.Token) (interface{}, error) { return key, nil },
		stdjwt.SigningMethodHS256,
		options,
	)
}

// NewRSAVerifier verifies RS256 tokens against a public key.
func NewRSAVerifier(key *rsa.PublicKey, options ...VerifierOption) Verifier {
	return newJWTVerifier(
		func(*stdjwt.Token) (interface{}, error) { return key, nil },
		stdjwt.SigningMethodRS256,
		options,
	)
}

// NewRSAVerifierFromPEM accepts either a PKIX public key or an X.509
// certificate in PEM form.
func NewRSAVerifierFromPEM(pem []byte, options ...VerifierOption) (Verifier, error) {
	key, err := stdjwt.ParseRSAPublicKeyFromPEM(pem)
	if err != nil {
		return nil, err
	}
	return NewRSAVerifier(key, options...), nil
}

func newJWTVerifier(kf stdjwt.Keyfunc, method stdjwt.SigningMethod, options []VerifierOption) *jwtVerifier {
	v := &jwtVerifier{keyFunc: kf, method: method}
	for _, option := range options {
		option(v)
	}
	return v
}

func (v *jwtVerifier) Verify(ctx context.Context, authorization string) (authsvc.Identity, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return authsvc.Identity{}, err
	}

	ctx = context.WithValue(ctx, kitjwt.JWTTokenContextKey, token)
	parse := kitjwt.NewParser(v.keyFunc, v.method, v.claims)(identify)

	response, err := parse(ctx, nil)
	switch {
	case err == nil:
		return response.(authsvc.Identity), nil
	case errors.Is(err, kitjwt.ErrTokenContextMissing):
		return authsvc.Identity{}, authsvc.ErrMissingCredentials
	case errors.Is(err, authsvc.ErrMalformedClaims):
		return authsvc.Identity{}, authsvc.ErrMalformedClaims
	}
	return authsvc.Identity{}, authsvc.ErrInvalidCredentials
}

func (v *jwtVerifier) claims() stdjwt.Claims {
	return &Claims{expect: v.expect}
}

func identify(ctx context.Context, _ interface{}) (interface{}, error) {
	claims, ok := ctx.Value(kitjwt.JWTClaimsContextKey).(*Claims)
	if !ok {
		return nil, authsvc.ErrMalformedClaims
	}
	return claims.Identity()
}

const bearer = "bearer"

// BearerToken extracts the token from an authorization value. The scheme is
// matched case-insensitively.
func BearerToken(authorization string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(authorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearer) {
		return "", authsvc.ErrMissingCredentials
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", authsvc.ErrMissingCredentials
	}
	return token, nil
}

// NewAuthenticator rejects requests whose context carries no valid token and
// stores the verified identity for the wrapped endpoint. The token is put in
// the context by kitjwt.GRPCToContext or kitjwt.HTTPToContext.
func NewAuthenticator(v Verifier) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			token, ok := ctx.Value(kitjwt.JWTTokenContextKey).(string)
			if !ok {
				return nil, authsvc.ErrMissingCredentials
			}

			id, err := v.Verify(ctx, bearer+" "+token)
			if err != nil {
				return nil, err
			}

			return next(authsvc.NewContext(ctx, id), request)
		}
	}
}
