package authservice

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/twinj/uuid"
)

type Token struct {
	Value     string
	SessionID string
	ExpiresAt time.Time
}

type Tokenizer interface {
	Generate(userID uint64, username string) (Token, error)
}

type tokenizer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenizer issues HS256 tokens that NewHMACVerifier, given the same
// secret, issuer and audience, accepts.
func NewTokenizer(secret []byte, issuer, audience string) Tokenizer {
	return &tokenizer{
		secret:   append([]byte(nil), secret...),
		issuer:   issuer,
		audience: audience,
	}
}

var (
	uuidV4  = uuid.NewV4
	timeNow = time.Now
)

func (t *tokenizer) Generate(userID uint64, username string) (Token, error) {
	id := uuidV4().String()
	now := timeNow()
	expiry := now.Add(AccessTokenExpiry())

	claims := &Claims{
		UserID:       userID,
		UserIDCamel:  userID,
		Username:     username,
		SessionToken: id,
		Issuer:       t.issuer,
		IssuedAt:     now.Unix(),
		ExpiresAt:    expiry.Unix(),
	}
	if t.audience != "" {
		claims.Audience = Audience{t.audience}
	}

	hash, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return Token{}, err
	}

	return Token{Value: hash, SessionID: id, ExpiresAt: expiry}, nil
}

func AccessTokenExpiry() time.Duration {
	return time.Hour * 24
}
