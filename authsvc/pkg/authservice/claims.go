package authservice

import (
	"encoding/json"
	"math"
	"strconv"

	stdjwt "github.com/dgrijalva/jwt-go"
	"github.com/ichigozero/todogrpc/authsvc"
)

// Claims is the token payload. The user identifier may arrive under either
// user_id or userId.
type Claims struct {
	UserID       interface{} `json:"user_id,omitempty"`
	UserIDCamel  interface{} `json:"userId,omitempty"`
	Username     string      `json:"username,omitempty"`
	SessionToken string      `json:"sessionToken,omitempty"`
	Issuer       string      `json:"iss,omitempty"`
	Audience     Audience    `json:"aud,omitempty"`
	ExpiresAt    int64       `json:"exp,omitempty"`
	IssuedAt     int64       `json:"iat,omitempty"`
	NotBefore    int64       `json:"nbf,omitempty"`

	expect expectations
}

type expectations struct {
	issuer     string
	audience   string
	skipExpiry bool
}

func (c *Claims) Valid() error {
	now := timeNow().Unix()

	if !c.expect.skipExpiry {
		if c.ExpiresAt == 0 {
			return stdjwt.NewValidationError("token has no expiry", stdjwt.ValidationErrorClaimsInvalid)
		}
		if now >= c.ExpiresAt {
			return stdjwt.NewValidationError("token is expired", stdjwt.ValidationErrorExpired)
		}
	}
	if c.NotBefore != 0 && now < c.NotBefore {
		return stdjwt.NewValidationError("token is not valid yet", stdjwt.ValidationErrorNotValidYet)
	}
	if c.expect.issuer != "" && c.Issuer != c.expect.issuer {
		return stdjwt.NewValidationError("token issuer mismatch", stdjwt.ValidationErrorIssuer)
	}
	if c.expect.audience != "" && !c.Audience.Contains(c.expect.audience) {
		return stdjwt.NewValidationError("token audience mismatch", stdjwt.ValidationErrorAudience)
	}
	return nil
}

func (c *Claims) Identity() (authsvc.Identity, error) {
	raw := c.UserID
	if raw == nil {
		raw = c.UserIDCamel
	}

	id, ok := userID(raw)
	if !ok {
		return authsvc.Identity{}, authsvc.ErrMalformedClaims
	}
	return authsvc.Identity{UserID: id, SessionID: c.SessionToken}, nil
}

// largest integer a JSON number decoded as float64 represents exactly
const maxExactFloat = 1 << 53

func userID(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 1 || n > maxExactFloat || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	case json.Number:
		id, err := strconv.ParseUint(string(n), 10, 64)
		return id, err == nil && id > 0
	case string:
		id, err := strconv.ParseUint(n, 10, 64)
		return id, err == nil && id > 0
	}
	return 0, false
}

// Audience accepts both the single string and the array form of "aud".
type Audience []string

func (a Audience) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

func (a *Audience) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*a = Audience{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*a = many
	return nil
}

func (a Audience) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}
