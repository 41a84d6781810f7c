// Package auth issues and checks the access tokens of back-office accounts.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Tokens signs and validates HS256 access tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokens(secret []byte, issuer string, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, issuer: issuer, ttl: ttl}
}

// Issuer is the iss claim every token carries.
func (t *Tokens) Issuer() string {
	return t.issuer
}

// GenerateToken returns a signed access token whose subject is userID.
func (t *Tokens) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    t.issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signedToken, err := generatedAccessToken.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidatedToken parses encodeToken into *jwt.RegisteredClaims, checking signature,
// expiry and issuer.
func (t *Tokens) ValidatedToken(encodeToken string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !claims.VerifyIssuer(t.issuer, true) {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	return token, nil
}

// UserID reads the subject of validated claims back as a user id.
func UserID(claims *jwt.RegisteredClaims) (uint, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("Invalid token subject %q", claims.Subject)
	}
	return uint(id), nil
}
