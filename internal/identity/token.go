package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "gangway/pkg/domain-errors"
)

// Claims represents the JWT claims for employee identity tokens.
type Claims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// TokenService handles identity token creation and validation.
type TokenService struct {
	signingKey []byte
	issuer     string
	audience   string
	ttl        time.Duration
}

// NewTokenService builds a token service with HS256 signing.
func NewTokenService(signingKey, issuer, audience string, ttl time.Duration) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		ttl:        ttl,
	}
}

// Generate mints a signed token for the given identity.
func (s *TokenService) Generate(id Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:      id.UserID.String(),
		Email:       id.Email,
		DisplayName: id.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// Validate parses and verifies a token, returning the embedded identity.
func (s *TokenService) Validate(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience))
	if err != nil || !token.Valid {
		return Identity{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid identity token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "malformed user id claim")
	}
	return Identity{
		UserID:      userID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}

// ValidateToken adapts Validate to the middleware contract, returning the
// subject email.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	id, err := s.Validate(tokenString)
	if err != nil {
		return "", err
	}
	return id.Email, nil
}
