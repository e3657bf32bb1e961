package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Principal kinds carried in token claims.
const (
	KindOwner      = "owner"
	KindShopkeeper = "shopkeeper"
)

// Claims represents the JWT claims structure. A shopkeeper token carries
// the owning store's id in OwnerID; for an owner token OwnerID equals
// SubjectID.
type Claims struct {
	SubjectID    uuid.UUID `json:"subject_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Kind         string    `json:"kind"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	TokenVersion string    `json:"token_version,omitempty"`
	jwt.RegisteredClaims
}

// GetSecretKey returns the JWT secret from environment or a default
func GetSecretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-super-secret-key-change-in-production"
	}
	return []byte(secret)
}

// GenerateOwnerToken creates a token for a store owner session
func GenerateOwnerToken(ownerID uuid.UUID, email, name, tokenVersion string) (string, error) {
	return generate(ownerID, ownerID, KindOwner, email, name, tokenVersion)
}

// GenerateShopkeeperToken creates a token for a delegated shopkeeper
// session, carrying the owner back-reference.
func GenerateShopkeeperToken(shopkeeperID, ownerID uuid.UUID, email, name string) (string, error) {
	return generate(shopkeeperID, ownerID, KindShopkeeper, email, name, "")
}

func generate(subjectID, ownerID uuid.UUID, kind, email, name, tokenVersion string) (string, error) {
	expirationHours := 24 // Token valid for 24 hours

	claims := &Claims{
		SubjectID:    subjectID,
		OwnerID:      ownerID,
		Kind:         kind,
		Email:        email,
		Name:         name,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-storepos",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return GetSecretKey(), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
