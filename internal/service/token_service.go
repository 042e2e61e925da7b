package service

import (
	"fmt"

	"marketplace-payments/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService for HS256 tokens issued by
// the marketplace identity provider.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWT token validator. An empty issuer
// disables the issuer check.
func NewJWTTokenService(secret string, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Validate parses and validates a JWT token, returning the caller.
func (s *JWTTokenService) Validate(tokenString string) (*domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	role, _ := claims["role"].(string)
	switch domain.Role(role) {
	case domain.RoleCustomer, domain.RoleVendor, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	p := &domain.Principal{UserID: userID, Role: domain.Role(role)}
	p.Email, _ = claims["email"].(string)

	if raw, ok := claims["vendor_id"].(string); ok && raw != "" {
		vendorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid vendor ID in token: %w", err)
		}
		p.VendorID = &vendorID
	}
	if p.Role == domain.RoleVendor && p.VendorID == nil {
		return nil, fmt.Errorf("vendor token without vendor_id")
	}

	return p, nil
}
