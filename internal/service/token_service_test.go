package service

import (
	"testing"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func baseClaims(sub uuid.UUID, role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  sub.String(),
		"role": role,
		"iss":  "identity",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTTokenService_ValidateVendor(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "identity")
	userID := uuid.New()
	vendorID := uuid.New()

	claims := baseClaims(userID, "vendor")
	claims["vendor_id"] = vendorID.String()
	claims["email"] = "shop@example.com"

	p, err := svc.Validate(signTestToken(t, testJWTSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, domain.RoleVendor, p.Role)
	require.NotNil(t, p.VendorID)
	assert.Equal(t, vendorID, *p.VendorID)
	assert.Equal(t, "shop@example.com", p.Email)
}

func TestJWTTokenService_ValidateCustomer(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "")
	userID := uuid.New()

	p, err := svc.Validate(signTestToken(t, testJWTSecret, baseClaims(userID, "customer")))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, p.Role)
	assert.Nil(t, p.VendorID)
}

func TestJWTTokenService_Rejects(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "identity")
	userID := uuid.New()

	expired := baseClaims(userID, "admin")
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noExp := baseClaims(userID, "admin")
	delete(noExp, "exp")

	wrongIssuer := baseClaims(userID, "admin")
	wrongIssuer["iss"] = "someone-else"

	unknownRole := baseClaims(userID, "driver")

	vendorNoID := baseClaims(userID, "vendor")

	badSub := baseClaims(userID, "admin")
	badSub["sub"] = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signTestToken(t, testJWTSecret, expired)},
		{"missing exp", signTestToken(t, testJWTSecret, noExp)},
		{"wrong issuer", signTestToken(t, testJWTSecret, wrongIssuer)},
		{"unknown role", signTestToken(t, testJWTSecret, unknownRole)},
		{"vendor without vendor_id", signTestToken(t, testJWTSecret, vendorNoID)},
		{"bad subject", signTestToken(t, testJWTSecret, badSub)},
		{"other secret", signTestToken(t, "another-secret", baseClaims(userID, "admin"))},
		{"garbage", "not.a.valid.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims(uuid.New(), "admin")).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.Error(t, err)
}
