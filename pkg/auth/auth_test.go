package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const testSecret = "test-secret-key-for-unit-tests"

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(roles ...string) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "covey",
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
		UserID: "user-1",
		Roles:  roles,
	}
}

func TestValidator_HMAC(t *testing.T) {
	v, err := NewValidator(Config{Secret: testSecret, Issuer: "covey"})
	require.NoError(t, err)

	claims, err := v.Validate(signHS256(t, testSecret, validClaims(RoleAnalyst)))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.HasRole(RoleAnalyst))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestValidator_Rejects(t *testing.T) {
	v, err := NewValidator(Config{Secret: testSecret, Issuer: "covey"})
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signHS256(t, testSecret, expired)},
		{"wrong issuer", signHS256(t, testSecret, wrongIssuer)},
		{"missing expiry", signHS256(t, testSecret, noExpiry)},
		{"wrong secret", signHS256(t, "another-secret", validClaims())},
		{"garbage", "not.a.token"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestValidator_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	v, err := NewValidator(Config{PublicKeyPEM: string(pubPEM)})
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims(RoleAdmin)).SignedString(key)
	require.NoError(t, err)

	claims, err := v.Validate(signed)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(RoleAdmin))

	// An HMAC token must not be accepted by an RSA validator.
	_, err = v.Validate(signHS256(t, testSecret, validClaims()))
	assert.Error(t, err)
}

func TestNewValidator_RequiresKey(t *testing.T) {
	_, err := NewValidator(Config{})
	assert.Error(t, err)

	_, err = NewValidator(Config{PublicKeyPEM: "not a pem"})
	assert.Error(t, err)
}

func TestUnaryAuthInterceptor(t *testing.T) {
	v, err := NewValidator(Config{Secret: testSecret})
	require.NoError(t, err)
	intercept := UnaryAuthInterceptor(v, []string{"/grpc.health.v1.Health/Check"})

	var seen *Claims
	handler := func(ctx context.Context, _ interface{}) (interface{}, error) {
		seen, _ = ClaimsFromContext(ctx)
		return "ok", nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/covey.underwriting.v1.UnderwritingService/ListScenarios"}

	t.Run("valid bearer token", func(t *testing.T) {
		md := metadata.Pairs("authorization", "Bearer "+signHS256(t, testSecret, validClaims(RoleViewer)))
		resp, err := intercept(metadata.NewIncomingContext(context.Background(), md), nil, info, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
		require.NotNil(t, seen)
		assert.True(t, seen.HasRole(RoleViewer))
	})

	t.Run("missing header", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})
		_, err := intercept(ctx, nil, info, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("missing metadata", func(t *testing.T) {
		_, err := intercept(context.Background(), nil, info, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("skipped method", func(t *testing.T) {
		skipInfo := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
		resp, err := intercept(context.Background(), nil, skipInfo, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})
}

func TestRequireRoleFor(t *testing.T) {
	const write = "/covey.underwriting.v1.UnderwritingService/CreateScenario"
	guard := RequireRoleFor([]string{write}, RoleAnalyst, RoleAdmin)
	handler := func(context.Context, interface{}) (interface{}, error) { return "ok", nil }

	viewer := validClaims(RoleViewer)
	analyst := validClaims(RoleAnalyst)

	_, err := guard(ContextWithClaims(context.Background(), &viewer), nil,
		&grpc.UnaryServerInfo{FullMethod: write}, handler)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = guard(ContextWithClaims(context.Background(), &analyst), nil,
		&grpc.UnaryServerInfo{FullMethod: write}, handler)
	assert.NoError(t, err)

	_, err = guard(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: write}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err := guard(ContextWithClaims(context.Background(), &viewer), nil,
		&grpc.UnaryServerInfo{FullMethod: "/covey.underwriting.v1.UnderwritingService/ListScenarios"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
