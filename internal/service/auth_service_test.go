package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/config"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		AdminUsername: "hradmin",
		AdminPassword: "letmein",
		JWTSecret:     "test-secret",
	})
}

func TestLoginAndValidate(t *testing.T) {
	svc := testAuthService()

	resp, err := svc.Login("hradmin", "letmein")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.AdminID)

	claims, err := svc.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AdminID, claims.AdminID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testAuthService()

	_, err := svc.Login("hradmin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("someone", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	svc := testAuthService()

	_, err := svc.ValidateAdminToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAdminTokenRejectsForeignSecret(t *testing.T) {
	svc := testAuthService()
	other := NewAuthService(&config.Config{
		AdminUsername: "hradmin",
		AdminPassword: "letmein",
		JWTSecret:     "different-secret",
	})

	resp, err := other.Login("hradmin", "letmein")
	require.NoError(t, err)

	_, err = svc.ValidateAdminToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
