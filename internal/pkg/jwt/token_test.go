package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "tebengan",
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, models.RoleDriver, testJWTConfig)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, testJWTConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "driver", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), models.RolePassenger, testJWTConfig)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testJWTConfig.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := models.JWTConfig{Secret: "test-secret", Expiration: -1, Issuer: "tebengan"}

	token, _, err := GenerateToken(uuid.New(), models.RoleDriver, expired)
	require.NoError(t, err)

	_, err = ValidateToken(token, expired.Secret)
	assert.Error(t, err)
}
