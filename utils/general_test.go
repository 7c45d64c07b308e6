package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func TestHashPassword_VerifyHash(t *testing.T) {
	hash, err := HashPassword("Password12#")
	require.NoError(t, err)

	assert.NotEqual(t, "Password12#", hash)
	assert.Contains(t, hash, "$argon2id$")

	assert.True(t, VerifyHash("Password12#", hash))
	assert.False(t, VerifyHash("password12#", hash))
	assert.False(t, VerifyHash("", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("Password12#")
	require.NoError(t, err)
	second, err := HashPassword("Password12#")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyHash_BadFormat(t *testing.T) {
	assert.False(t, VerifyHash("Password12#", "not-an-encoded-hash"))
	assert.False(t, VerifyHash("Password12#", "$argon2id$v=19$m=65536,t=3,p=2$short"))
}

func TestCreateJwt_RoundTrip(t *testing.T) {
	key := testKey(t)

	token, err := CreateJwt(JwtConfig{
		User:       "42",
		ExpireIn:   time.Hour,
		Scope:      "basic",
		Subject:    "access",
		Data:       map[string]string{"username": "testuser", "email": "test@email.com"},
		PrivateKey: key,
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "42", claims["user"])
	assert.Equal(t, "access", claims["sub"])
	assert.Equal(t, "basic", claims["scope"])

	data := claims["data"].(map[string]interface{})
	assert.Equal(t, "testuser", data["username"])
	assert.Equal(t, "test@email.com", data["email"])
}

func TestOAuthJwt_PairSubjects(t *testing.T) {
	key := testKey(t)

	pair, err := OAuthJwt("7", "basic", map[string]string{"username": "u"}, key)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	subject := func(raw string) string {
		parsed, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
			return &key.PublicKey, nil
		})
		require.NoError(t, err)
		return parsed.Claims.(jwt.MapClaims)["sub"].(string)
	}

	assert.Equal(t, "access", subject(pair.AccessToken))
	assert.Equal(t, "refresh", subject(pair.RefreshToken))
}
