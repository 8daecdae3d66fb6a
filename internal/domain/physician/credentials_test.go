package physician

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodes_LoginCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := RandomCodes{}.LoginCode()
		require.NoError(t, err)
		require.Len(t, code, 8)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000000)
		assert.LessOrEqual(t, n, 99999999)
	}
}

func TestRandomCodes_ResetToken(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	for i := 0; i < 200; i++ {
		tok, err := RandomCodes{}.ResetToken()
		require.NoError(t, err)
		assert.Regexp(t, re, tok)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)

	assert.NotEqual(t, "segredo123", hash)
	assert.True(t, CheckPassword(hash, "segredo123"))
	assert.False(t, CheckPassword(hash, "segredo124"))
	assert.False(t, CheckPassword("", "segredo123"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "AB12CD", NormalizeResetToken(" ab12cd\n"))
}

func TestTokensEqual(t *testing.T) {
	assert.True(t, TokensEqual("AB12CD", "AB12CD"))
	assert.False(t, TokensEqual("AB12CD", "AB12CE"))
	assert.False(t, TokensEqual("AB12CD", ""))
}
