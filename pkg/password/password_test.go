package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

func TestHashYVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash, "nunca se guarda la contraseña en claro")

	assert.NoError(t, password.Verify(hash, "admin123"))
	assert.ErrorIs(t, password.Verify(hash, "otra"), password.ErrMismatch)
}

func TestVerify_HashVacio(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "admin123"), password.ErrMismatch)
}

func TestVerify_HashCorrupto(t *testing.T) {
	err := password.Verify("no-es-bcrypt", "admin123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}

func TestHash_SuperaLimiteDeBcrypt(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", password.MaxBytes+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.Hash(strings.Repeat("a", password.MaxBytes))
	assert.NoError(t, err)
}
