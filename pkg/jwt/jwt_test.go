package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/sgi-guatemart/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "sgi-guatemart-test"
)

var testSession = pkgjwt.Session{
	UserID:      7,
	Username:    "bodega1",
	DisplayName: "Carlos Pérez",
	Role:        "Operador de Bodega",
	RoleID:      2,
}

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSession, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	s, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSession, s)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSession, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testSession, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testSession, time.Hour)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestJWT_SinUsuario_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, pkgjwt.Session{Role: "Administrador"}, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin user_id no es una sesión válida")
}
