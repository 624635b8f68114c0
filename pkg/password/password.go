package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength longitud mínima, en caracteres, aceptada para contraseñas nuevas.
const MinLength = 6

// MaxBytes es el límite de bcrypt: más bytes no se pueden hashear.
const MaxBytes = 72

var (
	// ErrMismatch la contraseña no coincide con el hash almacenado.
	ErrMismatch = errors.New("password: no coincide")
	// ErrTooLong la contraseña supera MaxBytes.
	ErrTooLong = errors.New("password: supera 72 bytes")
)

// Hash genera el hash bcrypt de la contraseña con el costo por defecto.
func Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara la contraseña en claro con el hash.
func Verify(hash, plain string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
