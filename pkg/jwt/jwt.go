package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session datos de identidad que viajan en la cookie de sesión.
type Session struct {
	UserID      int64
	Username    string
	DisplayName string
	Role        string
	RoleID      int64
}

// Claims incluye los claims estándar JWT más los datos de la sesión.
// El rol va en el token para que el guard decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	RoleID      int64  `json:"role_id"`
}

// Generate genera un token HS256 firmado con la sesión y expiración ttl.
func Generate(secret, issuer string, s Session, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:      s.UserID,
		Username:    s.Username,
		DisplayName: s.DisplayName,
		Role:        s.Role,
		RoleID:      s.RoleID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Session, error) {
	if secret == "" {
		return Session{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return Session{}, fmt.Errorf("claims inválidos")
	}
	return Session{
		UserID:      claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
		RoleID:      claims.RoleID,
	}, nil
}
