package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// El token lleva el rol y los locales asignados para que los middlewares y los
// casos de uso no tengan que releer el directorio de usuarios en cada petición:
// la sesión se fija al hacer login y vive lo que viva el token.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username"`
	Rol      string   `json:"rol"`     // "default" | "pedidos" | "proveedores"
	Locales  []string `json:"locales"` // locales asignados al usuario
}

// Generate genera un token JWT firmado que incluye username, rol y locales.
func Generate(secret, username, rol string, locales []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Username: username,
		Rol:      rol,
		Locales:  locales,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve username, rol y locales.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (username, rol string, locales []string, err error) {
	if secret == "" {
		return "", "", nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", nil, fmt.Errorf("claims inválidos")
	}
	return claims.Username, claims.Rol, claims.Locales, nil
}
