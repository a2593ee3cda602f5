package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación del panel. Los mensajes están en castellano
// porque viajan directo a la pantalla de login.
var (
	ErrInvalidCredentials    = errors.New("contraseña incorrecta")
	ErrUserDisabled          = errors.New("cuenta desactivada")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilegios insuficientes")
	ErrUserAlreadyExists     = errors.New("el email ya está registrado")

	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")
	ErrWeakPassword        = errors.New("contraseña débil")
	ErrSamePassword        = errors.New("la contraseña nueva debe ser distinta de la actual")

	ErrUpstreamLogin = errors.New("no se pudo iniciar sesión contra el core")
)

// AuthError agrega el código de API y detalles al error base
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// IsCredentialsError indica si el error corresponde a credenciales inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

// IsAuthorizationError indica si el error corresponde a un problema de sesión
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}
