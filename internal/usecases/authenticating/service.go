// Package authenticating maneja las sesiones del panel. Los administradores
// viven en la base local; los profesores se autentican contra el core del
// marketplace. En ambos casos la sesión resultante es un JWT propio.
package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo/studdeoclient"
	"github.com/studdeo/admin-api/infrastructure/repository"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/apiErrors"
	"github.com/studdeo/admin-api/pkg/log"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string, remember bool) (*domain.Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateAdministrator(ctx context.Context, admin *domain.Administrator, password string) (*domain.Administrator, error)
	ListAdministrators(ctx context.Context) ([]*domain.Administrator, error)
	DeactivateAdministrator(ctx context.Context, id int) error
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	GenerateStrongPassword() (string, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	adminRepo  repository.AdministratorRepository
	integrator studdeo.StuddeoIntegrator
	cfg        *config.Config
}

func NewService(
	adminRepo repository.AdministratorRepository,
	integrator studdeo.StuddeoIntegrator,
	cfg *config.Config,
) Authenticator {
	return &Service{
		adminRepo:  adminRepo,
		integrator: integrator,
		cfg:        cfg,
	}
}

// Traducciones de los "detail" que devuelve el core en el login. Cualquier
// detail desconocido cae en el mensaje genérico para no filtrar internals.
var upstreamLoginMessages = map[string]string{
	"Wrong password.": "Contraseña incorrecta.",
	"User not found.": "Usuario no encontrado.",
}

const genericLoginMessage = "No se pudo iniciar sesión. Probá de nuevo en unos minutos."

// Login autentica al usuario. Primero contra la tabla local de
// administradores; si el email no existe ahí, delega en el core. Con
// remember en true la sesión dura 30 días en vez de 24 horas.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email y contraseña son obligatorios")
	}

	email = handleEmail(email)

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el administrador")
	}

	if admin != nil {
		return s.loginAdministrator(admin, password, remember)
	}

	return s.loginUpstream(ctx, email, password, remember)
}

func (s *Service) loginAdministrator(admin *domain.Administrator, password string, remember bool) (*domain.Session, error) {
	if !admin.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, admin.ID, "Cuenta desactivada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, admin.ID, "Contraseña incorrecta.")
	}

	user := domain.User{
		Name:     admin.Name,
		Lastname: admin.Lastname,
		Email:    admin.Email,
		Role:     domain.RoleAdministrator,
	}

	return s.newSession(user, remember)
}

func (s *Service) loginUpstream(ctx context.Context, email, password string, remember bool) (*domain.Session, error) {
	_, payload, err := s.integrator.Login(email, password)
	if err != nil {
		var upstreamErr *studdeoclient.UpstreamError
		if errors.As(err, &upstreamErr) {
			message, known := upstreamLoginMessages[upstreamErr.Detail]
			if !known {
				message = genericLoginMessage
			}
			log.ForContext(ctx).WithField("detail", upstreamErr.Detail).Info("Login rechazado por el core")
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, message)
		}

		log.ForContext(ctx).WithError(err).Error("Error al autenticar contra el core")
		return nil, NewAuthError(ErrUpstreamLogin, apiErrors.ErrUpstreamUnavailable, genericLoginMessage)
	}

	user := domain.User{
		Name:     payload.Name,
		Lastname: payload.Lastname,
		Email:    payload.Email,
		Role:     payload.Role,
	}
	if user.Role == "" {
		user.Role = domain.RoleProfessor
	}

	return s.newSession(user, remember)
}

func (s *Service) newSession(user domain.User, remember bool) (*domain.Session, error) {
	ttl := time.Duration(s.cfg.Auth.SessionTTLHours) * time.Hour
	if remember {
		ttl = time.Duration(s.cfg.Auth.RememberTTLHours) * time.Hour
	}

	expiresAt := time.Now().Add(ttl)

	token, err := generateJWT(user, s.cfg.Auth.Secret, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de sesión")
	}

	return &domain.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func generateJWT(user domain.User, secret string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserRole:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// CreateAdministrator da de alta una cuenta local del panel
func (s *Service) CreateAdministrator(ctx context.Context, admin *domain.Administrator, password string) (*domain.Administrator, error) {
	if admin.Email == "" || admin.Name == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nombre y contraseña son obligatorios")
	}

	admin.Email = handleEmail(admin.Email)

	existing, err := s.adminRepo.GetByEmail(ctx, admin.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el administrador")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "El email ya está registrado")
	}

	if err := s.ValidatePasswordStrength(password); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInvalidRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin.PasswordHash = string(hashedPassword)
	admin.Active = true

	admin, err = s.adminRepo.Create(ctx, admin)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al crear el administrador")
	}

	return admin, nil
}

func (s *Service) ListAdministrators(ctx context.Context) ([]*domain.Administrator, error) {
	return s.adminRepo.List(ctx)
}

func (s *Service) DeactivateAdministrator(ctx context.Context, id int) error {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el administrador")
	}
	if admin == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Administrador no encontrado")
	}

	return s.adminRepo.Deactivate(ctx, id)
}

// ChangePassword cambia la contraseña de un administrador verificando la
// actual
func (s *Service) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByEmail(ctx, handleEmail(email))
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el administrador")
	}
	if admin == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Administrador no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, admin.ID, "Contraseña actual incorrecta")
	}

	if currentPassword == newPassword {
		return NewAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, ErrSamePassword.Error())
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewAuthError(err, apiErrors.ErrInvalidRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.adminRepo.UpdatePasswordHash(ctx, admin.ID, string(hashedPassword))
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// GenerateStrongPassword genera la contraseña inicial de un administrador
// nuevo. Garantiza al menos un carácter de cada clase.
func (s *Service) GenerateStrongPassword() (string, error) {
	const length = 12
	allChars := lowerChars + upperChars + numberChars + specialChars

	password := make([]byte, length)

	classes := []string{lowerChars, upperChars, numberChars, specialChars}
	for i, charset := range classes {
		char, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = char
	}

	for i := len(classes); i < length; i++ {
		char, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = char
	}

	// Mezclar para que las clases no queden en posiciones predecibles
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// ValidatePasswordStrength exige al menos 8 caracteres con mayúsculas,
// minúsculas, números y un carácter especial
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("la contraseña debe incluir al menos una mayúscula")
	}
	if !hasLower {
		return errors.New("la contraseña debe incluir al menos una minúscula")
	}
	if !hasNumber {
		return errors.New("la contraseña debe incluir al menos un número")
	}
	if !hasSpecial {
		return errors.New("la contraseña debe incluir al menos un carácter especial")
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func randomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
