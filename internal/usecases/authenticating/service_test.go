package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	studdeomocks "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/mocks"
	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo/studdeoclient"
	"github.com/studdeo/admin-api/infrastructure/repository/mocks"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:           "secreto-de-test",
			SessionTTLHours:  24,
			RememberTTLHours: 720,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		remember bool
		setup    func(adminRepo *mocks.MockAdministratorRepository, integrator *studdeomocks.MockStuddeoIntegrator)
		validate func(t *testing.T, session *domain.Session, err error)
	}{
		{
			name:     "Administrador local con credenciales correctas",
			email:    "admin@studdeo.app",
			password: "Secreta1!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@studdeo.app").
					Return(&domain.Administrator{
						ID:           1,
						Name:         "Ana",
						Lastname:     "García",
						Email:        "admin@studdeo.app",
						PasswordHash: hashPassword(t, "Secreta1!"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, "bearer", session.TokenType)
				assert.Equal(t, domain.RoleAdministrator, session.User.Role)
				assert.Equal(t, "Ana", session.User.Name)
				assert.NotEmpty(t, session.AccessToken)
				// Sesión de 24 horas sin "recordarme"
				assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
			},
		},
		{
			name:     "Administrador local con sesión extendida",
			email:    "admin@studdeo.app",
			password: "Secreta1!",
			remember: true,
			setup: func(adminRepo *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@studdeo.app").
					Return(&domain.Administrator{
						ID:           1,
						Email:        "admin@studdeo.app",
						PasswordHash: hashPassword(t, "Secreta1!"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				// Con "recordarme" la sesión dura 30 días
				assert.WithinDuration(t, time.Now().Add(720*time.Hour), session.ExpiresAt, time.Minute)
			},
		},
		{
			name:     "Administrador local con contraseña incorrecta",
			email:    "admin@studdeo.app",
			password: "equivocada",
			setup: func(adminRepo *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@studdeo.app").
					Return(&domain.Administrator{
						ID:           1,
						Email:        "admin@studdeo.app",
						PasswordHash: hashPassword(t, "Secreta1!"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Administrador desactivado no puede entrar",
			email:    "admin@studdeo.app",
			password: "Secreta1!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@studdeo.app").
					Return(&domain.Administrator{
						ID:           1,
						Email:        "admin@studdeo.app",
						PasswordHash: hashPassword(t, "Secreta1!"),
						Active:       false,
					}, nil)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Profesor autenticado contra el core",
			email:    "profe@studdeo.app",
			password: "Clase2024!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, integrator *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "profe@studdeo.app").
					Return(nil, nil)

				integrator.EXPECT().
					Login("profe@studdeo.app", "Clase2024!").
					Return(
						&studdeodomain.TokenResponse{AccessToken: "token-del-core", TokenType: "bearer"},
						&studdeodomain.TokenPayload{
							Name:     "Pablo",
							Lastname: "Núñez",
							Email:    "profe@studdeo.app",
							Role:     domain.RoleProfessor,
						},
						nil,
					)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, domain.RoleProfessor, session.User.Role)
				assert.Equal(t, "Pablo", session.User.Name)
				// El token de sesión es propio, no el del core
				assert.NotEqual(t, "token-del-core", session.AccessToken)
			},
		},
		{
			name:     "El core rechaza la contraseña y el detail se traduce",
			email:    "profe@studdeo.app",
			password: "equivocada",
			setup: func(adminRepo *mocks.MockAdministratorRepository, integrator *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "profe@studdeo.app").
					Return(nil, nil)

				integrator.EXPECT().
					Login("profe@studdeo.app", "equivocada").
					Return(nil, nil, &studdeoclient.UpstreamError{StatusCode: 401, Detail: "Wrong password."})
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, "Contraseña incorrecta.", authErr.Details)
			},
		},
		{
			name:     "Usuario inexistente en el core",
			email:    "nadie@studdeo.app",
			password: "Clase2024!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, integrator *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadie@studdeo.app").
					Return(nil, nil)

				integrator.EXPECT().
					Login("nadie@studdeo.app", "Clase2024!").
					Return(nil, nil, &studdeoclient.UpstreamError{StatusCode: 404, Detail: "User not found."})
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, "Usuario no encontrado.", authErr.Details)
			},
		},
		{
			name:     "Detail desconocido del core cae en el mensaje genérico",
			email:    "profe@studdeo.app",
			password: "Clase2024!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, integrator *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "profe@studdeo.app").
					Return(nil, nil)

				integrator.EXPECT().
					Login("profe@studdeo.app", "Clase2024!").
					Return(nil, nil, &studdeoclient.UpstreamError{StatusCode: 500, Detail: "Internal server error"})
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, genericLoginMessage, authErr.Details)
			},
		},
		{
			name:     "Email y contraseña obligatorios",
			email:    "",
			password: "",
			setup:    func(_ *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "El email se normaliza antes de buscar",
			email:    "  Admin@Studdeo.App ",
			password: "Secreta1!",
			setup: func(adminRepo *mocks.MockAdministratorRepository, _ *studdeomocks.MockStuddeoIntegrator) {
				adminRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@studdeo.app").
					Return(&domain.Administrator{
						ID:           1,
						Email:        "admin@studdeo.app",
						PasswordHash: hashPassword(t, "Secreta1!"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "admin@studdeo.app", session.User.Email)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminRepo := mocks.NewMockAdministratorRepository(ctrl)
			integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
			tt.setup(adminRepo, integrator)

			service := NewService(adminRepo, integrator, testConfig())

			session, err := service.Login(ctx, tt.email, tt.password, tt.remember)
			tt.validate(t, session, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRepo := mocks.NewMockAdministratorRepository(ctrl)
	integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
	cfg := testConfig()
	service := NewService(adminRepo, integrator, cfg)

	t.Run("Token recién emitido es válido", func(t *testing.T) {
		user := domain.User{Name: "Ana", Email: "admin@studdeo.app", Role: domain.RoleAdministrator}
		token, err := generateJWT(user, cfg.Auth.Secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@studdeo.app", claims.UserEmail)
		assert.Equal(t, domain.RoleAdministrator, claims.UserRole)
		assert.True(t, claims.HasCapability(domain.CapManageAdmins))
	})

	t.Run("Token vencido se rechaza", func(t *testing.T) {
		user := domain.User{Email: "admin@studdeo.app", Role: domain.RoleAdministrator}
		token, err := generateJWT(user, cfg.Auth.Secret, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token firmado con otro secreto se rechaza", func(t *testing.T) {
		user := domain.User{Email: "admin@studdeo.app", Role: domain.RoleAdministrator}
		token, err := generateJWT(user, "otro-secreto", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Basura no es un token", func(t *testing.T) {
		_, err := service.ValidateToken("no-es-un-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Contraseña completa", password: "Secreta1!", wantErr: false},
		{name: "Demasiado corta", password: "Ab1!", wantErr: true},
		{name: "Sin mayúscula", password: "secreta1!", wantErr: true},
		{name: "Sin minúscula", password: "SECRETA1!", wantErr: true},
		{name: "Sin número", password: "Secretaa!", wantErr: true},
		{name: "Sin carácter especial", password: "Secreta11", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	service := &Service{}

	password, err := service.GenerateStrongPassword()
	require.NoError(t, err)
	assert.Len(t, password, 12)

	// La contraseña generada tiene que pasar su propia validación
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Cambio exitoso", func(t *testing.T) {
		adminRepo := mocks.NewMockAdministratorRepository(ctrl)
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		service := NewService(adminRepo, integrator, testConfig())

		adminRepo.EXPECT().
			GetByEmail(gomock.Any(), "admin@studdeo.app").
			Return(&domain.Administrator{
				ID:           7,
				Email:        "admin@studdeo.app",
				PasswordHash: hashPassword(t, "Secreta1!"),
				Active:       true,
			}, nil)

		adminRepo.EXPECT().
			UpdatePasswordHash(gomock.Any(), 7, gomock.Any()).
			Return(nil)

		err := service.ChangePassword(ctx, "admin@studdeo.app", "Secreta1!", "Nueva2024$")
		assert.NoError(t, err)
	})

	t.Run("Contraseña actual incorrecta", func(t *testing.T) {
		adminRepo := mocks.NewMockAdministratorRepository(ctrl)
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		service := NewService(adminRepo, integrator, testConfig())

		adminRepo.EXPECT().
			GetByEmail(gomock.Any(), "admin@studdeo.app").
			Return(&domain.Administrator{
				ID:           7,
				Email:        "admin@studdeo.app",
				PasswordHash: hashPassword(t, "Secreta1!"),
			}, nil)

		err := service.ChangePassword(ctx, "admin@studdeo.app", "equivocada", "Nueva2024$")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("La contraseña nueva no puede repetir la actual", func(t *testing.T) {
		adminRepo := mocks.NewMockAdministratorRepository(ctrl)
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		service := NewService(adminRepo, integrator, testConfig())

		adminRepo.EXPECT().
			GetByEmail(gomock.Any(), "admin@studdeo.app").
			Return(&domain.Administrator{
				ID:           7,
				Email:        "admin@studdeo.app",
				PasswordHash: hashPassword(t, "Secreta1!"),
			}, nil)

		err := service.ChangePassword(ctx, "admin@studdeo.app", "Secreta1!", "Secreta1!")
		assert.ErrorIs(t, err, ErrSamePassword)
	})
}

func TestService_CreateAdministrator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Alta exitosa", func(t *testing.T) {
		adminRepo := mocks.NewMockAdministratorRepository(ctrl)
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		service := NewService(adminRepo, integrator, testConfig())

		adminRepo.EXPECT().
			GetByEmail(gomock.Any(), "nueva@studdeo.app").
			Return(nil, nil)

		adminRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
				// La contraseña nunca se guarda en claro
				assert.NotEqual(t, "Nueva2024$", admin.PasswordHash)
				assert.True(t, admin.Active)
				admin.ID = 2
				return admin, nil
			})

		admin, err := service.CreateAdministrator(ctx, &domain.Administrator{
			Name:  "Lucía",
			Email: "Nueva@Studdeo.App",
		}, "Nueva2024$")
		require.NoError(t, err)
		assert.Equal(t, 2, admin.ID)
		assert.Equal(t, "nueva@studdeo.app", admin.Email)
	})

	t.Run("Email repetido se rechaza", func(t *testing.T) {
		adminRepo := mocks.NewMockAdministratorRepository(ctrl)
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		service := NewService(adminRepo, integrator, testConfig())

		adminRepo.EXPECT().
			GetByEmail(gomock.Any(), "nueva@studdeo.app").
			Return(&domain.Administrator{ID: 2}, nil)

		_, err := service.CreateAdministrator(ctx, &domain.Administrator{
			Name:  "Lucía",
			Email: "nueva@studdeo.app",
		}, "Nueva2024$")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}
