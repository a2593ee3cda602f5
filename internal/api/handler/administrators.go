package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/internal/usecases/authenticating"
	"github.com/studdeo/admin-api/pkg/apiErrors"
)

type CreateAdministratorRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"` // vacío genera una contraseña fuerte
}

type CreateAdministratorResponse struct {
	Administrator     *domain.Administrator `json:"administrator"`
	GeneratedPassword string                `json:"generated_password,omitempty"`
}

// GetAdministrators lista las cuentas locales del panel
func GetAdministrators(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		administrators, err := service.ListAdministrators(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error al listar los administradores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "No se pudieron traer los administradores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(administrators); err != nil {
			logrus.Error(err)
		}
	}
}

// CreateAdministrator da de alta una cuenta local del panel. Si no viene
// contraseña se genera una fuerte y se devuelve una única vez en la
// respuesta.
func CreateAdministrator(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAdministratorRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		if req.Email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El email es obligatorio", nil)
			return
		}

		password := req.Password
		generated := ""

		if password == "" {
			strongPassword, err := service.GenerateStrongPassword()
			if err != nil {
				logrus.WithError(err).Error("Error al generar la contraseña")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "No se pudo generar la contraseña", nil)
				return
			}
			password = strongPassword
			generated = strongPassword
		}

		admin, err := service.CreateAdministrator(r.Context(), &domain.Administrator{
			Name:     req.Name,
			Lastname: req.Lastname,
			Email:    req.Email,
		}, password)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(CreateAdministratorResponse{
			Administrator:     admin,
			GeneratedPassword: generated,
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// DeactivateAdministrator desactiva una cuenta local del panel (borrado
// lógico, el registro se conserva)
func DeactivateAdministrator(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de administrador inválido", nil)
			return
		}

		if err := service.DeactivateAdministrator(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("administrator_id", id).Error("Error al desactivar el administrador")
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// GeneratePassword devuelve una contraseña fuerte para precargar el
// formulario de alta
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password, err := service.GenerateStrongPassword()
		if err != nil {
			logrus.WithError(err).Error("Error al generar la contraseña")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "No se pudo generar la contraseña", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"password": password}); err != nil {
			logrus.Error(err)
		}
	}
}
