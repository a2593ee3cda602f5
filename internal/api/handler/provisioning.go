package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo/studdeoclient"
	"github.com/studdeo/admin-api/internal/usecases/provisioning"
	"github.com/studdeo/admin-api/pkg/apiErrors"
)

// GetProfessors lista los profesores del marketplace para el selector del
// formulario de alta. already_mapped=true trae solo los que ya tienen
// usuario asociado.
func GetProfessors(service provisioning.Provisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alreadyMapped := r.URL.Query().Get("already_mapped") == "true"

		professors, err := service.ListProfessors(r.Context(), alreadyMapped)
		if err != nil {
			logrus.WithError(err).Error("Error al listar los profesores")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "No se pudieron traer los profesores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(professors); err != nil {
			logrus.Error(err)
		}
	}
}

// ProvisionUser da de alta un usuario en el core y, si corresponde, el
// contrato local del profesor
func ProvisionUser(service provisioning.Provisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params provisioning.ProvisionParams

		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
			return
		}

		result, err := service.ProvisionUser(r.Context(), params)
		if err != nil {
			handleProvisionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

// GetContracts lista los contratos locales de los profesores
func GetContracts(service provisioning.Provisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contracts, err := service.ListContracts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error al listar los contratos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "No se pudieron traer los contratos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contracts); err != nil {
			logrus.Error(err)
		}
	}
}

// CloseContract cierra un contrato vigente poniéndole fecha de fin
func CloseContract(service provisioning.Provisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID de contrato no especificado", nil)
			return
		}

		if err := service.CloseContract(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("contract_id", id).Error("Error al cerrar el contrato")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "No se pudo cerrar el contrato", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func handleProvisionError(w http.ResponseWriter, err error) {
	var upstreamErr *studdeoclient.UpstreamError
	if errors.As(err, &upstreamErr) {
		logrus.WithError(err).Error("El core rechazó el alta de usuario")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, upstreamErr.Detail, nil)
		return
	}

	switch {
	case errors.Is(err, provisioning.ErrMissingEmail),
		errors.Is(err, provisioning.ErrProfessorRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, provisioning.ErrInvalidShare),
		errors.Is(err, provisioning.ErrInvalidDates):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Error al dar de alta el usuario")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "No se pudo dar de alta el usuario", nil)
	}
}
