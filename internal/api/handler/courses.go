package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/internal/usecases/cataloging"
	"github.com/studdeo/admin-api/pkg/apiErrors"
	"github.com/studdeo/admin-api/pkg/middleware"
)

// GetCourses lista los cursos del dueño del token de servicio
func GetCourses(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresh := r.URL.Query().Get("refresh") == "true"

		courses, err := service.ListCourses(r.Context(), refresh)
		if err != nil {
			logrus.WithError(err).Error("Error al listar los cursos")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "No se pudieron traer los cursos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(courses); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCourseDetail devuelve curso, lecciones y estudiantes en una sola
// respuesta. Con scope=admin consulta los endpoints de administrador del
// core, siempre que el rol lo permita.
func GetCourseDetail(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		courseID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de curso inválido", nil)
			return
		}

		asAdmin := r.URL.Query().Get("scope") == "admin"
		if asAdmin {
			userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
			if !ok || !userClaims.HasCapability(domain.CapViewAllCourses) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "El rol no permite ver cursos de otros profesores", nil)
				return
			}
		}

		refresh := r.URL.Query().Get("refresh") == "true"

		detail, err := service.GetCourseDetail(r.Context(), courseID, asAdmin, refresh)
		if err != nil {
			logrus.WithError(err).WithField("course_id", courseID).Error("Error al armar el detalle del curso")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "No se pudo traer el detalle del curso", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logrus.Error(err)
		}
	}
}

// GetAdminCourses lista todos los cursos de la plataforma con contadores
// de lecciones y estudiantes
func GetAdminCourses(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresh := r.URL.Query().Get("refresh") == "true"

		summaries, err := service.ListAdminCourses(r.Context(), refresh)
		if err != nil {
			logrus.WithError(err).Error("Error al listar los cursos de la plataforma")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "No se pudieron traer los cursos de la plataforma", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logrus.Error(err)
		}
	}
}
