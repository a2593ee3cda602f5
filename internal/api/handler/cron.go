package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/internal/scheduler"
	"github.com/studdeo/admin-api/pkg/apiErrors"
)

// CronJobType define el job que se va a disparar manualmente
const (
	CronJobTypeSalesSnapshot = "sales-snapshot"
)

// CronJobServices contiene los jobs que se pueden disparar desde el panel
type CronJobServices struct {
	SalesSnapshotSyncService *scheduler.SalesSnapshotSyncService
}

// RunCronJob dispara manualmente un job fuera de su agenda
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSalesSnapshot:
			if services.SalesSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de fotos de ventas no disponible", nil)
				return
			}
			// Contexto propio: el del request muere al responder
			go services.SalesSnapshotSyncService.RunOnce(context.Background())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: sales-snapshot", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCronStatus devuelve el estado de los jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"sales-snapshot": services.SalesSnapshotSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}
