package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/internal/usecases/reporting"
	"github.com/studdeo/admin-api/pkg/apiErrors"
	"github.com/studdeo/admin-api/pkg/utils"
)

// GetSalesReport arma el reporte de ventas. Los filtros llegan por query
// string; refresh=true invalida el cache antes de consultar (el botón
// "Actualizar datos").
func GetSalesReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, sortState, err := parseReportQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		refresh := r.URL.Query().Get("refresh") == "true"

		report, err := service.GetSalesReport(r.Context(), filters, sortState, refresh)
		if err != nil {
			logrus.WithError(err).Error("Error al armar el reporte de ventas")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "No se pudieron traer las ventas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
		}
	}
}

func parseReportQuery(r *http.Request) (domain.ReportFilters, domain.SortState, error) {
	query := r.URL.Query()

	filters := domain.ReportFilters{
		Tab:   domain.ReportTab(query.Get("tab")),
		Query: query.Get("q"),
		Range: domain.DateRange(query.Get("range")),
	}

	if filters.Tab == "" {
		filters.Tab = domain.TabAll
	}
	if filters.Range == "" {
		filters.Range = domain.RangeAll
	}

	if courseID := query.Get("course_id"); courseID != "" {
		id, err := strconv.Atoi(courseID)
		if err != nil {
			return filters, domain.SortState{}, err
		}
		filters.CourseID = id
	}

	from, err := utils.ParseDate(query.Get("from"))
	if err != nil {
		return filters, domain.SortState{}, err
	}
	filters.From = from

	to, err := utils.ParseDate(query.Get("to"))
	if err != nil {
		return filters, domain.SortState{}, err
	}
	filters.To = to

	sortState := domain.SortState{
		Field: domain.SortField(query.Get("sort")),
		Desc:  query.Get("dir") != "asc",
	}

	// Un click en un encabezado llega como toggle junto con el orden actual:
	// repetir la columna invierte la dirección, una columna nueva arranca
	// descendente
	if toggled := query.Get("toggle"); toggled != "" {
		sortState = sortState.Toggle(domain.SortField(toggled))
	}

	return filters, sortState, nil
}
