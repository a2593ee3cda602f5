package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studdeo/admin-api/internal/domain"
)

func TestParseReportQuery(t *testing.T) {
	parse := func(t *testing.T, rawQuery string) (domain.ReportFilters, domain.SortState) {
		t.Helper()

		r := httptest.NewRequest(http.MethodGet, "/v1/sales/report?"+rawQuery, nil)
		filters, sortState, err := parseReportQuery(r)
		require.NoError(t, err)

		return filters, sortState
	}

	t.Run("Sin parámetros aplican los valores por defecto", func(t *testing.T) {
		filters, sortState := parse(t, "")

		assert.Equal(t, domain.TabAll, filters.Tab)
		assert.Equal(t, domain.RangeAll, filters.Range)
		assert.Equal(t, 0, filters.CourseID)
		assert.True(t, sortState.Desc)
	})

	t.Run("Filtros completos", func(t *testing.T) {
		filters, sortState := parse(t, "tab=pendientes&course_id=3&q=matematica&range=custom&from=2025-01-01&to=2025-01-05&sort=total&dir=asc")

		assert.Equal(t, domain.TabPending, filters.Tab)
		assert.Equal(t, 3, filters.CourseID)
		assert.Equal(t, "matematica", filters.Query)
		assert.Equal(t, domain.RangeCustom, filters.Range)
		require.NotNil(t, filters.From)
		require.NotNil(t, filters.To)
		assert.Equal(t, domain.SortState{Field: domain.SortByTotal, Desc: false}, sortState)
	})

	t.Run("Toggle de la misma columna invierte la dirección", func(t *testing.T) {
		_, sortState := parse(t, "sort=total&dir=desc&toggle=total")

		assert.Equal(t, domain.SortState{Field: domain.SortByTotal, Desc: false}, sortState)
	})

	t.Run("Toggle de una columna nueva arranca descendente", func(t *testing.T) {
		_, sortState := parse(t, "sort=total&dir=asc&toggle=net_income")

		assert.Equal(t, domain.SortState{Field: domain.SortByNetIncome, Desc: true}, sortState)
	})

	t.Run("course_id ilegible es un error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/sales/report?course_id=abc", nil)

		_, _, err := parseReportQuery(r)
		assert.Error(t, err)
	})

	t.Run("Fecha ilegible es un error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/sales/report?from=01-01-2025", nil)

		_, _, err := parseReportQuery(r)
		assert.Error(t, err)
	})
}
