package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	studdeomocks "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/mocks"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/cache"
)

// Fecha de referencia de los tests: 10 de enero de 2025 al mediodía
var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func testCommissionConfig() *config.Config {
	return &config.Config{
		Commission: config.Commission{
			MercadoPagoRate:       0.043,
			DefaultContractShare:  0.80,
			LiquidationOffsetDays: 19,
		},
	}
}

func newTestService(integrator *studdeomocks.MockStuddeoIntegrator) *Service {
	return &Service{
		integrator: integrator,
		store:      cache.New(cache.DefaultTTL),
		cfg:        testCommissionConfig(),
		now:        func() time.Time { return testNow },
	}
}

func floatPtr(f float64) *float64 { return &f }

func saleOn(date string, total float64, contractDiscount *float64) studdeodomain.Sale {
	return studdeodomain.Sale{
		ExternalReference: 1,
		Date:              date,
		Total:             total,
		ContractDiscount:  contractDiscount,
		Buyer: studdeodomain.Buyer{
			ExternalReference: 10,
			Name:              "María Pérez",
			Email:             "maria@example.com",
		},
	}
}

func TestService_BuildRows_Montos(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		name              string
		sale              studdeodomain.Sale
		wantMPCommission  float64
		wantContractShare float64
		wantNetIncome     float64
	}{
		{
			name:              "Venta de 1000 con fracción 0.8",
			sale:              saleOn("2025-01-01", 1000, floatPtr(0.8)),
			wantMPCommission:  43,
			wantContractShare: 0.8,
			wantNetIncome:     765.6, // (1000 - 43) * 0.8
		},
		{
			name:              "Venta sin contract_discount usa la fracción por defecto",
			sale:              saleOn("2025-01-01", 1000, nil),
			wantMPCommission:  43,
			wantContractShare: 0.8,
			wantNetIncome:     765.6,
		},
		{
			name:              "Fracción mayor a 1 se acota a 1",
			sale:              saleOn("2025-01-01", 1000, floatPtr(1.5)),
			wantMPCommission:  43,
			wantContractShare: 1,
			wantNetIncome:     957,
		},
		{
			name:              "Fracción negativa se acota a 0",
			sale:              saleOn("2025-01-01", 1000, floatPtr(-0.2)),
			wantMPCommission:  43,
			wantContractShare: 0,
			wantNetIncome:     0,
		},
		{
			name:              "Los montos se redondean a dos decimales",
			sale:              saleOn("2025-01-01", 333.33, floatPtr(0.7)),
			wantMPCommission:  14.33, // 333.33 * 0.043 = 14.33319
			wantContractShare: 0.7,
			wantNetIncome:     223.3, // (333.33 - 14.33) * 0.7 = 223.3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := service.BuildRows(ctx, []studdeodomain.CourseWithSales{
				{ExternalReference: 5, Name: "Matemática I", Sales: []studdeodomain.Sale{tt.sale}},
			})

			require.Len(t, rows, 1)
			assert.Equal(t, tt.wantMPCommission, rows[0].MPCommission)
			assert.Equal(t, tt.wantContractShare, rows[0].ContractShare)
			assert.Equal(t, tt.wantNetIncome, rows[0].NetIncome)
			assert.Equal(t, 5, rows[0].CourseID)
			assert.Equal(t, "Matemática I", rows[0].CourseName)
		})
	}
}

func TestService_BuildRows_FechaIlegible(t *testing.T) {
	service := newTestService(nil)

	rows := service.BuildRows(context.Background(), []studdeodomain.CourseWithSales{
		{
			Name: "Curso",
			Sales: []studdeodomain.Sale{
				saleOn("no-es-una-fecha", 100, nil),
				saleOn("2025-01-02", 200, nil),
			},
		},
	})

	// La venta ilegible se descarta sin tirar el resto
	require.Len(t, rows, 1)
	assert.Equal(t, 200.0, rows[0].Total)
}

func TestService_Liquidation(t *testing.T) {
	service := newTestService(nil)

	tests := []struct {
		name              string
		saleDate          time.Time
		wantPending       bool
		wantDaysRemaining int
	}{
		{
			name:              "Venta del 1 de enero liquida el 20, quedan 10 días",
			saleDate:          time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			wantPending:       true,
			wantDaysRemaining: 10,
		},
		{
			name:              "Venta vieja ya liquidada",
			saleDate:          time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
			wantPending:       false,
			wantDaysRemaining: 0,
		},
		{
			name:              "Medio día restante se redondea a un día",
			saleDate:          time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC), // liquida el 11/1 a medianoche
			wantPending:       true,
			wantDaysRemaining: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liq := service.liquidation(tt.saleDate)

			assert.Equal(t, tt.saleDate.AddDate(0, 0, 19), liq.Date)
			assert.Equal(t, tt.wantPending, liq.IsPending)
			assert.Equal(t, tt.wantDaysRemaining, liq.DaysRemaining)
		})
	}
}

func TestService_Summarize(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	rows := service.BuildRows(ctx, []studdeodomain.CourseWithSales{
		{
			ExternalReference: 1,
			Name:              "Matemática I",
			Sales: []studdeodomain.Sale{
				saleOn("2025-01-05", 1000, floatPtr(0.8)), // pendiente, neto 765.6
				saleOn("2024-11-01", 500, floatPtr(0.8)),  // liquidada, neto 382.8
			},
		},
	})

	stats := service.Summarize(rows)

	assert.Equal(t, 2, stats.SalesCount)
	assert.Equal(t, 1500.0, stats.TotalRevenue)
	assert.Equal(t, 765.6, stats.PendingIncome)
	assert.Equal(t, 382.8, stats.SettledIncome)
}

func reportFixture(t *testing.T, service *Service) []domain.SaleRow {
	t.Helper()

	pending := saleOn("2025-01-05", 1000, floatPtr(0.8))
	pending.ExternalReference = 100

	settled := saleOn("2024-11-01", 500, floatPtr(0.8))
	settled.ExternalReference = 101
	settled.Buyer = studdeodomain.Buyer{Name: "José Núñez", Email: "jose@example.com"}

	other := saleOn("2025-01-08", 200, floatPtr(0.8))
	other.ExternalReference = 102
	other.Buyer = studdeodomain.Buyer{Name: "Ana López", Email: "ana@example.com"}

	return service.BuildRows(context.Background(), []studdeodomain.CourseWithSales{
		{ExternalReference: 1, Name: "Matemática I", Sales: []studdeodomain.Sale{pending, settled}},
		{ExternalReference: 2, Name: "Física Cuántica", Sales: []studdeodomain.Sale{other}},
	})
}

func TestService_Filter(t *testing.T) {
	service := newTestService(nil)
	rows := reportFixture(t, service)

	tests := []struct {
		name        string
		filters     domain.ReportFilters
		wantSaleIDs []int
	}{
		{
			name:        "Tab todas no recorta nada",
			filters:     domain.ReportFilters{Tab: domain.TabAll},
			wantSaleIDs: []int{100, 101, 102},
		},
		{
			name:        "Tab liquidadas",
			filters:     domain.ReportFilters{Tab: domain.TabSettled},
			wantSaleIDs: []int{101},
		},
		{
			name:        "Tab pendientes",
			filters:     domain.ReportFilters{Tab: domain.TabPending},
			wantSaleIDs: []int{100, 102},
		},
		{
			name:        "Filtro por curso",
			filters:     domain.ReportFilters{CourseID: 2},
			wantSaleIDs: []int{102},
		},
		{
			name:        "Curso cero significa todos",
			filters:     domain.ReportFilters{CourseID: 0},
			wantSaleIDs: []int{100, 101, 102},
		},
		{
			name:        "Búsqueda sin tildes encuentra el curso con tildes",
			filters:     domain.ReportFilters{Query: "matematica"},
			wantSaleIDs: []int{100, 101},
		},
		{
			name:        "Búsqueda de varias palabras exige todas",
			filters:     domain.ReportFilters{Query: "fisica cuantica"},
			wantSaleIDs: []int{102},
		},
		{
			name:        "La búsqueda mira solo el nombre del curso, no al comprador",
			filters:     domain.ReportFilters{Query: "maria"},
			wantSaleIDs: []int{},
		},
		{
			name:        "El email del comprador tampoco cuenta",
			filters:     domain.ReportFilters{Query: "jose@example.com"},
			wantSaleIDs: []int{},
		},
		{
			name:        "Palabras que no conviven no devuelven nada",
			filters:     domain.ReportFilters{Query: "matematica fisica"},
			wantSaleIDs: []int{},
		},
		{
			name:        "Últimos 7 días",
			filters:     domain.ReportFilters{Range: domain.Range7Days},
			wantSaleIDs: []int{100, 102},
		},
		{
			name:        "Últimos 90 días",
			filters:     domain.ReportFilters{Range: domain.Range90Days},
			wantSaleIDs: []int{100, 101, 102},
		},
		{
			name: "Rango personalizado inclusive",
			filters: domain.ReportFilters{
				Range: domain.RangeCustom,
				From:  timePtr(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
				To:    timePtr(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
			},
			wantSaleIDs: []int{100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.Filter(rows, tt.filters)

			gotIDs := make([]int, 0, len(filtered))
			for _, row := range filtered {
				gotIDs = append(gotIDs, row.SaleID)
			}

			assert.Equal(t, tt.wantSaleIDs, gotIDs)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestService_Sort(t *testing.T) {
	service := newTestService(nil)
	rows := reportFixture(t, service)

	t.Run("Por defecto ordena por fecha descendente", func(t *testing.T) {
		sorted := append([]domain.SaleRow(nil), rows...)
		service.Sort(sorted, domain.SortState{})

		assert.Equal(t, 102, sorted[0].SaleID) // 8 de enero
		assert.Equal(t, 100, sorted[1].SaleID) // 5 de enero
		assert.Equal(t, 101, sorted[2].SaleID) // 1 de noviembre
	})

	t.Run("Por total ascendente", func(t *testing.T) {
		sorted := append([]domain.SaleRow(nil), rows...)
		service.Sort(sorted, domain.SortState{Field: domain.SortByTotal, Desc: false})

		assert.Equal(t, 200.0, sorted[0].Total)
		assert.Equal(t, 500.0, sorted[1].Total)
		assert.Equal(t, 1000.0, sorted[2].Total)
	})

	t.Run("El orden es estable ante empates", func(t *testing.T) {
		sorted := append([]domain.SaleRow(nil), rows...)
		// Todas las filas comparten la misma fracción: el orden original se conserva
		service.Sort(sorted, domain.SortState{Field: domain.SortByContractShare, Desc: false})

		assert.Equal(t, 100, sorted[0].SaleID)
		assert.Equal(t, 101, sorted[1].SaleID)
		assert.Equal(t, 102, sorted[2].SaleID)
	})
}

func TestSortState_Toggle(t *testing.T) {
	state := domain.SortState{Field: domain.SortByDate, Desc: true}

	// Repetir la columna invierte la dirección
	state = state.Toggle(domain.SortByDate)
	assert.Equal(t, domain.SortState{Field: domain.SortByDate, Desc: false}, state)

	state = state.Toggle(domain.SortByDate)
	assert.Equal(t, domain.SortState{Field: domain.SortByDate, Desc: true}, state)

	// Una columna nueva arranca descendente
	state = state.Toggle(domain.SortByTotal)
	assert.Equal(t, domain.SortState{Field: domain.SortByTotal, Desc: true}, state)
}

func TestService_GetSalesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	payload := []studdeodomain.CourseWithSales{
		{
			ExternalReference: 1,
			Name:              "Matemática I",
			Sales: []studdeodomain.Sale{
				saleOn("2025-01-05", 1000, floatPtr(0.8)),
				saleOn("2024-11-01", 500, floatPtr(0.8)),
			},
		},
	}

	t.Run("Las tarjetas no cambian con los filtros", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		integrator.EXPECT().GetSales().Return(payload, nil)

		service := newTestService(integrator)

		report, err := service.GetSalesReport(ctx, domain.ReportFilters{Tab: domain.TabSettled}, domain.SortState{}, false)
		require.NoError(t, err)

		// La tabla queda con una fila pero las tarjetas ven las dos ventas
		assert.Len(t, report.Rows, 1)
		assert.Equal(t, 2, report.Stats.SalesCount)
		assert.Equal(t, 1500.0, report.Stats.TotalRevenue)
		assert.Len(t, report.Courses, 1)

		// Sin orden pedido la respuesta declara el orden por defecto
		assert.Equal(t, domain.SortState{Field: domain.SortByDate, Desc: true}, report.Sort)
	})

	t.Run("La segunda consulta sale del cache", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		// Una sola llamada al core para dos consultas
		integrator.EXPECT().GetSales().Return(payload, nil).Times(1)

		service := newTestService(integrator)

		_, err := service.GetSalesReport(ctx, domain.ReportFilters{}, domain.SortState{}, false)
		require.NoError(t, err)

		_, err = service.GetSalesReport(ctx, domain.ReportFilters{}, domain.SortState{}, false)
		require.NoError(t, err)
	})

	t.Run("Actualizar datos invalida el cache", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		integrator.EXPECT().GetSales().Return(payload, nil).Times(2)

		service := newTestService(integrator)

		_, err := service.GetSalesReport(ctx, domain.ReportFilters{}, domain.SortState{}, false)
		require.NoError(t, err)

		_, err = service.GetSalesReport(ctx, domain.ReportFilters{}, domain.SortState{}, true)
		require.NoError(t, err)
	})
}
