package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	studdeomocks "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/mocks"
	"github.com/studdeo/admin-api/infrastructure/repository/mocks"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func snapshotConfig() *config.Config {
	return &config.Config{
		Commission: config.Commission{
			MercadoPagoRate:       0.043,
			DefaultContractShare:  0.80,
			LiquidationOffsetDays: 19,
		},
		SalesSnapshotSync: config.SalesSnapshotSync{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestSalesSnapshotSyncService_buildSummaries(t *testing.T) {
	service := &SalesSnapshotSyncService{
		cfg: snapshotConfig(),
		now: func() time.Time { return testNow },
	}

	courses := []studdeodomain.CourseWithSales{
		{
			ExternalReference: 1,
			Name:              "Matemática I",
			Sales: []studdeodomain.Sale{
				// Dos ventas el mismo día se agrupan
				{ExternalReference: 1, Date: "2025-01-05", Total: 1000, ContractDiscount: floatPtr(0.8)},
				{ExternalReference: 2, Date: "2025-01-05T18:30:00Z", Total: 500, ContractDiscount: floatPtr(0.8)},
				// Otro día, otra foto
				{ExternalReference: 3, Date: "2025-01-06", Total: 200, ContractDiscount: nil},
				// Fecha ilegible queda fuera sin romper el resto
				{ExternalReference: 4, Date: "basura", Total: 999},
			},
		},
	}

	summaries := service.buildSummaries(courses)
	require.Len(t, summaries, 2)

	byDay := make(map[string]*domain.DailySalesSummary)
	for _, summary := range summaries {
		byDay[summary.Day.Format(time.DateOnly)] = summary
	}

	jan5 := byDay["2025-01-05"]
	require.NotNil(t, jan5)
	assert.Equal(t, 2, jan5.SalesCount)
	assert.Equal(t, 1500.0, jan5.TotalRevenue)
	// (1000 - 43) * 0.8 + (500 - 21.5) * 0.8 = 765.6 + 382.8
	assert.Equal(t, 1148.4, jan5.NetIncome)

	jan6 := byDay["2025-01-06"]
	require.NotNil(t, jan6)
	assert.Equal(t, 1, jan6.SalesCount)
	// Sin contract_discount aplica la fracción por defecto
	assert.Equal(t, 153.12, jan6.NetIncome) // (200 - 8.6) * 0.8
}

func TestSalesSnapshotSyncService_syncSalesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Persiste una foto por día", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		summaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)

		integrator.EXPECT().GetSales().Return([]studdeodomain.CourseWithSales{
			{
				Sales: []studdeodomain.Sale{
					{ExternalReference: 1, Date: "2025-01-05", Total: 1000},
					{ExternalReference: 2, Date: "2025-01-06", Total: 500},
				},
			},
		}, nil)

		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		service := &SalesSnapshotSyncService{
			cfg:         snapshotConfig(),
			integrator:  integrator,
			summaryRepo: summaryRepo,
			now:         func() time.Time { return testNow },
		}

		service.syncSalesSnapshot(ctx)

		status := service.GetStatus()
		assert.Equal(t, testNow, status["last_sync_started_at"])
		assert.Equal(t, testNow, status["last_sync_completed_at"])
		assert.Equal(t, false, status["running"])
	})

	t.Run("Un día que falla no corta los demás", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		summaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)

		integrator.EXPECT().GetSales().Return([]studdeodomain.CourseWithSales{
			{
				Sales: []studdeodomain.Sale{
					{ExternalReference: 1, Date: "2025-01-05", Total: 1000},
					{ExternalReference: 2, Date: "2025-01-06", Total: 500},
				},
			},
		}, nil)

		gomock.InOrder(
			summaryRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("deadlock")),
			summaryRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil),
		)

		service := &SalesSnapshotSyncService{
			cfg:         snapshotConfig(),
			integrator:  integrator,
			summaryRepo: summaryRepo,
			now:         func() time.Time { return testNow },
		}

		service.syncSalesSnapshot(ctx)
	})

	t.Run("Si el core no responde no se toca la base", func(t *testing.T) {
		integrator := studdeomocks.NewMockStuddeoIntegrator(ctrl)
		summaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)

		integrator.EXPECT().GetSales().Return(nil, errors.New("core caído"))

		service := &SalesSnapshotSyncService{
			cfg:         snapshotConfig(),
			integrator:  integrator,
			summaryRepo: summaryRepo,
			now:         func() time.Time { return testNow },
		}

		service.syncSalesSnapshot(ctx)
	})
}
