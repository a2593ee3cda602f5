// Package scheduler agrupa los trabajos periódicos del Admin API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/infrastructure/repository"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/utils"
)

// SalesSnapshotSyncService persiste la foto diaria de ventas. El core es la
// fuente de verdad pero no guarda histórico agregado; sin esta foto, una
// depuración de ventas en el core borra el pasado del panel.
type SalesSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	integrator          studdeo.StuddeoIntegrator
	summaryRepo         repository.SalesSummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

func NewSalesSnapshotSyncService(
	integrator studdeo.StuddeoIntegrator,
	summaryRepo repository.SalesSummaryRepository,
	cfg *config.Config,
) *SalesSnapshotSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SalesSnapshotSync.CronSchedule,
		"sync_enabled":  cfg.SalesSnapshotSync.Enabled,
	}).Info("Configuración del scheduler de fotos de ventas cargada")

	return &SalesSnapshotSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		cfg:         cfg,
		integrator:  integrator,
		summaryRepo: summaryRepo,
		now:         time.Now,
	}
}

// Start agenda la sincronización y la detiene cuando el contexto se cancela
func (s *SalesSnapshotSyncService) Start(ctx context.Context) error {
	if !s.cfg.SalesSnapshotSync.Enabled {
		logrus.Info("Sincronización de fotos de ventas deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.cfg.SalesSnapshotSync.CronSchedule).Info("Iniciando scheduler de fotos de ventas")

	_, err := s.scheduler.Cron(s.cfg.SalesSnapshotSync.CronSchedule).Do(func() {
		s.syncSalesSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de fotos de ventas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando scheduler de fotos de ventas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce dispara la sincronización fuera del cron; lo usa el endpoint
// manual del panel
func (s *SalesSnapshotSyncService) RunOnce(ctx context.Context) {
	s.syncSalesSnapshot(ctx)
}

func (s *SalesSnapshotSyncService) syncSalesSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de fotos de ventas ya en curso, se ignora")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronización de fotos de ventas")

	courses, err := s.integrator.GetSales()
	if err != nil {
		logrus.WithError(err).Error("Error al traer las ventas del core para la foto diaria")
		return
	}

	summaries := s.buildSummaries(courses)

	saved := 0
	for _, summary := range summaries {
		if err := s.summaryRepo.SaveOrUpdate(ctx, summary); err != nil {
			logrus.WithError(err).
				WithField("day", summary.Day.Format(time.DateOnly)).
				Error("Error al guardar la foto del día")
			continue
		}
		saved++
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"days":     len(summaries),
		"saved":    saved,
	}).Info("Sincronización de fotos de ventas terminada")
}

// buildSummaries agrupa las ventas del core por día calendario
func (s *SalesSnapshotSyncService) buildSummaries(courses []studdeodomain.CourseWithSales) []*domain.DailySalesSummary {
	byDay := make(map[time.Time]*domain.DailySalesSummary)

	for _, course := range courses {
		for _, sale := range course.Sales {
			saleDate, err := sale.ParseDate()
			if err != nil {
				logrus.WithError(err).
					WithField("sale_id", sale.ExternalReference).
					Warn("Venta con fecha ilegible, queda fuera de la foto")
				continue
			}

			day := utils.StartOfDay(saleDate)

			summary, ok := byDay[day]
			if !ok {
				summary = &domain.DailySalesSummary{Day: day, UpdatedAt: s.now()}
				byDay[day] = summary
			}

			share := s.cfg.Commission.ShareOrDefault(sale.ContractDiscount)
			mpCommission := sale.Total * s.cfg.Commission.MercadoPagoRate

			summary.SalesCount++
			summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue + sale.Total)
			summary.NetIncome = utils.RoundWithTwoDecimalPlace(summary.NetIncome + (sale.Total-mpCommission)*share)
		}
	}

	summaries := make([]*domain.DailySalesSummary, 0, len(byDay))
	for _, summary := range byDay {
		summaries = append(summaries, summary)
	}

	return summaries
}

// GetStatus devuelve el estado del job para el endpoint de monitoreo
func (s *SalesSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.cfg.SalesSnapshotSync.Enabled,
		"cron_schedule":          s.cfg.SalesSnapshotSync.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
