// Package reporting arma el reporte de ventas del panel: aplana las ventas
// del core, deriva comisiones y liquidaciones, y resuelve filtros y orden.
// Las filas son efímeras, se recalculan en cada consulta.
package reporting

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/internal/config"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/cache"
	"github.com/studdeo/admin-api/pkg/log"
	"github.com/studdeo/admin-api/pkg/utils"
)

const salesCacheKey = "sales"

type Reporter interface {
	GetSalesReport(ctx context.Context, filters domain.ReportFilters, sortState domain.SortState, refresh bool) (*domain.SalesReport, error)
}

type Service struct {
	integrator studdeo.StuddeoIntegrator
	store      *cache.Store
	cfg        *config.Config
	now        func() time.Time
}

func NewService(integrator studdeo.StuddeoIntegrator, store *cache.Store, cfg *config.Config) Reporter {
	return &Service{
		integrator: integrator,
		store:      store,
		cfg:        cfg,
		now:        time.Now,
	}
}

// GetSalesReport devuelve las tarjetas de resumen y la tabla de ventas.
// Las tarjetas se calculan SIEMPRE sobre el conjunto completo: los filtros
// solo recortan las filas de la tabla.
func (s *Service) GetSalesReport(ctx context.Context, filters domain.ReportFilters, sortState domain.SortState, refresh bool) (*domain.SalesReport, error) {
	courses, err := s.fetchSales(ctx, refresh)
	if err != nil {
		return nil, err
	}

	rows := s.BuildRows(ctx, courses)

	stats := s.Summarize(rows)

	filtered := s.Filter(rows, filters)

	if sortState.Field == "" {
		sortState = domain.SortState{Field: domain.SortByDate, Desc: true}
	}
	s.Sort(filtered, sortState)

	return &domain.SalesReport{
		Stats:   stats,
		Rows:    filtered,
		Courses: courseOptions(courses),
		Sort:    sortState,
	}, nil
}

// fetchSales trae las ventas del core pasando por el cache. Con refresh en
// true (el botón "Actualizar datos") la entrada se invalida antes de leer.
func (s *Service) fetchSales(ctx context.Context, refresh bool) ([]studdeodomain.CourseWithSales, error) {
	key := cache.Key(salesCacheKey)

	if refresh {
		s.store.Delete(key)
	}

	if cached, ok := s.store.Get(key); ok {
		if courses, ok := cached.([]studdeodomain.CourseWithSales); ok {
			return courses, nil
		}
	}

	courses, err := s.integrator.GetSales()
	if err != nil {
		return nil, err
	}

	s.store.Set(key, courses)
	log.ForContext(ctx).WithField("courses", len(courses)).Debug("Ventas traídas del core")

	return courses, nil
}

// BuildRows aplana la respuesta del core en filas con los montos derivados.
// Una venta con fecha ilegible se descarta con un warning en vez de tirar
// el reporte entero.
func (s *Service) BuildRows(ctx context.Context, courses []studdeodomain.CourseWithSales) []domain.SaleRow {
	rows := make([]domain.SaleRow, 0)

	for _, course := range courses {
		for _, sale := range course.Sales {
			saleDate, err := sale.ParseDate()
			if err != nil {
				log.ForContext(ctx).
					WithError(err).
					WithField("sale_id", sale.ExternalReference).
					Warn("Venta con fecha ilegible, se descarta")
				continue
			}

			rows = append(rows, s.buildRow(course, sale, saleDate))
		}
	}

	return rows
}

func (s *Service) buildRow(course studdeodomain.CourseWithSales, sale studdeodomain.Sale, saleDate time.Time) domain.SaleRow {
	share := s.cfg.Commission.ShareOrDefault(sale.ContractDiscount)

	mpCommission := utils.RoundWithTwoDecimalPlace(sale.Total * s.cfg.Commission.MercadoPagoRate)
	netIncome := utils.RoundWithTwoDecimalPlace((sale.Total - mpCommission) * share)

	return domain.SaleRow{
		SaleID:     sale.ExternalReference,
		Date:       saleDate,
		CourseID:   course.ExternalReference,
		CourseName: course.Name,
		Buyer: domain.Buyer{
			ID:    sale.Buyer.ExternalReference,
			Name:  sale.Buyer.Name,
			Email: sale.Buyer.Email,
			Phone: sale.Buyer.Phone,
		},
		Total:         sale.Total,
		Discount:      sale.Discount,
		MPCommission:  mpCommission,
		ContractShare: share,
		NetIncome:     netIncome,
		Liquidation:   s.liquidation(saleDate),
	}
}

// liquidation calcula cuándo Mercado Pago libera el pago: fecha de venta más
// el corrimiento configurado. Los días restantes se redondean hacia arriba,
// "queda medio día" se muestra como un día.
func (s *Service) liquidation(saleDate time.Time) domain.Liquidation {
	date := saleDate.AddDate(0, 0, s.cfg.Commission.LiquidationOffsetDays)
	now := s.now()

	pending := date.After(now)

	daysRemaining := 0
	if pending {
		daysRemaining = int(math.Ceil(date.Sub(now).Hours() / 24))
	}

	return domain.Liquidation{
		Date:          date,
		DaysRemaining: daysRemaining,
		IsPending:     pending,
	}
}

// Summarize calcula las tarjetas de resumen sobre el conjunto recibido
func (s *Service) Summarize(rows []domain.SaleRow) domain.ReportStats {
	stats := domain.ReportStats{SalesCount: len(rows)}

	for _, row := range rows {
		stats.TotalRevenue += row.Total

		if row.Liquidation.IsPending {
			stats.PendingIncome += row.NetIncome
		} else {
			stats.SettledIncome += row.NetIncome
		}
	}

	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(stats.TotalRevenue)
	stats.SettledIncome = utils.RoundWithTwoDecimalPlace(stats.SettledIncome)
	stats.PendingIncome = utils.RoundWithTwoDecimalPlace(stats.PendingIncome)

	return stats
}

// Filter aplica tab, curso, búsqueda y rango de fechas sobre las filas
func (s *Service) Filter(rows []domain.SaleRow, filters domain.ReportFilters) []domain.SaleRow {
	from, to := s.dateWindow(filters)
	queryWords := queryTerms(filters.Query)

	filtered := make([]domain.SaleRow, 0, len(rows))
	for _, row := range rows {
		if !matchesTab(row, filters.Tab) {
			continue
		}

		if filters.CourseID != 0 && row.CourseID != filters.CourseID {
			continue
		}

		if from != nil && row.Date.Before(*from) {
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}

		if !matchesQuery(row, queryWords) {
			continue
		}

		filtered = append(filtered, row)
	}

	return filtered
}

func matchesTab(row domain.SaleRow, tab domain.ReportTab) bool {
	switch tab {
	case domain.TabSettled:
		return !row.Liquidation.IsPending
	case domain.TabPending:
		return row.Liquidation.IsPending
	default:
		return true
	}
}

// dateWindow traduce el rango elegido a límites concretos. Los rangos
// predefinidos cuentan hacia atrás desde hoy; el personalizado usa From/To
// inclusive por día completo.
func (s *Service) dateWindow(filters domain.ReportFilters) (*time.Time, *time.Time) {
	switch filters.Range {
	case domain.Range7Days, domain.Range30Days, domain.Range90Days:
		days := map[domain.DateRange]int{
			domain.Range7Days:  7,
			domain.Range30Days: 30,
			domain.Range90Days: 90,
		}[filters.Range]

		from := utils.StartOfDay(s.now().AddDate(0, 0, -days))
		return &from, nil
	case domain.RangeCustom:
		var from, to *time.Time
		if filters.From != nil {
			f := utils.StartOfDay(*filters.From)
			from = &f
		}
		if filters.To != nil {
			t := utils.EndOfDay(*filters.To)
			to = &t
		}
		return from, to
	default:
		return nil, nil
	}
}

// matchesQuery exige que cada palabra de la búsqueda aparezca en el nombre
// del curso, sin distinguir mayúsculas ni tildes. La búsqueda no mira al
// comprador: es el filtro de cursos de la tabla.
func matchesQuery(row domain.SaleRow, words []string) bool {
	if len(words) == 0 {
		return true
	}

	haystack := normalizeText(row.CourseName)

	for _, word := range words {
		if !strings.Contains(haystack, word) {
			return false
		}
	}

	return true
}

func queryTerms(query string) []string {
	return strings.Fields(normalizeText(query))
}

// normalizeText baja a minúsculas y quita los diacríticos, "Matemática"
// y "matematica" buscan lo mismo
func normalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(stripped)
}

// Sort ordena las filas por una sola columna con orden estable: las filas
// empatadas conservan su posición relativa
func (s *Service) Sort(rows []domain.SaleRow, state domain.SortState) {
	if state.Field == "" {
		state = domain.SortState{Field: domain.SortByDate, Desc: true}
	}

	less := lessFunc(state.Field)

	sort.SliceStable(rows, func(i, j int) bool {
		if state.Desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func lessFunc(field domain.SortField) func(a, b domain.SaleRow) bool {
	switch field {
	case domain.SortByTotal:
		return func(a, b domain.SaleRow) bool { return a.Total < b.Total }
	case domain.SortByDiscount:
		return func(a, b domain.SaleRow) bool { return a.Discount < b.Discount }
	case domain.SortByMPCommission:
		return func(a, b domain.SaleRow) bool { return a.MPCommission < b.MPCommission }
	case domain.SortByContractShare:
		return func(a, b domain.SaleRow) bool { return a.ContractShare < b.ContractShare }
	case domain.SortByNetIncome:
		return func(a, b domain.SaleRow) bool { return a.NetIncome < b.NetIncome }
	case domain.SortByLiquidationDate:
		return func(a, b domain.SaleRow) bool { return a.Liquidation.Date.Before(b.Liquidation.Date) }
	default:
		return func(a, b domain.SaleRow) bool { return a.Date.Before(b.Date) }
	}
}

// courseOptions arma el selector de cursos del filtro a partir de la misma
// respuesta del core, sin otra llamada
func courseOptions(courses []studdeodomain.CourseWithSales) []domain.Course {
	options := make([]domain.Course, 0, len(courses))

	for _, course := range courses {
		options = append(options, domain.Course{
			ID:          course.ExternalReference,
			Name:        course.Name,
			Description: course.Description,
			ProductID:   course.ProductID,
			OwnerID:     course.UserID,
		})
	}

	return options
}
