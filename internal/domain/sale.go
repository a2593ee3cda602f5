package domain

import "time"

// Tabs de la tabla de ventas, tal como los manda el panel
type ReportTab string

const (
	TabAll     ReportTab = "todas"
	TabSettled ReportTab = "liquidadas"
	TabPending ReportTab = "pendientes"
)

// Rangos de fecha predefinidos del filtro
type DateRange string

const (
	RangeAll    DateRange = "all"
	Range7Days  DateRange = "7"
	Range30Days DateRange = "30"
	Range90Days DateRange = "90"
	RangeCustom DateRange = "custom"
)

type Buyer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Liquidation indica cuándo Mercado Pago libera el pago de una venta.
// Pendiente mientras la fecha objetivo esté en el futuro.
type Liquidation struct {
	Date          time.Time `json:"date"`
	DaysRemaining int       `json:"days_remaining"`
	IsPending     bool      `json:"is_pending"`
}

// SaleRow es una fila de la tabla de ventas: una venta con el nombre del
// curso y los montos derivados ya calculados. Es efímera, se recalcula en
// cada consulta y nunca se persiste.
type SaleRow struct {
	SaleID        int         `json:"sale_id"`
	Date          time.Time   `json:"date"`
	CourseID      int         `json:"course_id"`
	CourseName    string      `json:"course_name"`
	Buyer         Buyer       `json:"buyer"`
	Total         float64     `json:"total"`
	Discount      float64     `json:"discount"`
	MPCommission  float64     `json:"mp_commission"`
	ContractShare float64     `json:"contract_share"` // fracción 0..1 del referente
	NetIncome     float64     `json:"net_income"`
	Liquidation   Liquidation `json:"liquidation"`
}

// ReportStats se calcula siempre sobre el conjunto SIN filtrar: los filtros
// de la tabla no mueven las tarjetas de resumen.
type ReportStats struct {
	TotalRevenue  float64 `json:"total_revenue"`  // suma de montos brutos
	SettledIncome float64 `json:"settled_income"` // ingreso neto ya liquidado
	PendingIncome float64 `json:"pending_income"` // ingreso neto pendiente de liquidar
	SalesCount    int     `json:"sales_count"`
}

// ReportFilters son los filtros activos de la tabla. CourseID cero significa
// "todos los cursos". From/To solo aplican con RangeCustom.
type ReportFilters struct {
	Tab      ReportTab
	CourseID int
	Query    string
	Range    DateRange
	From     *time.Time
	To       *time.Time
}

type SortField string

const (
	SortByDate            SortField = "date"
	SortByTotal           SortField = "total"
	SortByDiscount        SortField = "discount"
	SortByMPCommission    SortField = "mp_commission"
	SortByContractShare   SortField = "contract_share"
	SortByNetIncome       SortField = "net_income"
	SortByLiquidationDate SortField = "liquidation_date"
)

// SortState representa el orden actual de la tabla, una sola columna. Viaja
// en la respuesta para que el panel lo devuelva tal cual en el próximo click.
type SortState struct {
	Field SortField `json:"field"`
	Desc  bool      `json:"desc"`
}

// Toggle aplica la regla del panel: repetir la columna invierte la
// dirección; una columna nueva arranca descendente.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		return SortState{Field: field, Desc: !s.Desc}
	}
	return SortState{Field: field, Desc: true}
}

// SalesReport es la respuesta completa de la vista de ventas.
type SalesReport struct {
	Stats   ReportStats `json:"stats"`
	Rows    []SaleRow   `json:"rows"`
	Courses []Course    `json:"courses"` // para poblar el selector de cursos
	Sort    SortState   `json:"sort"`    // orden efectivo de las filas
}
