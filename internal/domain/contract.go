package domain

import "time"

// Contract registra el porcentaje acordado con un profesor. El core guarda
// la fracción dentro de cada venta; acá queda la fuente administrable que el
// alta de usuarios sincroniza hacia el core.
type Contract struct {
	ID          string     `json:"id"`
	ProfessorID int        `json:"professor_id"`
	Email       string     `json:"email"`
	Share       float64    `json:"share"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Active indica si el contrato rige en la fecha dada
func (c Contract) Active(at time.Time) bool {
	if at.Before(c.StartDate) {
		return false
	}
	if c.EndDate != nil && at.After(*c.EndDate) {
		return false
	}
	return true
}
