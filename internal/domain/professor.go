package domain

// Professor es un profesor del marketplace visto desde el panel.
// AlreadyMapped indica si ya tiene cuenta asociada en el core.
type Professor struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Lastname      string `json:"lastname"`
	Email         string `json:"email"`
	AlreadyMapped bool   `json:"already_mapped"`
}
