// Package studdeodomain contiene los tipos crudos que expone el core del
// marketplace. Los nombres de campo JSON son los del core, no los del panel.
package studdeodomain

import "time"

type Course struct {
	ExternalReference int    `json:"external_reference"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	ProductID         int    `json:"product_id"`
	UserID            int    `json:"user_id"`
	CreateDate        string `json:"create_date,omitempty"`
}

type Lesson struct {
	ExternalReference int    `json:"external_reference"`
	Name              string `json:"name"`
}

type Student struct {
	ExternalReference int    `json:"external_reference"`
	Name              string `json:"name"`
	Email             string `json:"emai"` // el core expone "emai" (sic)
	Phone             string `json:"phone"`
}

type Professor struct {
	ExternalReference int    `json:"external_reference"`
	Name              string `json:"name"`
	Lastname          string `json:"lastname"`
	Email             string `json:"email"`
	AlreadyMapped     bool   `json:"already_mapped"`
}

// ParseCreateDate interpreta la fecha de creación del curso. El core manda
// a veces RFC3339 y a veces solo la fecha.
func (c Course) ParseCreateDate() (*time.Time, error) {
	if c.CreateDate == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, c.CreateDate); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", c.CreateDate)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
