package studdeodomain

import "time"

type Buyer struct {
	ExternalReference int    `json:"external_reference"`
	Name              string `json:"name"`
	Email             string `json:"emai"` // el core expone "emai" (sic)
	Phone             string `json:"phone"`
}

type DetailSale struct {
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	ExternalReference int     `json:"external_reference"`
}

type Sale struct {
	ExternalReference int          `json:"external_reference"`
	Date              string       `json:"date"`
	DetailsSale       []DetailSale `json:"details_sale,omitempty"`
	Buyer             Buyer        `json:"buyer"`
	Discount          float64      `json:"discount"`
	Total             float64      `json:"total"`
	// ContractDiscount es la fracción 0..1 del referente. Ventas viejas no
	// traen el campo.
	ContractDiscount *float64 `json:"contract_discount,omitempty"`
}

// CourseWithSales es la respuesta de GET /sales/: cada curso con sus ventas
// anidadas.
type CourseWithSales struct {
	ExternalReference int     `json:"external_reference"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	ProductID         int     `json:"product_id"`
	UserID            int     `json:"user_id"`
	CreateDate        string  `json:"create_date,omitempty"`
	Sales             []Sale  `json:"sales"`
	CalculatedTotal   float64 `json:"calculated_total,omitempty"`
}

// ParseDate interpreta la fecha de la venta
func (s Sale) ParseDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s.Date); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", s.Date)
}
