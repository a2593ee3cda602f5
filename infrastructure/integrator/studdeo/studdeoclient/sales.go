package studdeoclient

import (
	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
)

// GetSales trae todos los cursos con sus ventas anidadas. El core no pagina
// este endpoint; el filtrado por fecha y por curso se hace de este lado.
func (c *StuddeoClient) GetSales() ([]studdeodomain.CourseWithSales, error) {
	var response []studdeodomain.CourseWithSales

	if err := c.getJSON("/sales/", nil, &response); err != nil {
		return nil, err
	}

	return response, nil
}
