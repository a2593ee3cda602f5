package studdeoclient

import (
	"net/url"
	"strconv"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
)

// GetProfessors lista los profesores del marketplace. Con alreadyMapped en
// true el core devuelve solo los que ya tienen cuenta asociada.
func (c *StuddeoClient) GetProfessors(alreadyMapped bool) ([]studdeodomain.Professor, error) {
	var response []studdeodomain.Professor

	query := url.Values{}
	query.Set("already_mapped", strconv.FormatBool(alreadyMapped))

	if err := c.getJSON("/profesores/", query, &response); err != nil {
		return nil, err
	}

	return response, nil
}
