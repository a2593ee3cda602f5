package studdeoclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
)

// CreateUser da de alta un usuario en el core
func (c *StuddeoClient) CreateUser(params studdeodomain.CreateUserParams) (*studdeodomain.CreatedUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.Marketplace.URL)
	if err != nil {
		return nil, fmt.Errorf("error al analizar la URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/users/")

	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("error al serializar el usuario: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Marketplace.ServiceToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la petición: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, newUpstreamError(resp.StatusCode, body)
	}

	var created studdeodomain.CreatedUser
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("error al decodificar la respuesta: %w", err)
	}

	return &created, nil
}
