package studdeoclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
)

// Login pide un token al core con las credenciales del usuario. El core
// expone un grant de password OAuth2 clásico: formulario urlencoded con
// grant_type, username y password.
func (c *StuddeoClient) Login(email, password string) (*studdeodomain.TokenResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.Marketplace.URL)
	if err != nil {
		return nil, fmt.Errorf("error al analizar la URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/auth/login")

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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

	if resp.StatusCode != http.StatusOK {
		return nil, newUpstreamError(resp.StatusCode, body)
	}

	var tokenResp studdeodomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("error al decodificar la respuesta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("el core devolvió un token vacío")
	}

	return &tokenResp, nil
}
