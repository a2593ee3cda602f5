package studdeoclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestTimeout = 30 * time.Second

type Client interface {
	Login(email, password string) (*studdeodomain.TokenResponse, error)
	GetSales() ([]studdeodomain.CourseWithSales, error)
	GetCourses() ([]studdeodomain.Course, error)
	GetCourseLessons(courseID int) ([]studdeodomain.Lesson, error)
	GetCourseStudents(courseID int) ([]studdeodomain.Student, error)
	GetAdministratorCourses() ([]studdeodomain.Course, error)
	GetAdministratorCourseLessons(courseID int) ([]studdeodomain.Lesson, error)
	GetAdministratorCourseStudents(courseID int) ([]studdeodomain.Student, error)
	GetProfessors(alreadyMapped bool) ([]studdeodomain.Professor, error)
	CreateUser(params studdeodomain.CreateUserParams) (*studdeodomain.CreatedUser, error)
}

type StuddeoClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StuddeoClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		config: cfg,
	}
}

// UpstreamError es un error devuelto por el core con su campo "detail".
// El detail viaja tal cual lo mandó el core; la traducción al usuario se
// hace en la capa de autenticación.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("el core respondió %d: %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("el core respondió %d", e.StatusCode)
}

// newUpstreamError arma el error a partir del cuerpo de una respuesta no-2xx.
// El core devuelve {"detail": "..."} en sus errores.
func newUpstreamError(statusCode int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}

	// Si el cuerpo no es JSON igual devolvemos el status
	_ = json.Unmarshal(body, &payload)

	return &UpstreamError{
		StatusCode: statusCode,
		Detail:     payload.Detail,
	}
}

// getJSON ejecuta un GET autenticado con el token de servicio y decodifica
// la respuesta en out.
func (c *StuddeoClient) getJSON(endpointPath string, query url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.Marketplace.URL)
	if err != nil {
		return fmt.Errorf("error al analizar la URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("error al crear la petición: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Marketplace.ServiceToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error al ejecutar la petición: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newUpstreamError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error al decodificar la respuesta: %w", err)
	}

	return nil
}
