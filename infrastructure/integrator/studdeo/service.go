// Package studdeo integra el panel con el core del marketplace.
package studdeo

import (
	"encoding/base64"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo/studdeoclient"
	"github.com/studdeo/admin-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type StuddeoIntegrator interface {
	Login(email, password string) (*studdeodomain.TokenResponse, *studdeodomain.TokenPayload, error)
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

type StuddeoService struct {
	cfg    *config.Config
	Client studdeoclient.Client
}

func New(cfg *config.Config, client studdeoclient.Client) StuddeoIntegrator {
	return &StuddeoService{
		cfg:    cfg,
		Client: client,
	}
}

// Login autentica contra el core y decodifica el payload del token que este
// devuelve. El payload se decodifica sin verificar la firma: el token viene
// directo del core por HTTPS y la firma es del core, no nuestra.
func (s *StuddeoService) Login(email, password string) (*studdeodomain.TokenResponse, *studdeodomain.TokenPayload, error) {
	tokenResp, err := s.Client.Login(email, password)
	if err != nil {
		return nil, nil, err
	}

	payload, err := DecodeTokenPayload(tokenResp.AccessToken)
	if err != nil {
		return nil, nil, err
	}

	return tokenResp, payload, nil
}

func (s *StuddeoService) GetSales() ([]studdeodomain.CourseWithSales, error) {
	return s.Client.GetSales()
}

func (s *StuddeoService) GetCourses() ([]studdeodomain.Course, error) {
	return s.Client.GetCourses()
}

func (s *StuddeoService) GetCourseLessons(courseID int) ([]studdeodomain.Lesson, error) {
	return s.Client.GetCourseLessons(courseID)
}

func (s *StuddeoService) GetCourseStudents(courseID int) ([]studdeodomain.Student, error) {
	return s.Client.GetCourseStudents(courseID)
}

func (s *StuddeoService) GetAdministratorCourses() ([]studdeodomain.Course, error) {
	return s.Client.GetAdministratorCourses()
}

func (s *StuddeoService) GetAdministratorCourseLessons(courseID int) ([]studdeodomain.Lesson, error) {
	return s.Client.GetAdministratorCourseLessons(courseID)
}

func (s *StuddeoService) GetAdministratorCourseStudents(courseID int) ([]studdeodomain.Student, error) {
	return s.Client.GetAdministratorCourseStudents(courseID)
}

func (s *StuddeoService) GetProfessors(alreadyMapped bool) ([]studdeodomain.Professor, error) {
	return s.Client.GetProfessors(alreadyMapped)
}

func (s *StuddeoService) CreateUser(params studdeodomain.CreateUserParams) (*studdeodomain.CreatedUser, error) {
	return s.Client.CreateUser(params)
}

// DecodeTokenPayload extrae los claims del segmento central de un JWT sin
// verificar la firma
func DecodeTokenPayload(token string) (*studdeodomain.TokenPayload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("el token del core no tiene formato JWT")
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("error al decodificar el payload del token: %w", err)
	}

	var payload studdeodomain.TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("error al interpretar el payload del token: %w", err)
	}

	return &payload, nil
}
