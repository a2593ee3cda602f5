// Package provisioning da de alta usuarios del marketplace desde el panel
// y administra los contratos de los profesores. El usuario se crea en el
// core; el contrato queda en la base local del Admin API.
package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/studdeo/admin-api/infrastructure/integrator/studdeo"
	studdeodomain "github.com/studdeo/admin-api/infrastructure/integrator/studdeo/domain"
	"github.com/studdeo/admin-api/infrastructure/repository"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/log"
)

var (
	ErrMissingEmail      = errors.New("el email es obligatorio")
	ErrInvalidShare      = errors.New("el porcentaje del contrato debe estar entre 0 y 100")
	ErrInvalidDates      = errors.New("la fecha de fin debe ser posterior a la de inicio")
	ErrProfessorRequired = errors.New("el contrato requiere un profesor")
)

// ProvisionParams es el formulario de alta del panel. SharePercent viene en
// puntos porcentuales (80 = 80%); el contrato guarda la fracción.
type ProvisionParams struct {
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	Role         string     `json:"role"`
	ProfessorID  int        `json:"professor_id"`
	SharePercent float64    `json:"share_percent"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// ProvisionResult junta el usuario creado en el core y el contrato local
type ProvisionResult struct {
	UserID   int              `json:"user_id"`
	Email    string           `json:"email"`
	Role     string           `json:"role"`
	Contract *domain.Contract `json:"contract,omitempty"`
}

type Provisioner interface {
	ListProfessors(ctx context.Context, alreadyMapped bool) ([]domain.Professor, error)
	ProvisionUser(ctx context.Context, params ProvisionParams) (*ProvisionResult, error)
	ListContracts(ctx context.Context) ([]*domain.Contract, error)
	CloseContract(ctx context.Context, id string) error
}

type Service struct {
	integrator   studdeo.StuddeoIntegrator
	contractRepo repository.ContractRepository
}

func NewService(integrator studdeo.StuddeoIntegrator, contractRepo repository.ContractRepository) Provisioner {
	return &Service{
		integrator:   integrator,
		contractRepo: contractRepo,
	}
}

// ListProfessors lista los profesores del marketplace para el selector del
// formulario de alta
func (s *Service) ListProfessors(ctx context.Context, alreadyMapped bool) ([]domain.Professor, error) {
	upstream, err := s.integrator.GetProfessors(alreadyMapped)
	if err != nil {
		return nil, err
	}

	professors := make([]domain.Professor, 0, len(upstream))
	for _, professor := range upstream {
		professors = append(professors, domain.Professor{
			ID:            professor.ExternalReference,
			Name:          professor.Name,
			Lastname:      professor.Lastname,
			Email:         professor.Email,
			AlreadyMapped: professor.AlreadyMapped,
		})
	}

	return professors, nil
}

// ProvisionUser crea el usuario en el core y, si el rol es profesor, guarda
// el contrato local. Si el contrato falla después de crear el usuario, el
// usuario queda creado: el core no expone borrado y repetir el alta falla
// por email duplicado, así que se loguea y se devuelve el error.
func (s *Service) ProvisionUser(ctx context.Context, params ProvisionParams) (*ProvisionResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = domain.RoleProfessor
	}

	created, err := s.integrator.CreateUser(studdeodomain.CreateUserParams{
		Email:    params.Email,
		Password: params.Password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	result := &ProvisionResult{
		UserID: created.ExternalReference,
		Email:  created.Email,
		Role:   created.Role,
	}

	if role != domain.RoleProfessor {
		return result, nil
	}

	contract, err := s.contractRepo.Create(ctx, &domain.Contract{
		ProfessorID: params.ProfessorID,
		Email:       params.Email,
		Share:       params.SharePercent / 100,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
	})
	if err != nil {
		log.ForContext(ctx).
			WithError(err).
			WithField("email", params.Email).
			Error("Usuario creado en el core pero el contrato local falló")
		return nil, err
	}

	result.Contract = contract

	return result, nil
}

func validateParams(params ProvisionParams) error {
	if params.Email == "" {
		return ErrMissingEmail
	}

	if params.SharePercent < 0 || params.SharePercent > 100 {
		return ErrInvalidShare
	}

	role := params.Role
	if role == "" || role == domain.RoleProfessor {
		if params.ProfessorID == 0 {
			return ErrProfessorRequired
		}
		if params.EndDate != nil && !params.EndDate.After(params.StartDate) {
			return ErrInvalidDates
		}
	}

	return nil
}

func (s *Service) ListContracts(ctx context.Context) ([]*domain.Contract, error) {
	return s.contractRepo.List(ctx)
}

func (s *Service) CloseContract(ctx context.Context, id string) error {
	return s.contractRepo.Close(ctx, id)
}
