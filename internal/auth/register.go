package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/internal/users"
	"github.com/kwojtas/vanstock-backend/pkg/config"
	"github.com/kwojtas/vanstock-backend/pkg/db"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
	"github.com/kwojtas/vanstock-backend/pkg/security"
)

// RegisterService handles technician self-registration. New accounts stay
// inactive until an admin approves them.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB                 *db.Client
	PasswordConfig     config.PasswordConfig
	RegistrationConfig config.RegistrationConfig
}

type registerService struct {
	db              *db.Client
	passwordCfg     config.PasswordConfig
	registrationCfg config.RegistrationConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:              params.DB,
		passwordCfg:     params.PasswordConfig,
		registrationCfg: params.RegistrationConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !s.emailDomainAllowed(email) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email domain not allowed")
	}

	plate := normalizePlate(req.CarPlate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car_plate is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
			Name:         strings.TrimSpace(req.Name),
			CarPlate:     plate,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *registerService) emailDomainAllowed(email string) bool {
	allowed := s.registrationCfg.AllowedEmailDomains
	if len(allowed) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	for _, candidate := range allowed {
		if strings.EqualFold(strings.TrimSpace(candidate), domain) {
			return true
		}
	}
	return false
}

func normalizePlate(input string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
}
