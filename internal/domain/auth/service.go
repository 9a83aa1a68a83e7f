package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ferreo/internal/core/apperror"
	appctx "ferreo/internal/core/context"
	"ferreo/internal/core/id"
	"ferreo/internal/domain/catalogs/supplier"
	"ferreo/pkg/logger"
)

const (
	maxLoginAttempts = 5
	lockDuration     = 15 * time.Minute

	minPasswordLength = 8
)

// SupplierVerifier checks portal access codes; implemented by the
// supplier catalog service. Suppliers identify themselves with their
// fiscal identifier.
type SupplierVerifier interface {
	VerifyAccessCode(ctx context.Context, taxID, accessCode string) (*supplier.Supplier, error)
}

// Service provides authentication operations.
type Service struct {
	users     UserRepository
	suppliers SupplierVerifier
	jwt       *JWTService
}

// NewService creates a new auth service.
func NewService(users UserRepository, suppliers SupplierVerifier, jwtService *JWTService) *Service {
	return &Service{
		users:     users,
		suppliers: suppliers,
		jwt:       jwtService,
	}
}

// Login authenticates a back-office user and returns a session token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("credenciales inválidas")
		}
		return nil, err
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(maxLoginAttempts, lockDuration)
		if updErr := s.users.Update(ctx, user); updErr != nil {
			logger.Error(ctx, "record failed login", "error", updErr)
		}
		return nil, apperror.NewUnauthorized("credenciales inválidas")
	}

	user.RecordSuccessfulLogin()
	if err := s.users.Update(ctx, user); err != nil {
		logger.Error(ctx, "record successful login", "error", err)
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Email, user.Role, "")
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "userId", user.ID, "role", user.Role)
	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
		Role:        user.Role,
	}, nil
}

// PortalLogin authenticates a supplier against its access code and
// returns a portal-scoped session token.
func (s *Service) PortalLogin(ctx context.Context, creds PortalCredentials) (*Session, error) {
	sp, err := s.suppliers.VerifyAccessCode(ctx, creds.TaxID, creds.AccessCode)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(sp.ID.String(), "", appctx.RoleSupplier, sp.ID.String())
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "supplier portal login", "supplierId", sp.ID, "code", sp.Code)
	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
		Role:        appctx.RoleSupplier,
	}, nil
}

// CreateUser registers a back-office user; admin only, enforced at the
// transport layer.
func (s *Service) CreateUser(ctx context.Context, email, password, fullName, role string) (*User, error) {
	if len(password) < minPasswordLength {
		return nil, apperror.NewValidation("la contraseña debe tener al menos 8 caracteres").
			WithDetail("field", "password")
	}

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict("ya existe un usuario con este email").
			WithDetail("email", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := NewUser(email, string(hash), role)
	user.FullName = fullName
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", "userId", user.ID, "email", email, "role", role)
	return user, nil
}

// ChangePassword updates the password of the authenticated user.
func (s *Service) ChangePassword(ctx context.Context, userID id.ID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.NewUnauthorized("la contraseña actual es incorrecta")
	}

	if len(next) < minPasswordLength {
		return apperror.NewValidation("la contraseña debe tener al menos 8 caracteres").
			WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()

	return s.users.Update(ctx, user)
}

// ValidateToken delegates to the JWT service.
func (s *Service) ValidateToken(token string) (*appctx.UserContext, error) {
	return s.jwt.ValidateToken(token)
}
