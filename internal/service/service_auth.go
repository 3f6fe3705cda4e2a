package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/AdityaKanwar22/ShopSphere/internal/config"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// adminUserID is the synthetic subject used in admin session tokens. The
// administrator is configured, not stored, so there is no account row to
// reference.
const adminUserID = "admin"

// authService implements [AuthService] on top of the user repository.
// Passwords are hashed with bcrypt; sessions are stateless signed JWTs.
type authService struct {
	users  store.UserRepository
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// Register creates a new account. The password is hashed before it reaches
// the repository; the plaintext is never stored or logged.
//
// Error handling:
//   - Empty parameters → [ErrInvalidDataProvided].
//   - Taken email → [store.ErrEmailAlreadyExists].
func (s *authService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.PasswordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CartData:     models.CartData{},
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login verifies the email/password pair against the stored account.
//
// Error handling:
//   - Empty parameters → [ErrInvalidDataProvided].
//   - Unknown email → [store.ErrNoUserWasFound].
//   - Hash mismatch → [ErrWrongPassword].
func (s *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// AdminLogin compares the pair against the configured administrator
// credentials in constant time. Both comparisons always run so the timing
// does not reveal which of the two values was wrong.
func (s *authService) AdminLogin(_ context.Context, email, password string) error {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))

	if emailMatch&passwordMatch != 1 {
		return ErrInvalidAdminCredentials
	}

	return nil
}

// CreateToken issues a signed session token carrying the user's stored role.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.UserID, role, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("error generating session token")
		return models.Token{}, fmt.Errorf("error generating session token: %w", err)
	}

	return token, nil
}

// CreateAdminToken issues a signed session token carrying the admin role.
func (s *authService) CreateAdminToken(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, adminUserID, models.RoleAdmin, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateAdminToken").Msg("error generating session token")
		return models.Token{}, fmt.Errorf("error generating session token: %w", err)
	}

	return token, nil
}

// ParseToken validates a signed token string against the configured key and
// issuer and returns the parsed claims.
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	return utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
}
