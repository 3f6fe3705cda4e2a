package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and cart snapshot access against the
// "users" table. The cart snapshot is stored as a JSONB document column,
// preserving the product-id → size → quantity mapping as-is.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with store-assigned fields (UserID, timestamps).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	cartJSON, err := json.Marshal(user.CartData)
	if err != nil {
		return models.User{}, fmt.Errorf("error encoding cart snapshot: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Role, cartJSON)

	var saved models.User
	var savedCart []byte
	if err := row.Scan(&saved.UserID, &saved.Name, &saved.Email, &saved.PasswordHash, &saved.Role, &savedCart, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user was not created")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := json.Unmarshal(savedCart, &saved.CartData); err != nil {
		return models.User{}, fmt.Errorf("error decoding cart snapshot: %w", err)
	}

	return saved, nil
}

// FindUserByEmail retrieves an account record whose email matches the given
// normalized address.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var cartJSON []byte
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &cartJSON, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := json.Unmarshal(cartJSON, &foundUser.CartData); err != nil {
		return models.User{}, fmt.Errorf("error decoding cart snapshot: %w", err)
	}

	return foundUser, nil
}

// GetCart returns the cart snapshot of the given user.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
func (r *userRepository) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	log := logger.FromContext(ctx)

	var cartJSON []byte
	row := r.db.QueryRowContext(ctx, getUserCart, userID)

	if err := row.Scan(&cartJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.GetCart").Msg("error: scanning error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	var cart models.CartData
	if err := json.Unmarshal(cartJSON, &cart); err != nil {
		return nil, fmt.Errorf("error decoding cart snapshot: %w", err)
	}
	if cart == nil {
		cart = make(models.CartData)
	}

	return cart, nil
}

// UpdateCart replaces the cart snapshot of the given user.
//
// Error handling:
//   - Zero rows affected → [ErrNoUserWasFound].
func (r *userRepository) UpdateCart(ctx context.Context, userID string, cart models.CartData) error {
	log := logger.FromContext(ctx)

	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("error encoding cart snapshot: %w", err)
	}

	result, err := r.db.ExecContext(ctx, updateUserCart, userID, cartJSON)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCart").Msg("error: cart was not updated")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
