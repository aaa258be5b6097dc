package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

const usersTable = "users"

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db         DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// connection pool and logger.
func NewUserRepository(db DBTX, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned CreatedAt. The password hash is not read back.
//
// Error handling:
//   - unique_violation (23505) on username or email → [ErrUniqueViolation].
//   - not_null_violation / data exceptions → [ErrConstraintViolation].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	defer metrics.TrackQuery("insert", usersTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, handleQueryError(ctx, r.classifier, "*userRepository.CreateUser", "insert", usersTable, err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Stringer("user_id", created.UserID).Msg("user created")
	return created, nil
}

// FindUserByEmail retrieves the user with the given email, including the
// stored password hash in Password.
//
// Returns [ErrNotFound] when no user has that email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.TrackQuery("select", usersTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, handleQueryError(ctx, r.classifier, "*userRepository.FindUserByEmail", "select", usersTable, err)
	}

	return user, nil
}

// FindUserByID retrieves the user with the given id, without the password hash.
//
// Returns [ErrNotFound] when no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	defer metrics.TrackQuery("select", usersTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to create query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, handleQueryError(ctx, r.classifier, "*userRepository.FindUserByID", "select", usersTable, err)
	}

	return user, nil
}

// DeleteUser removes the user. Its reviews, and every comment written by it
// or attached to its reviews, are removed by ON DELETE CASCADE.
//
// Returns [ErrNotFound] when no such user exists.
func (r *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	defer metrics.TrackQuery("delete", usersTable)()
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to create query")
		return err
	}

	var deletedID uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return handleQueryError(ctx, r.classifier, "*userRepository.DeleteUser", "delete", usersTable, err)
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Stringer("user_id", deletedID).Msg("user deleted")
	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.CreatedAt)
	return user, err
}
