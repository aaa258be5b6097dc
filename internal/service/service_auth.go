package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/internal/validators"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks register and login requests before they reach storage.
	validator validators.Validator

	// ids issues the UserID of newly registered accounts.
	ids idGenerator

	// passwordHashCost is the bcrypt cost factor used at registration.
	passwordHashCost int

	// dummyHash is checked on logins for unknown emails. It shares
	// passwordHashCost so both failure paths take the same time.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	dummyHash, err := utils.NewDummyHash(cfg.PasswordHashCost)
	if err != nil {
		logger.Error().Err(err).Int("cost", cfg.PasswordHashCost).Msg("error building dummy password hash")
	}

	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		passwordHashCost: cfg.PasswordHashCost,
		dummyHash:        dummyHash,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the request, hashes the password with the configured bcrypt
// cost, assigns a fresh UUIDv7 and delegates persistence to the
// UserRepository.
//
// Returns the persisted user without its password hash or:
//   - ErrInvalidDataProvided if the request breaks a validation rule.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken, see store.ErrUniqueViolation).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, request); err != nil {
		log.Err(err).Str("username", request.Username).Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		UserID:   a.ids.Generate(),
		Username: request.Username,
		Email:    request.Email,
		Password: hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password are indistinguishable to the caller:
// both return ErrInvalidCredentials, and the unknown email path still pays
// for one bcrypt comparison.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = utils.CheckPassword(a.dummyHash, request.Password)
			log.Warn().Str("email", request.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, request.Password) {
		log.Warn().Str("id", foundUser.UserID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Public(), nil
}

// GetUser returns the public record of the user with userID.
func (a *authService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID.String()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

// DeleteUser removes the account together with its reviews and comments.
func (a *authService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID.String()).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An empty string yields ErrMissingToken. Any other validation failure
// (expired, wrong issuer, bad signature, malformed) is normalised to
// ErrInvalidToken so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}
