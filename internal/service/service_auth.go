package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/store"
	"github.com/MKhiriev/freelance-hub/internal/utils"
	"github.com/MKhiriev/freelance-hub/models"
)

// DebugSessionToken is the fixed token issued and accepted when
// authentication is disabled. It never validates as a real JWT, so a
// disabled-mode token cannot leak into a properly configured deployment.
const DebugSessionToken = "debug-session-token"

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bootstrapUsername/bootstrapPassword describe the administrative account
	// seeded once at process start. Empty username disables seeding.
	bootstrapUsername string
	bootstrapPassword string

	// disabled switches the token lifecycle into the no-op mode that issues
	// and accepts only DebugSessionToken.
	disabled bool

	// dummyHash is verified against when a login targets an unknown
	// username, so the unknown-user path costs the same as a wrong-password
	// path and the two stay indistinguishable by timing.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	dummyHash, err := utils.HashPassword("password-equalizer")
	if err != nil {
		logger.Err(err).Msg("error preparing dummy password hash")
	}

	return &authService{
		userRepository:    userRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		bootstrapUsername: cfg.BootstrapUsername,
		bootstrapPassword: cfg.BootstrapPassword,
		disabled:          cfg.Disabled,
		dummyHash:         dummyHash,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with argon2id, and delegates persistence to the UserRepository.
// The plaintext password never leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the supplied password
// against the stored hash. An unknown username and a wrong password both
// produce ErrInvalidCredentials; the unknown-username path still runs a full
// hash verification against a dummy value so the two failures take
// comparable time.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is wrong.
//   - A wrapped storage error on repository failure.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = utils.VerifyPassword(a.dummyHash, password)
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.VerifyPassword(foundUser.PasswordHash, password); err != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration. With authentication disabled the fixed DebugSessionToken is
// returned instead.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.disabled {
		return models.Token{SignedString: DebugSessionToken, UserID: user.UserID}, nil
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
//
// With authentication disabled only DebugSessionToken is accepted.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.disabled {
		if tokenString == DebugSessionToken {
			return models.Token{SignedString: DebugSessionToken}, nil
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// BootstrapAdmin seeds the configured administrative account once at process
// start. The operation is idempotent: if the account already exists nothing
// happens and the stored credentials are left untouched.
//
// A missing bootstrap configuration is not an error; the seeding is simply
// skipped.
func (a *authService) BootstrapAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.bootstrapUsername == "" {
		return nil
	}

	_, err := a.userRepository.FindUserByUsername(ctx, a.bootstrapUsername)
	if err == nil {
		log.Debug().Str("username", a.bootstrapUsername).Msg("bootstrap account already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("bootstrap account lookup failed: %w", err)
	}

	created, err := a.RegisterUser(ctx, a.bootstrapUsername, a.bootstrapPassword)
	if err != nil {
		// a concurrent replica may have seeded the account between the
		// lookup and the insert
		if errors.Is(err, store.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("bootstrap account creation failed: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("username", created.Username).Msg("bootstrap account created")
	return nil
}
