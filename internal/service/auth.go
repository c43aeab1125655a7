package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
)

// MinPasswordLength is enforced at registration only; verification
// accepts whatever was registered.
const MinPasswordLength = 6

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// NormalizeEmail returns the canonical form used for uniqueness
// checks, lookups and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user from name, email and password. The email is
// normalized before the uniqueness check; only the bcrypt digest of
// the password is stored.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	name := strings.TrimSpace(params.Name)
	email := NormalizeEmail(params.Email)

	a.logger.Debug("Auth service: registering user", "email", email)

	if name == "" || email == "" || params.Password == "" {
		return model.User{}, model.NewValidationError("name, email and password are required")
	}
	if len(params.Password) < MinPasswordLength {
		return model.User{}, model.NewWeakPasswordError()
	}

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, model.NewDuplicateEmailError()
	}

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		// A concurrent registration may win the race between the
		// uniqueness check and the insert; the unique index settles it.
		if errors.Is(err, model.ErrDuplicate) {
			a.logger.Info("Auth service: email already registered", "email", email)
			return model.User{}, model.NewDuplicateEmailError()
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies credentials and issues a session token. Unknown
// email, a record without a usable hash and a wrong password all
// produce the same invalid-credentials error; the distinction exists
// only in the logs.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: logging user in", "email", email)

	if email == "" || password == "" {
		return "", model.NewInvalidCredentialsError()
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: no user with email", "email", email)
		return "", model.NewInvalidCredentialsError()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == "" {
		a.logger.Error("Auth service: user record has no password hash", "user_id", user.ID)
		return "", model.NewInvalidCredentialsError()
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return "", model.NewInvalidCredentialsError()
	}

	sessionToken, err := a.tokenManager.GenerateSessionToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return sessionToken, nil
}

// ResolveSession maps a presented token to a user ID. A missing,
// malformed, forged or expired token all collapse into the single
// unauthenticated error.
func (a *Auth) ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error) {
	if sessionToken == "" {
		return uuid.Nil, model.NewUnauthenticatedError()
	}

	userID, err := a.tokenManager.ParseSessionToken(sessionToken)
	if err != nil {
		a.logger.Debug("Auth service: session token rejected", "error", err.Error())
		return uuid.Nil, model.NewUnauthenticatedError()
	}
	if userID == uuid.Nil {
		return uuid.Nil, model.NewUnauthenticatedError()
	}

	return userID, nil
}
