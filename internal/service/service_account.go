package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-braintacle/internal/config"
	"github.com/MKhiriev/go-braintacle/internal/logger"
	"github.com/MKhiriev/go-braintacle/internal/store"
	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

// adminLogin is the operator created by EnsureAdmin.
const adminLogin = "admin"

// accountService is the concrete implementation of AccountService.
// It manages operator accounts, verifies credentials against bcrypt hashes
// and issues JWTs for authenticated operators.
type accountService struct {
	// operators is the data-access layer for operator accounts.
	operators store.OperatorRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt cost used for new passwords.
	hashCost int

	logger *logger.Logger
}

// NewAccountService constructs an AccountService backed by operators and
// populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(operators store.OperatorRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		operators:     operators,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		hashCost:      bcrypt.DefaultCost,
		logger:        logger,
	}
}

// Create hashes the plain-text password and stores a new operator.
//
// Returns the stored operator without password or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error, e.g. store.ErrLoginAlreadyExists.
func (a *accountService) Create(ctx context.Context, operator models.Operator) (models.Operator, error) {
	log := logger.FromContext(ctx)

	if operator.Login == "" || operator.Password == "" {
		log.Error().Str("login", operator.Login).Msg("invalid operator data provided")
		return models.Operator{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(operator.Password), a.hashCost)
	if err != nil {
		return models.Operator{}, fmt.Errorf("error hashing password: %w", err)
	}
	operator.PasswordHash = string(hash)
	operator.Password = ""

	created, err := a.operators.CreateOperator(ctx, operator)
	if err != nil {
		log.Err(err).Str("login", operator.Login).Msg("operator creation ended with error")
		return models.Operator{}, fmt.Errorf("operator creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("login", created.Login).Msg("operator created")
	return created, nil
}

func (a *accountService) Delete(ctx context.Context, login string) error {
	if login == "" {
		return ErrInvalidDataProvided
	}
	return a.operators.DeleteOperator(ctx, login)
}

func (a *accountService) List(ctx context.Context) ([]models.Operator, error) {
	return a.operators.ListOperators(ctx)
}

// Login authenticates an operator.
//
// Returns the stored operator record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. store.ErrNoOperatorWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *accountService) Login(ctx context.Context, operator models.Operator) (models.Operator, error) {
	log := logger.FromContext(ctx)

	if operator.Login == "" || operator.Password == "" {
		log.Error().Str("login", operator.Login).Msg("invalid operator data provided")
		return models.Operator{}, ErrInvalidDataProvided
	}

	found, err := a.operators.FindOperatorByLogin(ctx, operator.Login)
	if err != nil {
		log.Err(err).Str("login", operator.Login).Msg("operator search by login failed")
		return models.Operator{}, fmt.Errorf("operator search by login failed: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(operator.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		log.Warn().Int64("id", found.ID).Str("login", found.Login).Msg("wrong password")
		return models.Operator{}, ErrWrongPassword
	}
	if err != nil {
		return models.Operator{}, fmt.Errorf("error comparing password hash: %w", err)
	}

	found.PasswordHash = ""
	return found, nil
}

// CreateToken issues a signed JWT whose subject is the operator id.
func (a *accountService) CreateToken(ctx context.Context, operator models.Operator) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, operator.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any validation failure (expired, wrong
// issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *accountService) EnsureAdmin(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}

	existing, err := a.operators.ListOperators(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = a.Create(ctx, models.Operator{Login: adminLogin, Password: password})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return nil
	}
	return err
}
