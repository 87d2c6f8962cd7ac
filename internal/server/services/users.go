package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	wire "github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/config"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

// hashPassword is a seam so tests can use a cheaper bcrypt cost.
var hashPassword = func(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register stores a new account with a bcrypt hash of password.
func (s *UserService) Register(ctx context.Context, username, password, email string, role wire.Role) (*models.User, error) {
	return s.register(ctx, s.db, username, password, email, role)
}

func (s *UserService) register(ctx context.Context, db dbx.DBTX, username, password, email string, role wire.Role) (*models.User, error) {
	if username == "" || password == "" {
		return nil, wire.ValidationErrors{"username": "username and password are required"}
	}

	hash, err := hashPassword([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash, Role: role}
	user, err = s.repomanager.Users(db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// EnsureAdmin creates the admin account unless an account with that
// username already exists. It reports whether the account was created.
// An existing account keeps its password.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password, email string) (bool, error) {
	created := false
	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.repomanager.Users(tx).GetUserByLogin(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		if _, err := s.register(ctx, tx, username, password, email, wire.RoleAdmin); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*wire.LoginResponse, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &wire.LoginResponse{Token: token, User: user.AuthUser()}, nil
}

// Authenticate validates a bearer token issued by Login.
func (s *UserService) Authenticate(token string) (*auth.Principal, error) {
	return auth.ParseToken(token, s.jwtSecret)
}
