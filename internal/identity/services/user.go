// Package services contains the identity service's business logic.
// UserService registers credentials and exchanges valid credentials for
// signed bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/identity/models"
	"github.com/dmitrijs2005/moviecategories/internal/identity/repositories/repomanager"
)

const (
	MsgWrongCredentials = "Wrong User or Password"
	MsgEmailInUse       = "Email already in use."
)

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(password string) (hash string, salt string, err error)
	Verify(hash string, salt string, candidate string) bool
}

// TokenIssuer is satisfied by *token.Codec.
type TokenIssuer interface {
	Issue(subject string, principalID int64) (string, time.Time, error)
}

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	Token      string
	ExpireTime time.Time
}

// UserService provides authentication-related operations:
// - Register: create credentials
// - IssueToken: verify credentials and mint a token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer

	// dummyHash and dummySalt are verified against when the email is unknown,
	// so both login failures cost one full derivation.
	dummyHash string
	dummySalt string
}

// Fallback pair in the hasher's format (32-byte key, 16-byte salt) used if
// the dummy credential cannot be hashed at construction.
const (
	fallbackDummyHash = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	fallbackDummySalt = "AAAAAAAAAAAAAAAAAAAAAA=="
)

// NewUserService constructs a UserService from its collaborators.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, t TokenIssuer) *UserService {
	s := &UserService{db: db, repomanager: m, hasher: h, tokens: t}

	hash, salt, err := h.Hash("unknown-user-placeholder")
	if err != nil {
		hash, salt = fallbackDummyHash, fallbackDummySalt
	}
	s.dummyHash, s.dummySalt = hash, salt
	return s
}

// Register stores a new credential and returns its id. An email that is
// already registered yields a Conflict, whether detected by the lookup or by
// the store's unique constraint.
func (s *UserService) Register(ctx context.Context, email, password string) (int64, error) {
	email = normalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	_, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return 0, common.Conflict(MsgEmailInUse)
	case !errors.Is(err, common.ErrorNotFound):
		return 0, fmt.Errorf("error searching user: %w", err)
	}

	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash, Salt: salt})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return 0, common.Conflict(MsgEmailInUse)
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return u.ID, nil
}

// IssueToken verifies the credentials and returns a freshly signed token.
// Unknown emails and wrong passwords produce the same Unauthorized error
// after the same amount of hashing work.
func (s *UserService) IssueToken(ctx context.Context, email, password string) (*IssuedToken, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = s.hasher.Verify(s.dummyHash, s.dummySalt, password)
			return nil, common.Unauthorized(MsgWrongCredentials)
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, user.Salt, password) {
		return nil, common.Unauthorized(MsgWrongCredentials)
	}

	tok, exp, err := s.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &IssuedToken{Token: tok, ExpireTime: exp}, nil
}

// normalizeEmail applies the single case policy used for both storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
