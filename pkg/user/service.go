package user

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/blacklist"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/generator"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/session"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
)

const sessionIDLen = 24

type ServiceInterface interface {
	Register(username, email, password, pic string) (*User, error)
	Login(email, password string) (*User, string, string, error)
	Logout(tokenString, sessionID string) error
}

type Service struct {
	Repo    Repository
	Session session.Repository
	Ledger  blacklist.Repository
	Tokens  *token.Service
}

func NewService(repo Repository, session session.Repository, ledger blacklist.Repository, tokens *token.Service) *Service {
	return &Service{Repo: repo, Session: session, Ledger: ledger, Tokens: tokens}
}

// Register creates the identity record only. Token and session come from an
// explicit login.
func (s *Service) Register(username, email, password, pic string) (*User, error) {
	email = strings.ToLower(email)

	if _, err := s.Repo.FindByEmail(email); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}

	if pic == "" {
		pic = DefaultPic
	}

	user := &User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Pic:      pic,
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login returns the user, a signed bearer token, and a fresh session id.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *Service) Login(email, password string) (*User, string, string, error) {
	user, err := s.Repo.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	tokenString, err := s.Tokens.Issue(user.ID, user.Pic)
	if err != nil {
		return nil, "", "", fmt.Errorf("token signing error: %w", err)
	}

	sessionID, err := generator.GenerateRandomID(sessionIDLen)
	if err != nil {
		return nil, "", "", fmt.Errorf("SessionID gen error: %w", err)
	}
	if _, err := s.Session.Create(user.ID, sessionID); err != nil {
		return nil, "", "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, tokenString, sessionID, nil
}

// Logout blacklists the token first, then destroys the session. A failure
// after the blacklist insert leaves the token dead, which is the safe side of
// the gap.
func (s *Service) Logout(tokenString, sessionID string) error {
	if err := s.Ledger.Add(tokenString); err != nil {
		return err
	}

	if sessionID != "" {
		if err := s.Session.Invalidate(sessionID); err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}

	return nil
}
