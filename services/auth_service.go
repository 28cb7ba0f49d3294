package services

import (
	sterrors "errors"
	"fmt"

	"msgboard/auth"
	"msgboard/domain"
	"msgboard/errors"
	"msgboard/repositories"
)

type IAuthService interface {
	Register(username, email, password string) (domain.User, error)
	Login(username, password string) (Session, error)
	Logout(sessionID string) error
	CurrentUser(sessionID string) (domain.User, error)
}

// Session pairs an opaque session identifier with the user it was
// issued for. Only the identifier travels to the client.
type Session struct {
	ID   string
	User domain.User
}

type AuthService struct {
	userRepository    repositories.IUserRepository
	sessionRepository repositories.ISessionRepository
}

func NewAuthService(users repositories.IUserRepository, sessions repositories.ISessionRepository) IAuthService {
	return &AuthService{userRepository: users, sessionRepository: sessions}
}

func (s *AuthService) Register(username, email, password string) (domain.User, error) {
	valReq := auth.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	// 1. Validate before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return domain.User{}, err
	}

	// 2. Pre-empt the duplicate with a user-correctable error. This
	// check-then-act is not atomic with the insert; the UNIQUE
	// constraint catches the race and surfaces as a generic failure.
	exists, err := s.userRepository.EmailExists(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, errors.ErrEmailInUse
	}

	// 3. Hash in the service layer to keep the repository unaware of
	// plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	return s.userRepository.CreateUser(username, email, hashedPassword)
}

func (s *AuthService) Login(username, password string) (Session, error) {
	// Absent user and wrong password collapse into the same error so
	// callers can never distinguish which part was wrong. Storage
	// failures stay distinct so they surface as 500s, not rejections.
	user, err := s.userRepository.GetUserByUsername(username)
	if sterrors.Is(err, errors.ErrUserNotFound) {
		return Session{}, errors.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.ComparePassword(password, user.PasswordHash) {
		return Session{}, errors.ErrInvalidCredentials
	}

	sessionID, err := s.sessionRepository.CreateSession(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}

	return Session{ID: sessionID, User: user}, nil
}

func (s *AuthService) Logout(sessionID string) error {
	return s.sessionRepository.DeleteSession(sessionID)
}

// CurrentUser rehydrates the identity behind a session identifier.
// The user record is re-fetched on every request, never cached, so a
// user deleted mid-session resolves to ErrUserNotFound and the caller
// treats the request as unauthenticated.
func (s *AuthService) CurrentUser(sessionID string) (domain.User, error) {
	userID, err := s.sessionRepository.GetSession(sessionID)
	if err != nil {
		return domain.User{}, err
	}
	return s.userRepository.GetUserByID(userID)
}
