package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/officeflow/officeflow-backend-go/internal/domain/auth"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/jwt"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

type Service struct {
	store      store.Store
	cache      *store.Cache
	jwtService jwt.Service
}

func NewService(st store.Store, cache *store.Cache, jwtService jwt.Service) *Service {
	return &Service{store: st, cache: cache, jwtService: jwtService}
}

// Register creates a credential document for an identity. The role is
// never stored with the credential: it comes from the employee record,
// or the provisional heuristic until that record exists.
func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, doc := range s.cache.Get(store.CollectionUsers) {
		if store.FieldString(doc.Fields, "email") == req.Email {
			return auth.ErrInvalidCredentials
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.store.Create(ctx, store.CollectionUsers, map[string]any{
		"email":        req.Email,
		"passwordHash": string(hash),
	})
	return err
}

// Login verifies credentials and issues tokens. The response role is
// the session role at login time: authoritative when the employee
// record is already loaded, otherwise the email heuristic.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	var hash string
	for _, doc := range s.cache.Get(store.CollectionUsers) {
		if store.FieldString(doc.Fields, "email") == req.Email {
			hash = store.FieldString(doc.Fields, "passwordHash")
			break
		}
	}
	if hash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(req.Email)
}

// LoginIdentity issues tokens for an identity already verified by the
// external provider (the OAuth callback path).
func (s *Service) LoginIdentity(ctx context.Context, email string) (auth.LoginResponse, error) {
	return s.issueTokens(email)
}

func (s *Service) issueTokens(email string) (auth.LoginResponse, error) {
	sess := s.Resolve(email)

	access, accessExp, err := s.jwtService.GenerateAccessToken(email, sess.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:           access,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refresh,
		RefreshTokenExpiresIn: refreshExp,
		Email:                 email,
		Role:                  string(sess.Role),
		RoleProvisional:       !sess.Resolved(),
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	email, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	sess := s.Resolve(email)
	access, accessExp, err := s.jwtService.GenerateAccessToken(email, sess.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:          access,
		AccessTokenExpiresIn: accessExp,
		Email:                email,
		Role:                 string(sess.Role),
		RoleProvisional:      !sess.Resolved(),
	}, nil
}

// Logout revokes a refresh token. Access tokens simply age out.
func (s *Service) Logout(refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

// Resolve builds the acting session for an identity email against the
// current employees snapshot.
func (s *Service) Resolve(email string) session.Session {
	employees := codec.Employees(s.cache.Get(store.CollectionEmployees))
	return session.Resolve(email, employees)
}
