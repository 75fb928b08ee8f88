package service

import (
	"context"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
	"sanctuary-api/internal/util"

	"go.uber.org/zap"
)

// Login checks the credentials, issues a session, and stamps the user's last
// login.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	// only the email reaches the error hook, never the password
	return run(ctx, s, "auth:login", map[string]any{"email": email}, func() (AuthResponse, error) {
		credential, ok := s.store.CredentialByEmail(email)
		if !ok || credential.Password != password {
			return AuthResponse{}, apierr.New(401, apierr.KindInvalidCredentials, "Invalid email or password")
		}

		if err := s.store.TouchLogin(credential.UserID); err != nil {
			return AuthResponse{}, apierr.NotFound(apierr.KindUserNotFound, "User profile missing for credentials")
		}
		user, err := s.store.UserByID(credential.UserID)
		if err != nil {
			return AuthResponse{}, err
		}

		sess := s.sessions.Create(user.ID)
		util.SessionsIssuedTotal.Inc()
		s.logger.Info("User logged in", zap.String("user_id", user.ID))

		return AuthResponse{Token: sess.Token, User: user, ExpiresAt: sess.ExpiresAt}, nil
	})
}

// Logout revokes the token; revoking an unknown token succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	return runVoid(ctx, s, "auth:logout", map[string]any{"token": token}, func() error {
		s.sessions.Revoke(token)
		util.SessionsRevokedTotal.Inc()
		return nil
	})
}

// RefreshSession exchanges a valid token for a new one, invalidating the old
// token.
func (s *Service) RefreshSession(ctx context.Context, token string) (AuthResponse, error) {
	return run(ctx, s, "auth:refresh", map[string]any{"token": token}, func() (AuthResponse, error) {
		renewed, err := s.sessions.Refresh(token)
		if err != nil {
			return AuthResponse{}, err
		}

		user, err := s.store.UserByID(renewed.UserID)
		if err != nil {
			return AuthResponse{}, err
		}

		util.SessionsIssuedTotal.Inc()
		return AuthResponse{Token: renewed.Token, User: user, ExpiresAt: renewed.ExpiresAt}, nil
	})
}

// GetProfile resolves the session's user.
func (s *Service) GetProfile(ctx context.Context, token string) (models.User, error) {
	return run(ctx, s, "auth:profile", map[string]any{"token": token}, func() (models.User, error) {
		sess, err := s.sessions.Require(token)
		if err != nil {
			return models.User{}, err
		}
		return s.store.UserByID(sess.UserID)
	})
}

// FetchUsers lists every user; admin only.
func (s *Service) FetchUsers(ctx context.Context, token string) ([]models.User, error) {
	return run(ctx, s, "users:list", map[string]any{"token": token}, func() ([]models.User, error) {
		sess, err := s.sessions.Require(token)
		if err != nil {
			return nil, err
		}

		user, err := s.store.UserByID(sess.UserID)
		if err != nil {
			return nil, err
		}
		if user.Role != models.RoleAdmin {
			return nil, apierr.New(403, apierr.KindForbidden, "Admin privileges required")
		}

		return s.store.Users(), nil
	})
}
