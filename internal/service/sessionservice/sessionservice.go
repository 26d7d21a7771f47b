package sessionservice

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

import (
	"context"
	"errors"
	"time"

	"github.com/alexrkaufman/strawcoin/internal/domain"
	"github.com/alexrkaufman/strawcoin/internal/pg"
	"github.com/alexrkaufman/strawcoin/pkg/auth"
	"github.com/alexrkaufman/strawcoin/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	FindByUsername(ctx context.Context, username string) (*domain.Session, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteIdleBefore(ctx context.Context, cutoff time.Time, keep string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type Ledger interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username string, isPerformer bool) (*domain.User, error)
}

type Options struct {
	Timeout                time.Duration
	PrivilegedUsername     string
	PrivilegedEnabled      bool
	PrivilegedPasswordHash string
}

type Service struct {
	sessions    Repo
	ledger      Ledger
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	opts        Options
	now         func() time.Time
	newID       func() string
}

func New(sessions Repo, ledger Ledger, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, opts Options) *Service {
	return &Service{
		sessions:    sessions,
		ledger:      ledger,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		opts:        opts,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
	Created bool
}

// IsPrivileged reports whether username is the configured privileged
// account. Its sessions never expire.
func (s *Service) IsPrivileged(username string) bool {
	return username != "" && username == s.opts.PrivilegedUsername
}

// HasPrivilegedAccess reports whether username may use the privileged
// operations.
func (s *Service) HasPrivilegedAccess(username string) bool {
	return s.opts.PrivilegedEnabled && s.IsPrivileged(username)
}

func (s *Service) expired(session *domain.Session, now time.Time) bool {
	if s.IsPrivileged(session.Username) {
		return false
	}
	return now.Sub(session.LastActivity) > s.opts.Timeout
}

// Remaining returns how long session stays valid without activity. The
// second result is false for sessions that never expire.
func (s *Service) Remaining(session *domain.Session) (time.Duration, bool) {
	if s.IsPrivileged(session.Username) {
		return 0, false
	}
	left := s.opts.Timeout - s.now().Sub(session.LastActivity)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Login opens the single session allowed per user, registering the user on
// first sight. An expired session left behind is discarded. A privileged
// login that passed the passphrase check replaces the live session too.
func (s *Service) Login(ctx context.Context, username string, isPerformer bool, passphrase string) (*LoginResult, error) {
	name, err := validate.Username(username)
	if err != nil {
		return nil, err
	}
	verified := false
	if s.HasPrivilegedAccess(name) && s.opts.PrivilegedPasswordHash != "" {
		if !s.hashService.ComparePassphrase(s.opts.PrivilegedPasswordHash, passphrase) {
			zap.L().Info("privileged login rejected", zap.String("username", name))
			return nil, domain.ErrInvalidCredentials
		}
		verified = true
	}

	now := s.now()
	result := &LoginResult{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.sessions.FindByUsername(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			if !s.expired(existing, now) {
				if !verified {
					return domain.ErrSessionConflict
				}
				zap.L().Warn("privileged session replaced", zap.String("username", name), zap.String("session", existing.ID))
			}
			if err := s.sessions.Delete(ctx, existing.ID); err != nil {
				return err
			}
		}

		user, err := s.ledger.GetUser(ctx, name)
		if errors.Is(err, domain.ErrUserNotFound) {
			user, err = s.ledger.CreateUser(ctx, name, isPerformer && !s.IsPrivileged(name))
			result.Created = err == nil
		}
		if err != nil {
			return err
		}

		session := &domain.Session{ID: s.newID(), Username: name, CreatedAt: now, LastActivity: now}
		if err := s.sessions.Create(ctx, session); err != nil {
			return err
		}
		token, err := s.jwtService.GenerateToken(name, session.ID)
		if err != nil {
			return err
		}
		result.Token, result.Session, result.User = token, session, user
		return nil
	})
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			zap.L().Info("login refused", zap.String("username", name), zap.String("code", string(derr.Code)))
			return nil, err
		}
		zap.L().Error("login failed", zap.String("username", name), zap.Error(err))
		return nil, domain.OperationFailed(err)
	}

	zap.L().Info("user logged in", zap.String("username", name), zap.Bool("created", result.Created))
	return result, nil
}

// Authenticate resolves a session token and records activity on it.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}
	session, err := s.Touch(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if session.Username != claims.Username() {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// Touch extends an active session. An idle one is deleted and reported as
// expired.
func (s *Service) Touch(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		zap.L().Error("can't load session", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionExpired
	}

	now := s.now()
	if s.expired(session, now) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			zap.L().Error("can't delete expired session", zap.String("username", session.Username), zap.Error(err))
		}
		zap.L().Info("session expired", zap.String("username", session.Username))
		return nil, domain.ErrSessionExpired
	}
	if err := s.sessions.Touch(ctx, session.ID, now); err != nil {
		return nil, err
	}
	session.LastActivity = now
	return session, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return domain.OperationFailed(err)
	}
	return nil
}

// PurgeExpired deletes idle sessions. The privileged account's session is
// kept.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteIdleBefore(ctx, s.now().Add(-s.opts.Timeout), s.opts.PrivilegedUsername)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		zap.L().Info("expired sessions purged", zap.Int64("count", n))
	}
	return n, nil
}

// ClearSessions ends every session, the privileged one included.
func (s *Service) ClearSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteAll(ctx)
	if err != nil {
		zap.L().Error("can't clear sessions", zap.Error(err))
		return 0, domain.OperationFailed(err)
	}
	zap.L().Info("all sessions cleared", zap.Int64("count", n))
	return n, nil
}
