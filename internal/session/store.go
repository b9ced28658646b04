package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/errors"
)

// Credential is what a user submits at login.
type Credential struct {
	Email    string
	Password string
}

// Fields carries raw registration form input, keyed by field name.
type Fields map[string]string

// Verifier checks a credential against whatever backs the role's identities.
// The directory implementations are hardcoded tables standing in for a real
// credential-verification call; swapping in a remote implementation must not
// change the Store contract.
type Verifier[T any] interface {
	Verify(ctx context.Context, cred Credential) (*T, error)
}

// Factory fabricates a new identity record from registration fields,
// including any derived fields fixed at registration time.
type Factory[T any] interface {
	New(ctx context.Context, fields Fields) (*T, error)
}

// Config parameterizes a Manager for one role.
type Config[T any] struct {
	Role      entity.Role
	KeyPrefix string      // Storage key prefix; combined with the session id it forms the KV key.
	Verifier  Verifier[T]
	Factory   Factory[T] // nil means the role has no self-service registration.
}

// Manager builds per-session Stores for a single role.
type Manager[T any] struct {
	cfg    Config[T]
	kv     KV
	logger *slog.Logger
}

// NewManager validates the role configuration and returns a Manager.
func NewManager[T any](cfg Config[T], kv KV, logger *slog.Logger) (*Manager[T], error) {
	if !cfg.Role.IsValid() {
		return nil, errors.Errorf("invalid session role: %q", cfg.Role)
	}
	if cfg.KeyPrefix == "" {
		return nil, errors.New("session key prefix must not be empty")
	}
	if cfg.Verifier == nil {
		return nil, errors.New("session verifier must not be nil")
	}
	if kv == nil {
		return nil, errors.New("session storage must not be nil")
	}

	return &Manager[T]{cfg: cfg, kv: kv, logger: logger}, nil
}

// Role returns the role this manager serves.
func (m *Manager[T]) Role() entity.Role {
	return m.cfg.Role
}

// Store binds a Store to one session id. The returned Store is not restored
// yet; callers must invoke Restore before making authorization decisions.
func (m *Manager[T]) Store(sessionID string) *Store[T] {
	return &Store[T]{
		cfg:    &m.cfg,
		kv:     m.kv,
		key:    m.cfg.KeyPrefix + ":" + sessionID,
		logger: m.logger,
	}
}

// Store holds zero-or-one identity for a role and mediates all mutations.
// Business-rule failures are reported as boolean false, never as errors;
// storage-layer failures degrade the session to in-memory only.
type Store[T any] struct {
	cfg    *Config[T]
	kv     KV
	key    string
	logger *slog.Logger

	identity *T
	restored bool
	degraded bool
}

// Restore reads the persisted entry for this session, if any. Missing or
// corrupt entries restore to logged-out; storage failures degrade the store
// instead of propagating. Restore completes exactly once; repeated calls are
// no-ops, so Loading never reverts to true.
func (s *Store[T]) Restore(ctx context.Context) {
	if s.restored {
		return
	}
	defer func() { s.restored = true }()

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return
		}
		s.degraded = true
		s.log().Warn("Session storage unreachable, starting logged out",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))

		return
	}

	var identity T
	if err := json.Unmarshal(raw, &identity); err != nil {
		// Corrupt entry is treated as absent.
		s.log().Warn("Discarding corrupt session entry",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))

		return
	}

	s.identity = &identity
}

// Login checks the credential through the role's verifier. On match the
// associated identity becomes current and is persisted; on mismatch state is
// left unchanged and false is returned.
func (s *Store[T]) Login(ctx context.Context, cred Credential) bool {
	identity, err := s.cfg.Verifier.Verify(ctx, cred)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			s.log().Error("Credential verification failed",
				slog.String("role", s.cfg.Role.String()), slog.Any("error", err))
		}

		return false
	}

	s.identity = identity
	s.persist(ctx)
	s.log().Info("Session established",
		slog.String("role", s.cfg.Role.String()), slog.String("email", cred.Email))

	return true
}

// Register synthesizes a fresh identity from the given fields, persists it
// and marks it current. Roles without a factory never register.
func (s *Store[T]) Register(ctx context.Context, fields Fields) bool {
	if s.cfg.Factory == nil {
		return false
	}

	identity, err := s.cfg.Factory.New(ctx, fields)
	if err != nil {
		s.log().Warn("Registration rejected",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))

		return false
	}

	s.identity = identity
	s.persist(ctx)
	s.log().Info("Identity registered", slog.String("role", s.cfg.Role.String()))

	return true
}

// Mutate applies fn to the current identity and persists the result. It is
// the profile-edit path; it returns false when no identity is current.
func (s *Store[T]) Mutate(ctx context.Context, fn func(*T)) bool {
	if s.identity == nil {
		return false
	}

	fn(s.identity)
	s.persist(ctx)

	return true
}

// Logout clears the current identity from memory and persistent storage.
// It is idempotent.
func (s *Store[T]) Logout(ctx context.Context) {
	s.identity = nil

	if err := s.kv.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		s.degraded = true
		s.log().Warn("Failed to clear persisted session",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))
	}
}

// Current returns the current identity, if any.
func (s *Store[T]) Current() (*T, bool) {
	if s.identity == nil {
		return nil, false
	}

	return s.identity, true
}

// IsAuthenticated reports whether an identity is current.
func (s *Store[T]) IsAuthenticated() bool {
	return s.identity != nil
}

// Loading reports whether initial restoration is still pending. Consumers
// must not make authorization decisions while Loading is true.
func (s *Store[T]) Loading() bool {
	return !s.restored
}

// Degraded reports whether a storage failure downgraded this session to
// in-memory only for the current load.
func (s *Store[T]) Degraded() bool {
	return s.degraded
}

// State snapshots the flags the route guard decides on.
func (s *Store[T]) State() State {
	return State{
		Loading:       s.Loading(),
		Authenticated: s.IsAuthenticated(),
	}
}

func (s *Store[T]) persist(ctx context.Context) {
	raw, err := json.Marshal(s.identity)
	if err != nil {
		s.degraded = true
		s.log().Error("Failed to encode session entry",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))

		return
	}

	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		// Degrade to an in-memory-only session rather than failing the login.
		s.degraded = true
		s.log().Warn("Failed to persist session entry",
			slog.String("role", s.cfg.Role.String()), slog.Any("error", err))
	}
}

func (s *Store[T]) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}

	return slog.Default()
}
