package session

import (
	"context"
	"testing"

	"nexprev/internal/domain/entity"
	domainerrors "nexprev/internal/domain/errors"
	"nexprev/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// stubVerifier accepts a single fixed credential.
type stubVerifier struct {
	email    string
	password string
	identity testIdentity
}

func (v stubVerifier) Verify(_ context.Context, cred Credential) (*testIdentity, error) {
	if cred.Email != v.email || cred.Password != v.password {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("stub mismatch")
	}
	identity := v.identity

	return &identity, nil
}

// stubFactory requires a name field.
type stubFactory struct{}

func (stubFactory) New(_ context.Context, fields Fields) (*testIdentity, error) {
	if fields["name"] == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("campo obrigatório: name")
	}

	return &testIdentity{ID: "generated", Name: fields["name"]}, nil
}

// mapKV is a minimal in-memory KV for store tests.
type mapKV struct {
	entries map[string][]byte
}

func newMapKV() *mapKV {
	return &mapKV{entries: make(map[string][]byte)}
}

func (s *mapKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	return value, nil
}

func (s *mapKV) Set(_ context.Context, key string, value []byte) error {
	s.entries[key] = value

	return nil
}

func (s *mapKV) Delete(_ context.Context, key string) error {
	delete(s.entries, key)

	return nil
}

// brokenKV fails every operation, simulating unavailable storage.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage down")
}

func (brokenKV) Set(context.Context, string, []byte) error {
	return errors.New("storage down")
}

func (brokenKV) Delete(context.Context, string) error {
	return errors.New("storage down")
}

func newTestManager(t *testing.T, kv KV) *Manager[testIdentity] {
	t.Helper()

	mgr, err := NewManager(Config[testIdentity]{
		Role:      entity.RoleCustomer,
		KeyPrefix: "test",
		Verifier: stubVerifier{
			email:    "teste@teste.com",
			password: "1",
			identity: testIdentity{ID: "1", Name: "João Silva"},
		},
		Factory: stubFactory{},
	}, kv, nil)
	require.NoError(t, err)

	return mgr
}

func TestNewManager_RejectsInvalidConfig(t *testing.T) {
	kv := newMapKV()

	_, err := NewManager(Config[testIdentity]{Role: "nobody", KeyPrefix: "x", Verifier: stubVerifier{}}, kv, nil)
	assert.Error(t, err)

	_, err = NewManager(Config[testIdentity]{Role: entity.RoleCustomer, Verifier: stubVerifier{}}, kv, nil)
	assert.Error(t, err)

	_, err = NewManager(Config[testIdentity]{Role: entity.RoleCustomer, KeyPrefix: "x"}, kv, nil)
	assert.Error(t, err)

	_, err = NewManager(Config[testIdentity]{Role: entity.RoleCustomer, KeyPrefix: "x", Verifier: stubVerifier{}}, nil, nil)
	assert.Error(t, err)
}

func TestStore_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	store := newTestManager(t, kv).Store("sid")
	store.Restore(ctx)

	ok := store.Login(ctx, Credential{Email: "teste@teste.com", Password: "1"})

	require.True(t, ok)
	assert.True(t, store.IsAuthenticated())

	identity, found := store.Current()
	require.True(t, found)
	assert.Equal(t, "1", identity.ID)
	assert.Equal(t, "João Silva", identity.Name)

	_, persisted := kv.entries["test:sid"]
	assert.True(t, persisted)
}

func TestStore_LoginMismatchLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	store := newTestManager(t, kv).Store("sid")
	store.Restore(ctx)

	ok := store.Login(ctx, Credential{Email: "teste@teste.com", Password: "wrong"})

	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, kv.entries)
}

func TestStore_LogoutClearsPersistedEntryAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	store := newTestManager(t, kv).Store("sid")
	store.Restore(ctx)
	require.True(t, store.Login(ctx, Credential{Email: "teste@teste.com", Password: "1"}))

	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, kv.entries)

	// Second logout is harmless.
	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	mgr := newTestManager(t, kv)

	first := mgr.Store("sid")
	first.Restore(ctx)
	require.True(t, first.Login(ctx, Credential{Email: "teste@teste.com", Password: "1"}))
	want, _ := first.Current()

	// A fresh store over the same key simulates a page reload.
	second := mgr.Store("sid")
	second.Restore(ctx)

	got, found := second.Current()
	require.True(t, found)
	assert.Equal(t, *want, *got)
}

func TestStore_LoadingTransitionsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(t, newMapKV()).Store("sid")

	assert.True(t, store.Loading())

	store.Restore(ctx)
	assert.False(t, store.Loading())

	// Repeated restores never flip Loading back.
	store.Restore(ctx)
	assert.False(t, store.Loading())
	store.Logout(ctx)
	store.Restore(ctx)
	assert.False(t, store.Loading())
}

func TestStore_RestoreCorruptEntryFailsOpen(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	kv.entries["test:sid"] = []byte("{not json")

	store := newTestManager(t, kv).Store("sid")
	store.Restore(ctx)

	assert.False(t, store.Loading())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_StorageFailureDegradesToMemoryOnly(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(t, brokenKV{}).Store("sid")

	store.Restore(ctx)
	assert.False(t, store.Loading())
	assert.False(t, store.IsAuthenticated())
	assert.True(t, store.Degraded())

	// Login still succeeds in memory for this load.
	ok := store.Login(ctx, Credential{Email: "teste@teste.com", Password: "1"})
	require.True(t, ok)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_RegisterValidatesRequiredFields(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	store := newTestManager(t, kv).Store("sid")
	store.Restore(ctx)

	assert.False(t, store.Register(ctx, Fields{}))
	assert.False(t, store.IsAuthenticated())

	require.True(t, store.Register(ctx, Fields{"name": "Maria"}))
	assert.True(t, store.IsAuthenticated())

	identity, _ := store.Current()
	assert.Equal(t, "Maria", identity.Name)

	_, persisted := kv.entries["test:sid"]
	assert.True(t, persisted)
}

func TestStore_RegisterWithoutFactoryIsRefused(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()

	mgr, err := NewManager(Config[testIdentity]{
		Role:      entity.RoleAdmin,
		KeyPrefix: "admin",
		Verifier:  stubVerifier{email: "a", password: "b"},
	}, kv, nil)
	require.NoError(t, err)

	store := mgr.Store("sid")
	store.Restore(ctx)

	assert.False(t, store.Register(ctx, Fields{"name": "x"}))
}

func TestStore_MutatePersistsProfileEdit(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	mgr := newTestManager(t, kv)

	store := mgr.Store("sid")
	store.Restore(ctx)

	assert.False(t, store.Mutate(ctx, func(*testIdentity) {}))

	require.True(t, store.Login(ctx, Credential{Email: "teste@teste.com", Password: "1"}))
	require.True(t, store.Mutate(ctx, func(id *testIdentity) { id.Name = "João Souza" }))

	reloaded := mgr.Store("sid")
	reloaded.Restore(ctx)
	identity, found := reloaded.Current()
	require.True(t, found)
	assert.Equal(t, "João Souza", identity.Name)
}
