// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package session_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftboard/craftboard/internal/identity"
	"github.com/craftboard/craftboard/internal/platform/sec"
	"github.com/craftboard/craftboard/internal/session"
)

// # Test Doubles

type fakeProvider struct {
	session    *identity.Session
	getErr     error
	signOutErr error

	handler      identity.Handler
	unsubscribed bool
	signOutCalls int
}

func (p *fakeProvider) GetSession(ctx context.Context) (*identity.Session, error) {
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.session, nil
}

func (p *fakeProvider) OnSessionChange(ctx context.Context, handler identity.Handler) (identity.Subscription, error) {
	p.handler = handler
	return p, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.signOutCalls++
	return p.signOutErr
}

func (p *fakeProvider) Unsubscribe() error {
	p.unsubscribed = true
	return nil
}

// emit delivers an event the way the real provider does: serially.
func (p *fakeProvider) emit(event identity.Event) {
	p.handler(event)
}

type fakeRoleLookup struct {
	roles   map[string]sec.UserRole
	err     error
	lookups int
}

func (l *fakeRoleLookup) FindRoleByID(ctx context.Context, id string) (sec.UserRole, error) {
	l.lookups++
	if l.err != nil {
		return "", l.err
	}
	return l.roles[id], nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(ctx context.Context, message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(ctx context.Context, message string) {
	n.errors = append(n.errors, message)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sessionFor(id string, email string) *identity.Session {
	return &identity.Session{
		Principal: identity.Principal{ID: id, Email: email},
		TokenHash: "deadbeef",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// # Initialization

/*
TestStore_Initialize_RestoresSession verifies that an existing remote session
is restored and the loading flag is cleared.
*/
func TestStore_Initialize_RestoresSession(t *testing.T) {
	provider := &fakeProvider{session: sessionFor("user-1", "a@craftboard.app")}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"user-1": sec.RoleUser}}
	notifier := &recordingNotifier{}

	store := session.NewStore(provider, roles, notifier, testLogger())
	assert.True(t, store.Loading())

	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	state := store.CurrentState()
	assert.False(t, state.Loading)
	assert.True(t, state.Authenticated())
	assert.Equal(t, "user-1", state.Principal.ID)
	assert.False(t, state.IsAdmin)
}

/*
TestStore_Initialize_NoSession verifies that an absent remote session yields
an anonymous state without an error and without a role lookup.
*/
func TestStore_Initialize_NoSession(t *testing.T) {
	provider := &fakeProvider{}
	roles := &fakeRoleLookup{}
	notifier := &recordingNotifier{}

	store := session.NewStore(provider, roles, notifier, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	state := store.CurrentState()
	assert.False(t, state.Loading)
	assert.False(t, state.Authenticated())
	assert.False(t, state.IsAdmin)
	assert.Zero(t, roles.lookups)
	assert.Empty(t, notifier.errors)
}

/*
TestStore_Initialize_ProviderFailure verifies that a failed restore surfaces
the error, notifies the user, and still clears the loading flag.
*/
func TestStore_Initialize_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{getErr: errors.New("provider unreachable")}
	notifier := &recordingNotifier{}

	store := session.NewStore(provider, &fakeRoleLookup{}, notifier, testLogger())
	err := store.Initialize(context.Background())

	require.Error(t, err)
	assert.False(t, store.Loading())
	assert.False(t, store.CurrentState().Authenticated())
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Failed to initialize authentication", notifier.errors[0])
}

/*
TestStore_Initialize_Idempotent verifies that repeated initialization does
not restore or subscribe twice.
*/
func TestStore_Initialize_Idempotent(t *testing.T) {
	provider := &fakeProvider{session: sessionFor("user-1", "a@craftboard.app")}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"user-1": sec.RoleUser}}

	store := session.NewStore(provider, roles, &recordingNotifier{}, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	lookupsAfterFirst := roles.lookups
	require.NoError(t, store.Initialize(context.Background()))
	assert.Equal(t, lookupsAfterFirst, roles.lookups)
}

// # Authorization Resolution

/*
TestStore_CheckAdmin verifies the admin derivation: anonymous short-circuits,
lookup failures fail closed, and only an admin role grants the flag.
*/
func TestStore_CheckAdmin(t *testing.T) {
	tests := []struct {
		name      string
		session   *identity.Session
		roles     map[string]sec.UserRole
		lookupErr error
		isAdmin   bool
	}{
		{"anonymous", nil, nil, nil, false},
		{"regular_user", sessionFor("u1", "u@x.dev"), map[string]sec.UserRole{"u1": sec.RoleUser}, nil, false},
		{"admin_user", sessionFor("a1", "a@x.dev"), map[string]sec.UserRole{"a1": sec.RoleAdmin}, nil, true},
		{"lookup_failure_fails_closed", sessionFor("a1", "a@x.dev"), map[string]sec.UserRole{"a1": sec.RoleAdmin}, errors.New("db down"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{session: tt.session}
			roles := &fakeRoleLookup{roles: tt.roles, err: tt.lookupErr}

			store := session.NewStore(provider, roles, &recordingNotifier{}, testLogger())
			require.NoError(t, store.Initialize(context.Background()))
			defer store.Close()

			assert.Equal(t, tt.isAdmin, store.CheckAdmin(context.Background()))
			assert.Equal(t, tt.isAdmin, store.IsAdmin())

			if tt.session == nil {
				assert.Zero(t, roles.lookups)
			}
		})
	}
}

// # Session-Change Events

/*
TestStore_Events_LastWins verifies that successive events replace the state
wholesale and the final event is authoritative.
*/
func TestStore_Events_LastWins(t *testing.T) {
	provider := &fakeProvider{}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{
		"alice": sec.RoleAdmin,
		"bob":   sec.RoleUser,
	}}

	store := session.NewStore(provider, roles, &recordingNotifier{}, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	// 1. Alice signs in and is an admin.
	provider.emit(identity.Event{Type: identity.EventSignedIn, Session: sessionFor("alice", "alice@x.dev")})
	assert.Equal(t, "alice", store.Principal().ID)
	assert.True(t, store.IsAdmin())

	// 2. Bob replaces Alice; the admin grant must not survive the switch.
	provider.emit(identity.Event{Type: identity.EventSignedIn, Session: sessionFor("bob", "bob@x.dev")})
	assert.Equal(t, "bob", store.Principal().ID)
	assert.False(t, store.IsAdmin())

	// 3. Signed-out clears everything.
	provider.emit(identity.Event{Type: identity.EventSignedOut})
	assert.Nil(t, store.Principal())
	assert.False(t, store.IsAdmin())
}

/*
TestStore_Events_NilSessionClears verifies that an event without a session
payload is treated as a sign-out regardless of its type.
*/
func TestStore_Events_NilSessionClears(t *testing.T) {
	provider := &fakeProvider{session: sessionFor("alice", "alice@x.dev")}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"alice": sec.RoleAdmin}}

	store := session.NewStore(provider, roles, &recordingNotifier{}, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	require.True(t, store.IsAdmin())

	provider.emit(identity.Event{Type: identity.EventTokenRefreshed, Session: nil})
	assert.False(t, store.CurrentState().Authenticated())
	assert.False(t, store.IsAdmin())
}

// # Sign-Out

/*
TestStore_SignOut_Success verifies that a confirmed termination clears the
principal and admin flag and emits a success notification.
*/
func TestStore_SignOut_Success(t *testing.T) {
	provider := &fakeProvider{session: sessionFor("alice", "alice@x.dev")}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"alice": sec.RoleAdmin}}
	notifier := &recordingNotifier{}

	store := session.NewStore(provider, roles, notifier, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	require.NoError(t, store.SignOut(context.Background()))

	assert.Nil(t, store.Principal())
	assert.False(t, store.IsAdmin())
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Signed out successfully", notifier.successes[0])
}

/*
TestStore_SignOut_ProviderFailure verifies that a failed termination leaves
the local state untouched.
*/
func TestStore_SignOut_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{
		session:    sessionFor("alice", "alice@x.dev"),
		signOutErr: errors.New("provider unreachable"),
	}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"alice": sec.RoleAdmin}}
	notifier := &recordingNotifier{}

	store := session.NewStore(provider, roles, notifier, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	err := store.SignOut(context.Background())

	require.Error(t, err)
	assert.Equal(t, "alice", store.Principal().ID)
	assert.True(t, store.IsAdmin())
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Failed to sign out", notifier.errors[0])
}

// # Observers

/*
TestStore_Subscribe verifies that observers receive fresh snapshots on every
transition and that slow observers see the latest state, not a stale one.
*/
func TestStore_Subscribe(t *testing.T) {
	provider := &fakeProvider{}
	roles := &fakeRoleLookup{roles: map[string]sec.UserRole{"alice": sec.RoleUser}}

	store := session.NewStore(provider, roles, &recordingNotifier{}, testLogger())
	require.NoError(t, store.Initialize(context.Background()))
	defer store.Close()

	states, cancel := store.Subscribe()
	defer cancel()

	// Two transitions without draining: the buffer keeps only the latest.
	provider.emit(identity.Event{Type: identity.EventSignedIn, Session: sessionFor("alice", "alice@x.dev")})
	provider.emit(identity.Event{Type: identity.EventSignedOut})

	latest := <-states
	assert.Nil(t, latest.Principal)
	assert.False(t, latest.IsAdmin)
}

/*
TestStore_Close_ReleasesSubscription verifies that teardown releases the
provider subscription.
*/
func TestStore_Close_ReleasesSubscription(t *testing.T) {
	provider := &fakeProvider{}

	store := session.NewStore(provider, &fakeRoleLookup{}, &recordingNotifier{}, testLogger())
	require.NoError(t, store.Initialize(context.Background()))

	store.Close()
	assert.True(t, provider.unsubscribed)
}
