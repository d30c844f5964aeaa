// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package session owns the authenticated-session state for the running shell.

It is the single place that knows who the current principal is and whether
they hold administrator capability. All readers observe it through snapshots
or subscriptions — never through ambient globals.

# Architecture

  - Store: Process-wide session cache, synchronized with the remote identity
    provider's lifecycle events.
  - Authorization Resolver: Derives the admin flag from the profile role via a
    single point lookup; fails closed on any lookup error.
  - Observer pattern: The shell subscribes to state snapshots rather than
    polling.

# Security

The admin flag is a UX convenience for the shell. It gates nothing by itself;
server-side enforcement lives in the role middleware.
*/
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/craftboard/craftboard/internal/identity"
	"github.com/craftboard/craftboard/internal/platform/notify"
	"github.com/craftboard/craftboard/internal/platform/sec"
)

// RoleLookup is the single point lookup behind the Authorization Resolver.
//
// It is satisfied by the account repository; defining it here keeps the
// session store decoupled from the persistence layer.
type RoleLookup interface {
	FindRoleByID(context context.Context, id string) (sec.UserRole, error)
}

// State is an immutable snapshot of the session cache.
//
// A snapshot may become stale immediately after it is read; subscribers
// receive a fresh one on every change.
type State struct {
	Principal *identity.Principal `json:"principal"`
	IsAdmin   bool                `json:"is_admin"`
	Loading   bool                `json:"loading"`
}

// Authenticated reports whether a principal is present.
func (s State) Authenticated() bool {
	return s.Principal != nil
}

// Store is the identity session cache.
//
// # Concurrency
//
// A single mutex serializes every writer path (initialization, provider
// events, sign-out). The provider delivers events in causal order and the
// last event always wins. Readers receive copies and never observe a
// partially-applied transition.
type Store struct {
	provider identity.Provider
	roles    RoleLookup
	notifier notify.Notifier
	logger   *slog.Logger

	mu           sync.Mutex
	principal    *identity.Principal
	isAdmin      bool
	loading      bool
	initialized  bool
	subscription identity.Subscription

	observers      map[int]chan State
	nextObserverID int
}

// NewStore constructs the session cache. The store starts in the loading
// state until [Store.Initialize] completes.
func NewStore(provider identity.Provider, roles RoleLookup, notifier notify.Notifier, logger *slog.Logger) *Store {
	return &Store{
		provider:  provider,
		roles:     roles,
		notifier:  notifier,
		logger:    logger,
		loading:   true,
		observers: make(map[int]chan State),
	}
}

// # Lifecycle

/*
Initialize restores the remote session and starts the change subscription.

Description: Idempotent — repeated calls after the first are no-ops. A missing
remote session yields an absent principal and is not an error. A failed
provider call is logged and surfaced as a user notification; it never
terminates the process. The loading flag is cleared on every exit path.

Parameters:
  - context: context.Context governing the restore call and the subscription

Returns:
  - error: The provider failure, if any (already logged and notified)
*/
func (store *Store) Initialize(context context.Context) error {
	store.mu.Lock()
	if store.initialized {
		store.mu.Unlock()
		return nil
	}
	store.initialized = true
	store.mu.Unlock()

	// Loading must clear regardless of how initialization ends.
	defer store.setLoading(false)

	session, err := store.provider.GetSession(context)
	if err != nil {
		store.logger.Error("session_initialize_failed", slog.Any("error", err))
		store.notifier.Error(context, "Failed to initialize authentication")
		return err
	}

	if session != nil {
		store.replacePrincipal(context, &session.Principal)
	}

	subscription, err := store.provider.OnSessionChange(context, func(event identity.Event) {
		store.applyEvent(context, event)
	})
	if err != nil {
		store.logger.Error("session_subscribe_failed", slog.Any("error", err))
		store.notifier.Error(context, "Failed to initialize authentication")
		return err
	}

	store.mu.Lock()
	store.subscription = subscription
	store.mu.Unlock()

	return nil
}

/*
SignOut requests remote session termination.

Description: On provider failure the local state is left exactly as it was
and a failure notification is emitted. Only a confirmed termination clears
the principal and admin flag.

Parameters:
  - context: context.Context

Returns:
  - error: The provider failure, if any
*/
func (store *Store) SignOut(context context.Context) error {
	if err := store.provider.SignOut(context); err != nil {
		store.logger.Error("session_sign_out_failed", slog.Any("error", err))
		store.notifier.Error(context, "Failed to sign out")
		return err
	}

	store.replacePrincipal(context, nil)
	store.notifier.Success(context, "Signed out successfully")
	return nil
}

// Close releases the provider subscription and all observer channels.
func (store *Store) Close() {
	store.mu.Lock()
	subscription := store.subscription
	store.subscription = nil
	observers := store.observers
	store.observers = make(map[int]chan State)
	store.mu.Unlock()

	if subscription != nil {
		if err := subscription.Unsubscribe(); err != nil {
			store.logger.Error("session_unsubscribe_failed", slog.Any("error", err))
		}
	}

	for _, channel := range observers {
		close(channel)
	}
}

// # Authorization Resolver

/*
CheckAdmin re-derives the admin flag for the current principal.

Description: An absent principal short-circuits to false without a remote
call. A lookup error also resolves to false (fails closed) and is logged.
The result is applied only if the principal has not changed during the
lookup — a stale derivation never overwrites a newer session.

Parameters:
  - context: context.Context

Returns:
  - bool: The derived admin capability
*/
func (store *Store) CheckAdmin(context context.Context) bool {
	store.mu.Lock()
	principal := store.principal
	store.mu.Unlock()

	if principal == nil {
		return false
	}

	role, err := store.roles.FindRoleByID(context, principal.ID)
	if err != nil {
		store.logger.Error("admin_check_failed",
			slog.String("user_id", principal.ID),
			slog.Any("error", err),
		)
		store.setAdmin(principal.ID, false)
		return false
	}

	isAdmin := role.IsAdmin()
	store.setAdmin(principal.ID, isAdmin)
	return isAdmin
}

// # Readers

// CurrentState returns a snapshot of the session cache.
func (store *Store) CurrentState() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.snapshotLocked()
}

// Principal returns the current principal, or nil when signed out.
func (store *Store) Principal() *identity.Principal {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.principal
}

// IsAdmin reports the cached admin capability.
func (store *Store) IsAdmin() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.isAdmin
}

// Loading reports whether initialization is still in flight.
func (store *Store) Loading() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loading
}

// Subscribe registers an observer for state snapshots.
//
// The returned cancel function releases the observer; it is safe to call
// more than once. Slow observers miss intermediate snapshots rather than
// blocking the writer.
func (store *Store) Subscribe() (<-chan State, func()) {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextObserverID
	store.nextObserverID++

	channel := make(chan State, 1)
	store.observers[id] = channel

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			store.mu.Lock()
			if existing, ok := store.observers[id]; ok {
				delete(store.observers, id)
				close(existing)
			}
			store.mu.Unlock()
		})
	}

	return channel, cancel
}

// # Internal Transitions

// applyEvent replaces the principal wholesale from a session-change event.
// The latest event is authoritative; there is no merging.
func (store *Store) applyEvent(context context.Context, event identity.Event) {
	if event.Session == nil || event.Type == identity.EventSignedOut {
		store.replacePrincipal(context, nil)
		return
	}

	principal := event.Session.Principal
	store.replacePrincipal(context, &principal)
}

// replacePrincipal installs the new principal (or absence) and re-derives
// the admin flag. Clearing the principal always clears the admin flag in the
// same critical section, so no stale grant survives a sign-out.
func (store *Store) replacePrincipal(context context.Context, principal *identity.Principal) {
	store.mu.Lock()
	store.principal = principal
	store.isAdmin = false
	store.broadcastLocked()
	store.mu.Unlock()

	if principal != nil {
		store.CheckAdmin(context)
	}
}

// setAdmin applies a derived admin flag, but only if the principal it was
// derived for is still current.
func (store *Store) setAdmin(principalID string, isAdmin bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.principal == nil || store.principal.ID != principalID {
		return
	}

	store.isAdmin = isAdmin
	store.broadcastLocked()
}

func (store *Store) setLoading(loading bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.loading = loading
	store.broadcastLocked()
}

// snapshotLocked builds a State copy. Callers must hold the mutex.
func (store *Store) snapshotLocked() State {
	return State{
		Principal: store.principal,
		IsAdmin:   store.isAdmin,
		Loading:   store.loading,
	}
}

// broadcastLocked fans the current snapshot out to observers without
// blocking. Callers must hold the mutex.
func (store *Store) broadcastLocked() {
	snapshot := store.snapshotLocked()
	for _, channel := range store.observers {
		// Drop the stale snapshot if the observer hasn't drained it yet.
		select {
		case <-channel:
		default:
		}
		select {
		case channel <- snapshot:
		default:
		}
	}
}
