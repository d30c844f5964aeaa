// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package identity defines the contract with the remote identity provider.

The provider owns the authentication lifecycle (sign-in UI, token issuance,
refresh). Craftboard consumes it through three narrow operations: restore the
current session, subscribe to session-change events, and terminate the session.

# Architecture

  - Provider: The abstract remote contract (implemented by [RedisProvider]).
  - Session/Principal: Immutable snapshots of the authenticated identity.
  - Subscription: A cancellable handle for the change-event stream, released
    on teardown so no listener leaks.
*/
package identity

import (
	"context"
	"time"
)

// # Domain Entities

// Principal is the currently authenticated identity, as reported by the
// remote provider.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// Metadata carries the provider's raw session attributes verbatim.
	// Craftboard never interprets these; they are passed through to the shell.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Session is an active provider session.
//
// # Security
//
// TokenHash is the BLAKE2b digest of the access token. The raw token is only
// ever present on the event wire; it is hashed before any persistence.
type Session struct {
	Principal Principal `json:"principal"`
	TokenHash string    `json:"token_hash"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session expiry has passed.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// # Session-Change Events

// EventType discriminates the session lifecycle transitions a provider emits.
type EventType string

const (
	// EventSignedIn is emitted when a principal establishes a new session.
	EventSignedIn EventType = "signed_in"

	// EventSignedOut is emitted when the session is terminated or expires.
	EventSignedOut EventType = "signed_out"

	// EventTokenRefreshed is emitted when the provider rotates the access token.
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event is a single session-change notification.
//
// Session is nil for [EventSignedOut]. The provider delivers events in causal
// order; the latest event is always the authoritative session state.
type Event struct {
	Type    EventType `json:"type"`
	Token   string    `json:"token,omitempty"`
	Session *Session  `json:"session,omitempty"`
}

// # Contracts

// Handler consumes session-change events. Invocations are serialized: a
// provider never calls the handler concurrently with itself.
type Handler func(Event)

// Subscription is the cancellable handle for an event stream.
type Subscription interface {
	// Unsubscribe stops event delivery and releases the underlying resources.
	// It is safe to call more than once.
	Unsubscribe() error
}

// Provider is the remote identity provider as seen by Craftboard.
type Provider interface {
	// GetSession restores the current session.
	// A missing or expired session yields (nil, nil) — absence is not an error.
	GetSession(ctx context.Context) (*Session, error)

	// OnSessionChange registers a persistent subscription to session-change
	// events. Delivery continues until the subscription is released or ctx
	// is cancelled.
	OnSessionChange(ctx context.Context, handler Handler) (Subscription, error)

	// SignOut terminates the current session at the provider.
	SignOut(ctx context.Context) error
}
