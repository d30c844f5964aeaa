// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

/*
Package notify delivers transient, user-visible notifications.

Service-layer code reports operation outcomes ("Signed out successfully",
"Failed to update project status") through the [Notifier] interface. The
Presentation Shell decides how those surface to the user; this package ships
a feed-backed implementation the shell can drain, plus a log-only variant.
*/
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind classifies a notification for presentation purposes.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a single transient message destined for the user.
type Notification struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is the contract service layers use to surface operation outcomes.
//
// Implementations must never fail the calling operation; notification delivery
// is best-effort by design.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// # Feed Notifier

// feedCapacity bounds the in-memory feed so an undrained shell cannot grow it.
const feedCapacity = 64

// Feed is a bounded, in-memory notification feed.
//
// The shell drains it via [Feed.Drain]; oldest entries are evicted when the
// capacity is exceeded.
type Feed struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries []Notification
}

// NewFeed constructs a Feed that also mirrors every notification to the logger.
func NewFeed(logger *slog.Logger) *Feed {
	return &Feed{logger: logger}
}

// Success records a success notification.
func (feed *Feed) Success(ctx context.Context, message string) {
	feed.logger.InfoContext(ctx, "notification", slog.String("kind", string(KindSuccess)), slog.String("message", message))
	feed.push(Notification{Kind: KindSuccess, Message: message, CreatedAt: time.Now()})
}

// Error records an error notification.
func (feed *Feed) Error(ctx context.Context, message string) {
	feed.logger.WarnContext(ctx, "notification", slog.String("kind", string(KindError)), slog.String("message", message))
	feed.push(Notification{Kind: KindError, Message: message, CreatedAt: time.Now()})
}

// Drain returns all pending notifications and clears the feed.
func (feed *Feed) Drain() []Notification {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	drained := feed.entries
	feed.entries = nil
	return drained
}

func (feed *Feed) push(n Notification) {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	feed.entries = append(feed.entries, n)
	if len(feed.entries) > feedCapacity {
		feed.entries = feed.entries[len(feed.entries)-feedCapacity:]
	}
}

// # Log Notifier

// LogNotifier discards the feed semantics and only writes structured logs.
// Useful in tests and background jobs.
type LogNotifier struct {
	Logger *slog.Logger
}

// Success logs a success notification.
func (n LogNotifier) Success(ctx context.Context, message string) {
	n.logger().InfoContext(ctx, "notification", slog.String("kind", string(KindSuccess)), slog.String("message", message))
}

// Error logs an error notification.
func (n LogNotifier) Error(ctx context.Context, message string) {
	n.logger().WarnContext(ctx, "notification", slog.String("kind", string(KindError)), slog.String("message", message))
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return slog.Default()
}
