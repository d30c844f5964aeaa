// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package identity

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/craftboard/craftboard/internal/platform/constants"
	"github.com/craftboard/craftboard/internal/platform/sec"
)

// currentSessionKey is where the provider persists the active session record.
const currentSessionKey = constants.RedisPrefixSession + "current"

// RedisProvider implements [Provider] against the identity service's Redis
// backend: the current session record lives under a TTL key, and lifecycle
// events arrive on a pub/sub channel.
type RedisProvider struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisProvider constructs a provider adapter on an established client.
//
// # Parameters
//   - client: Shared Redis client.
//   - channel: Pub/sub channel carrying session-change events.
//   - logger: Structured logger for subscription lifecycle events.
func NewRedisProvider(client *redis.Client, channel string, logger *slog.Logger) *RedisProvider {
	return &RedisProvider{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

/*
GetSession restores the current session from the provider's backend.

Description: Returns (nil, nil) when no session exists or the record has
expired — absence is a normal outcome, not an error.

Parameters:
  - context: context.Context

Returns:
  - *Session: The active session, or nil
  - error: Connectivity or decoding failures only
*/
func (provider *RedisProvider) GetSession(context stdctx.Context) (*Session, error) {
	payload, err := provider.client.Get(context, currentSessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("identity_get_session_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal([]byte(payload), session); err != nil {
		return nil, fmt.Errorf("identity_session_decode_failed: %w", err)
	}

	// An expired record is equivalent to no session at all.
	if session.Expired() {
		return nil, nil
	}

	return session, nil
}

/*
OnSessionChange subscribes to the provider's event channel.

Description: Events are decoded and dispatched to the handler from a single
goroutine, so handler invocations are serialized in arrival order. The adapter
also mirrors each event into the persisted session record (raw tokens are
hashed via [sec.HashToken] before any write).

Parameters:
  - context: context.Context governing the subscription lifetime
  - handler: Handler invoked per event

Returns:
  - Subscription: Cancellable handle
  - error: Subscription establishment failures
*/
func (provider *RedisProvider) OnSessionChange(context stdctx.Context, handler Handler) (Subscription, error) {
	pubsub := provider.client.Subscribe(context, provider.channel)

	// Force the SUBSCRIBE round-trip so establishment failures surface here,
	// not asynchronously inside the receive loop.
	if _, err := pubsub.Receive(context); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("identity_subscribe_failed: %w", err)
	}

	subscription := &redisSubscription{pubsub: pubsub}

	go func() {
		for message := range pubsub.Channel() {
			event := Event{}
			if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
				provider.logger.Error("identity_event_decode_failed", slog.Any("error", err))
				continue
			}

			provider.mirror(context, &event)
			handler(event)
		}
		provider.logger.Info("identity_subscription_closed", slog.String("channel", provider.channel))
	}()

	return subscription, nil
}

/*
SignOut terminates the current session.

Description: Deletes the persisted session record and publishes a signed_out
event so every subscribed runtime observes the termination.

Parameters:
  - context: context.Context

Returns:
  - error: Connectivity failures
*/
func (provider *RedisProvider) SignOut(context stdctx.Context) error {
	if err := provider.client.Del(context, currentSessionKey).Err(); err != nil {
		return fmt.Errorf("identity_sign_out_failed: %w", err)
	}

	event, err := json.Marshal(Event{Type: EventSignedOut})
	if err != nil {
		return fmt.Errorf("identity_event_encode_failed: %w", err)
	}

	if err := provider.client.Publish(context, provider.channel, event).Err(); err != nil {
		return fmt.Errorf("identity_event_publish_failed: %w", err)
	}

	return nil
}

// mirror keeps the persisted session record in sync with the latest event,
// the same way a browser client persists the provider session locally.
func (provider *RedisProvider) mirror(context stdctx.Context, event *Event) {
	switch event.Type {
	case EventSignedOut:
		if err := provider.client.Del(context, currentSessionKey).Err(); err != nil {
			provider.logger.Error("identity_session_clear_failed", slog.Any("error", err))
		}

	case EventSignedIn, EventTokenRefreshed:
		if event.Session == nil {
			return
		}

		// Hash the raw wire token before persisting; then redact it from the
		// event so downstream consumers only ever see the digest.
		if event.Token != "" {
			event.Session.TokenHash = sec.HashToken(event.Token)
			event.Token = ""
		}

		record, err := json.Marshal(event.Session)
		if err != nil {
			provider.logger.Error("identity_session_encode_failed", slog.Any("error", err))
			return
		}

		if err := provider.client.Set(context, currentSessionKey, record, constants.SessionTTL).Err(); err != nil {
			provider.logger.Error("identity_session_persist_failed", slog.Any("error", err))
		}
	}
}

// redisSubscription wraps the pub/sub handle behind the [Subscription] contract.
type redisSubscription struct {
	once   sync.Once
	pubsub *redis.PubSub
	err    error
}

// Unsubscribe closes the pub/sub channel. Idempotent.
func (s *redisSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.err = s.pubsub.Close()
	})
	return s.err
}
