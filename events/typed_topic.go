// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"context"

	"github.com/kestrelforge/combatcore/core"
)

// TypedTopic provides type-safe publish/subscribe for events of type T.
// It wraps the event bus to ensure compile-time type safety.
// Note: T must implement the Event interface.
type TypedTopic[T Event] interface {
	// Subscribe registers a handler for events of type T.
	// Returns a subscription ID that can be used to unsubscribe.
	Subscribe(handler func(context.Context, T) error) (string, error)

	// Unsubscribe removes a handler using its subscription ID.
	// Returns an error if the ID is not found.
	Unsubscribe(id string) error

	// Publish sends an event to all subscribers.
	Publish(ctx context.Context, event T) error
}

// typedTopic is the implementation of TypedTopic[T].
type typedTopic[T Event] struct {
	bus EventBus
	ref *core.Ref
}

// Subscribe implements TypedTopic[T].
func (t *typedTopic[T]) Subscribe(handler func(context.Context, T) error) (string, error) {
	wrapped := func(ctx context.Context, e Event) error {
		typed, ok := e.(T)
		if !ok {
			return nil
		}
		return handler(ctx, typed)
	}

	return t.bus.Subscribe(t.ref, wrapped)
}

// Unsubscribe implements TypedTopic[T].
func (t *typedTopic[T]) Unsubscribe(id string) error {
	return t.bus.Unsubscribe(id)
}

// Publish implements TypedTopic[T].
func (t *typedTopic[T]) Publish(ctx context.Context, event T) error {
	return t.bus.PublishWithContext(ctx, event)
}
