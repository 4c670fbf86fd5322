// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"context"

	"github.com/kestrelforge/combatcore/core"
	"github.com/kestrelforge/combatcore/core/chain"
)

// ChainedTopic provides pub/sub for calculations that accumulate modifiers on their journey.
//
// THE ACCUMULATION JOURNEY: a calculation travels through passives, each adding its
// contribution. The chain collects all modifiers, then applies them in staged order.
//
// Connect with: damage := DamageChain.On(bus)
//
// The journey pattern:
//  1. PublishWithChain starts the journey with the base calculation and an empty chain
//  2. Passives subscribed to this topic add modifiers at their declared stage
//  3. Chain accumulates all contributions
//  4. Execute applies them in stage order
type ChainedTopic[T any] interface {
	// SubscribeWithChain registers a handler that can add modifiers to the chain.
	//
	// The handler receives the calculation data (immutable - don't modify directly)
	// and the chain to add modifiers to, and returns the chain (possibly amended).
	SubscribeWithChain(handler func(context.Context, T, chain.Chain[T]) (chain.Chain[T], error)) (string, error)

	// PublishWithChain sends the calculation to all subscribers, who may add
	// modifiers to the chain. Returns the accumulated chain, not a modified
	// calculation - the caller already has the calculation and must Execute
	// the returned chain against it to get the final result.
	PublishWithChain(ctx context.Context, data T, built chain.Chain[T]) (chain.Chain[T], error)

	// Unsubscribe removes a subscription by ID.
	Unsubscribe(id string) error
}

// chainedTopic implements ChainedTopic[T].
type chainedTopic[T any] struct {
	bus EventBus
	ref *core.Ref
}

// chainedEvent carries a calculation and its in-progress chain through the bus.
// It implements Event so it can travel through the same dispatch path as any
// other event; its ref is always the topic's ref, by identity.
type chainedEvent[T any] struct {
	*BaseEvent
	data  T
	chain chain.Chain[T]
}

// SubscribeWithChain implements ChainedTopic[T].
func (t *chainedTopic[T]) SubscribeWithChain(
	handler func(context.Context, T, chain.Chain[T]) (chain.Chain[T], error),
) (string, error) {
	wrapped := func(ctx context.Context, e Event) error {
		ce, ok := e.(*chainedEvent[T])
		if !ok {
			return nil
		}
		updated, err := handler(ctx, ce.data, ce.chain)
		if err != nil {
			return err
		}
		ce.chain = updated
		return nil
	}

	return t.bus.Subscribe(t.ref, wrapped)
}

// PublishWithChain implements ChainedTopic[T].
func (t *chainedTopic[T]) PublishWithChain(
	ctx context.Context, data T, built chain.Chain[T],
) (chain.Chain[T], error) {
	ce := &chainedEvent[T]{
		BaseEvent: NewBaseEvent(t.ref),
		data:      data,
		chain:     built,
	}

	if err := t.bus.PublishWithContext(ctx, ce); err != nil {
		return ce.chain, err
	}

	return ce.chain, nil
}

// Unsubscribe implements ChainedTopic[T].
func (t *chainedTopic[T]) Unsubscribe(id string) error {
	return t.bus.Unsubscribe(id)
}
