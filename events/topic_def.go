// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "github.com/kestrelforge/combatcore/core"

// TypedTopicDef defines a typed topic that can be connected to a bus.
// This is created once at package level and used to get typed topics.
//
// THE MAGIC: Topics are defined at compile-time but connected at runtime via '.On(bus)'.
// This separation enables dynamic feature application with complete type safety.
//
// The underlying ref is created once, at definition time, and reused as the same
// pointer for every Subscribe and every event published on this topic - the bus
// routes by ref identity, not by value, so this pointer must never be copied.
type TypedTopicDef[T Event] struct {
	ref *core.Ref
}

// Ref returns the topic's identity ref. Domain event constructors use this
// to build a BaseEvent whose EventRef() matches this topic by pointer
// identity, which is how the bus routes a published event to subscribers.
func (d *TypedTopicDef[T]) Ref() *core.Ref {
	return d.ref
}

// On connects this topic definition to a bus, returning a typed topic for pub/sub.
//
// THIS IS THE MAGIC PATTERN that makes events beautiful:
//
//	damageDealt := combat.DamageDealtTopic.On(bus)  // SEE the connection
//	damageDealt.Subscribe(handleDamage)             // Type-safe from here
//
// The explicit connection makes it crystal clear where events flow.
func (d *TypedTopicDef[T]) On(bus EventBus) TypedTopic[T] {
	return &typedTopic[T]{
		bus: bus,
		ref: d.ref,
	}
}

// ChainedTopicDef defines a typed topic that supports chain processing.
// This is created once at package level and used to get chained topics.
//
// THE JOURNEY: Events accumulate modifiers as they flow through passives.
// Each passive can add its contribution to the chain before it is executed.
type ChainedTopicDef[T any] struct {
	ref *core.Ref
}

// Ref returns the topic's identity ref.
func (d *ChainedTopicDef[T]) Ref() *core.Ref {
	return d.ref
}

// On connects this topic definition to a bus, returning a chained topic for pub/sub with chains.
//
// THE ACCUMULATION PATTERN in action:
//
//	damage := DamageChain.On(bus)                          // Connect to journey
//	chain, _ := damage.PublishWithChain(ctx, calc,
//	    events.NewStagedChain[DamageCalc](stages))         // Gather modifiers
//	result, _ := chain.Execute(ctx, calc)                  // Apply all at once
//
// This enables a calculation to journey through passives, accumulating changes,
// without the passives ever needing to know about each other.
func (d *ChainedTopicDef[T]) On(bus EventBus) ChainedTopic[T] {
	return &chainedTopic[T]{
		bus: bus,
		ref: d.ref,
	}
}

// DefineTypedTopic creates a new typed topic definition.
// The caller provides the topic name; it is namespaced under "topic:event:"
// to keep it from colliding with domain-defined refs.
//
// Example:
//
//	var DamageDealtTopic = events.DefineTypedTopic[DamageDealtEvent]("combat_damage_dealt")
func DefineTypedTopic[T Event](topic Topic) *TypedTopicDef[T] {
	return &TypedTopicDef[T]{
		ref: core.MustNewRef(core.RefInput{Module: "topic", Type: "event", Value: string(topic)}),
	}
}

// DefineChainedTopic creates a new chained topic definition.
// The caller provides the topic name; it is namespaced under "topic:chain:"
// to keep it from colliding with domain-defined refs.
//
// Example:
//
//	var DamageChain = events.DefineChainedTopic[DamageCalc]("combat_damage")
func DefineChainedTopic[T any](topic Topic) *ChainedTopicDef[T] {
	return &ChainedTopicDef[T]{
		ref: core.MustNewRef(core.RefInput{Module: "topic", Type: "chain", Value: string(topic)}),
	}
}
