// Package events provides a game-agnostic event bus for loose coupling between
// combat engine components and the passive ability system, without requiring
// direct dependencies between them.
//
// Scope:
//   - Topic-routed pub/sub with synchronous, same-goroutine delivery
//   - Typed topics for compile-time safe publish/subscribe (TypedTopicDef)
//   - Chained topics for ordered, staged accumulation of modifiers (ChainedTopicDef)
//   - Recursion-depth guarding for cascading publishes
//   - No domain event types - those are defined by the combat package
//
// Non-Goals:
//   - Event persistence or replay
//   - Network transport: this is for in-process events only
//   - Async delivery or subscriber ordering guarantees beyond registration order
//
// Example:
//
//	bus := events.NewBus()
//	damageDealt := combat.DamageDealtTopic.On(bus)
//
//	damageDealt.Subscribe(func(ctx context.Context, e combat.DamageDealtEvent) error {
//	    fmt.Printf("%s took %d damage\n", e.TargetID, e.HPDamage)
//	    return nil
//	})
//
//	damageDealt.Publish(ctx, combat.DamageDealtEvent{
//	    BaseEvent: events.NewBaseEvent(combat.DamageDealtTopic.Ref()),
//	    TargetID:  "goblin-1",
//	    HPDamage:  12,
//	})
package events
