// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/kestrelforge/combatcore/content"
	"github.com/kestrelforge/combatcore/events"
)

// Hook-point topics (spec §4.6). Passives subscribe to these to react to
// battle lifecycle events. The damage calculator's 14 steps are a fixed
// contract (spec §4.3: "do not re-order"), so they are not routed through
// the bus - damage.go reads passive flags directly, in the declared order.
var (
	BattleStartTopic   = events.DefineTypedTopic[BattleStartEvent]("combat_battle_start")
	TurnStartTopic     = events.DefineTypedTopic[TurnStartEvent]("combat_turn_start")
	DamageDealtTopic   = events.DefineTypedTopic[DamageDealtEvent]("combat_damage_dealt")
	StatusAppliedTopic = events.DefineTypedTopic[StatusAppliedEvent]("combat_status_applied")
	DamageTakenTopic   = events.DefineTypedTopic[DamageTakenEvent]("combat_damage_taken")
	TurnEndTopic       = events.DefineTypedTopic[TurnEndEvent]("combat_turn_end")
	RoundEndTopic      = events.DefineTypedTopic[RoundEndEvent]("combat_round_end")
)

// BattleStartEvent fires once, after combatants are spawned but before
// opening hands are drawn. Passives use this for per-battle setup (e.g.
// hustle's extra hand size, scurry's haste, intimidate's enfeeble).
type BattleStartEvent struct {
	*events.BaseEvent
	State *CombatState
}

func newBattleStartEvent(st *CombatState) BattleStartEvent {
	return BattleStartEvent{BaseEvent: events.NewBaseEvent(BattleStartTopic.Ref()), State: st}
}

// TurnStartEvent fires when a combatant's turn begins, before playable
// cards are computed.
type TurnStartEvent struct {
	*events.BaseEvent
	State       *CombatState
	CombatantID string
}

func newTurnStartEvent(st *CombatState, combatantID string) TurnStartEvent {
	return TurnStartEvent{BaseEvent: events.NewBaseEvent(TurnStartTopic.Ref()), State: st, CombatantID: combatantID}
}

// DamageDealtEvent fires once the damage chain has resolved and HP has
// been subtracted from the target, from the attacker's perspective.
type DamageDealtEvent struct {
	*events.BaseEvent
	State      *CombatState
	AttackerID string
	TargetID   string
	CardID     string
	AttackType content.Type
	HPDamage   int
}

func newDamageDealtEvent(st *CombatState, attackerID, targetID, cardID string, attackType content.Type, hpDamage int) DamageDealtEvent {
	return DamageDealtEvent{
		BaseEvent:  events.NewBaseEvent(DamageDealtTopic.Ref()),
		State:      st,
		AttackerID: attackerID,
		TargetID:   targetID,
		CardID:     cardID,
		AttackType: attackType,
		HPDamage:   hpDamage,
	}
}

// StatusAppliedEvent fires after a status instance is added or stacked
// onto a combatant.
type StatusAppliedEvent struct {
	*events.BaseEvent
	State    *CombatState
	SourceID string
	TargetID string
	Type     StatusType
	Stacks   int
}

func newStatusAppliedEvent(st *CombatState, sourceID, targetID string, statusType StatusType, stacks int) StatusAppliedEvent {
	return StatusAppliedEvent{
		BaseEvent: events.NewBaseEvent(StatusAppliedTopic.Ref()),
		State:     st,
		SourceID:  sourceID,
		TargetID:  targetID,
		Type:      statusType,
		Stacks:    stacks,
	}
}

// DamageTakenEvent fires once the damage chain has resolved, from the
// target's perspective. Passives like static and flame_body subscribe
// here rather than to DamageDealtEvent.
type DamageTakenEvent struct {
	*events.BaseEvent
	State      *CombatState
	AttackerID string
	TargetID   string
	CardID     string
	AttackType content.Type
	HPDamage   int
}

func newDamageTakenEvent(st *CombatState, attackerID, targetID, cardID string, attackType content.Type, hpDamage int) DamageTakenEvent {
	return DamageTakenEvent{
		BaseEvent:  events.NewBaseEvent(DamageTakenTopic.Ref()),
		State:      st,
		AttackerID: attackerID,
		TargetID:   targetID,
		CardID:     cardID,
		AttackType: attackType,
		HPDamage:   hpDamage,
	}
}

// TurnEndEvent fires after a combatant's turn is marked acted, before the
// queue advances.
type TurnEndEvent struct {
	*events.BaseEvent
	State       *CombatState
	CombatantID string
}

func newTurnEndEvent(st *CombatState, combatantID string) TurnEndEvent {
	return TurnEndEvent{BaseEvent: events.NewBaseEvent(TurnEndTopic.Ref()), State: st, CombatantID: combatantID}
}

// RoundEndEvent fires once every combatant in the queue has acted, after
// the round's status ticks and before the next round's queue is built.
type RoundEndEvent struct {
	*events.BaseEvent
	State *CombatState
}

func newRoundEndEvent(st *CombatState) RoundEndEvent {
	return RoundEndEvent{BaseEvent: events.NewBaseEvent(RoundEndTopic.Ref()), State: st}
}
