// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"

	"github.com/kestrelforge/combatcore/content"
)

// Battle start passives (spec §4.6).

func onBattleStartScurry(_ context.Context, e BattleStartEvent) error {
	for _, c := range e.State.aliveCombatants() {
		if c.Passives["scurry"] {
			e.State.applyStatusDirect(c, StatusHaste, 1, c.ID)
		}
	}
	return nil
}

func onBattleStartIntimidate(_ context.Context, e BattleStartEvent) error {
	for _, c := range e.State.aliveCombatants() {
		if !c.Passives["intimidate"] {
			continue
		}
		for _, enemy := range e.State.enemiesOf(c) {
			e.State.applyStatusDirect(enemy, StatusEnfeeble, 1, c.ID)
		}
	}
	return nil
}

func onBattleStartHustleHandSize(_ context.Context, e BattleStartEvent) error {
	for _, c := range e.State.aliveCombatants() {
		if c.Passives["hustle"] {
			c.HandSize++
		}
	}
	return nil
}

// Turn start passives and housekeeping (spec §4.6, §5).

func onTurnStartResetScratch(_ context.Context, e TurnStartEvent) error {
	c := e.State.Combatant(e.CombatantID)
	if c == nil {
		return nil
	}
	c.FirstAttackFlags = make(map[content.Type]bool)
	c.RelentlessUsedThisTurn = false
	c.RelentlessCounter = 0
	c.HasSwitchedThisTurn = false
	c.InfernoMomentumIndex = -1
	c.InfernoMomentumActive = false
	return nil
}

func onTurnStartBabyShell(_ context.Context, e TurnStartEvent) error {
	c := e.State.Combatant(e.CombatantID)
	if c != nil && c.Passives["baby_shell"] {
		c.Block += 3
	}
	return nil
}

func onTurnStartCharge(_ context.Context, e TurnStartEvent) error {
	c := e.State.Combatant(e.CombatantID)
	if c == nil || !c.Passives["charge"] {
		return nil
	}
	e.State.applyStatusDirect(c, StatusStrength, 1, c.ID)
	return nil
}

func onTurnStartInfernoMomentum(_ context.Context, e TurnStartEvent) error {
	c := e.State.Combatant(e.CombatantID)
	if c == nil || !c.Passives["inferno_momentum"] {
		return nil
	}
	best := -1
	bestCost := -1
	for i, cardID := range c.Hand {
		mv, err := e.State.content.GetMove(cardID)
		if err != nil || mv.Type != content.TypeFire {
			continue
		}
		if mv.Cost > bestCost {
			bestCost = mv.Cost
			best = i
		}
	}
	c.InfernoMomentumIndex = best
	c.InfernoMomentumActive = best >= 0
	return nil
}

// onTurnStartSleepEnergy implements the spec §5 sleep special rule: a
// sleeping combatant gains energyPerTurn-1 (floored at 0) instead of the
// full per-turn amount, regardless of stack count.
func onTurnStartSleepEnergy(_ context.Context, e TurnStartEvent) error {
	c := e.State.Combatant(e.CombatantID)
	if c == nil {
		return nil
	}
	gain := c.EnergyPerTurn
	if statusStacks(c, StatusSleep) > 0 {
		gain = c.EnergyPerTurn - 1
		if gain < 0 {
			gain = 0
		}
	}
	c.Energy += gain
	if c.Energy > c.EnergyCap {
		c.Energy = c.EnergyCap
	}
	return nil
}

// Damage dealt passives (spec §4.6): attacker-side reactions, gated on the
// mutual-exclusion "first X attack this turn" flags reset at turn start.

func onDamageDealtKindling(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "kindling", content.TypeFire, func(attacker, target *Combatant) {
		e.State.applyStatus(ctx, attacker.ID, target, StatusBurn, 1)
	})
}

func onDamageDealtNumbingStrike(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "numbing_strike", content.TypeElectric, func(attacker, target *Combatant) {
		e.State.applyStatus(ctx, attacker.ID, target, StatusParalysis, 1)
	})
}

func onDamageDealtOvergrowHeal(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "overgrow_heal", content.TypeGrass, func(attacker, _ *Combatant) {
		healed := e.State.heal(attacker, 5)
		if healed > 0 {
			e.State.appendLog(attacker.ID, "overgrow_heal restored health")
		}
	})
}

func onDamageDealtTorrentShield(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "torrent_shield", content.TypeWater, func(attacker, _ *Combatant) {
		attacker.Block += 5
	})
}

func onDamageDealtBabyVines(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "baby_vines", content.TypeGrass, func(attacker, target *Combatant) {
		amount := 1
		if attacker.Passives["overgrow"] {
			amount = 2
		}
		e.State.applyStatus(ctx, attacker.ID, target, StatusLeech, amount)
	})
}

func onDamageDealtHypnoticGaze(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "hypnotic_gaze", content.TypePsychic, func(attacker, target *Combatant) {
		e.State.applyStatus(ctx, attacker.ID, target, StatusSleep, 2)
	})
}

// onDamageDealtGustForce implements the "gust-force slow" type-conditional
// follow-up named in spec §4.7 step 6: first unblocked flying attack of the
// turn slows the target.
func onDamageDealtGustForce(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "gust_force", content.TypeFlying, func(attacker, target *Combatant) {
		e.State.applyStatus(ctx, attacker.ID, target, StatusSlow, 1)
	})
}

// onDamageDealtPoisonPoint implements the "poison-point poison"
// type-conditional follow-up named in spec §4.7 step 6: first unblocked
// poison attack of the turn poisons the target.
func onDamageDealtPoisonPoint(ctx context.Context, e DamageDealtEvent) error {
	return firstAttackPassive(ctx, e, "poison_point", content.TypePoison, func(attacker, target *Combatant) {
		e.State.applyStatus(ctx, attacker.ID, target, StatusPoison, 1)
	})
}

// firstAttackPassive implements the spec §4.6 mutual-exclusion rule: only
// one "first-X-attack-this-turn" passive fires per hit, tracked by the
// attacker's per-type per-turn flag.
func firstAttackPassive(ctx context.Context, e DamageDealtEvent, passive string, attackType content.Type, fn func(attacker, target *Combatant)) error {
	attacker := e.State.Combatant(e.AttackerID)
	target := e.State.Combatant(e.TargetID)
	if attacker == nil || target == nil || e.HPDamage <= 0 {
		return nil
	}
	if !attacker.Passives[passive] {
		return nil
	}
	if attacker.FirstAttackFlags[attackType] {
		return nil
	}
	attacker.FirstAttackFlags[attackType] = true
	fn(attacker, target)
	return nil
}

// Damage taken passives (spec §4.6): defender-side reactions.

func onDamageTakenStatic(ctx context.Context, e DamageTakenEvent) error {
	target := e.State.Combatant(e.TargetID)
	attacker := e.State.Combatant(e.AttackerID)
	if target == nil || attacker == nil || e.HPDamage <= 0 || !target.Passives["static"] {
		return nil
	}
	e.State.applyStatus(ctx, target.ID, attacker, StatusParalysis, 1)
	return nil
}

func onDamageTakenFlameBody(ctx context.Context, e DamageTakenEvent) error {
	target := e.State.Combatant(e.TargetID)
	attacker := e.State.Combatant(e.AttackerID)
	if target == nil || attacker == nil || e.HPDamage <= 0 || !target.Passives["flame_body"] {
		return nil
	}
	e.State.applyStatus(ctx, target.ID, attacker, StatusBurn, 1)
	return nil
}

func onDamageTakenFlashFire(_ context.Context, e DamageTakenEvent) error {
	target := e.State.Combatant(e.TargetID)
	if target == nil || !target.Passives["flash_fire"] || e.AttackType != content.TypeFire {
		return nil
	}
	e.State.applyStatusDirect(target, StatusStrength, 1, target.ID)
	return nil
}

// onDamageTakenProtectiveToxins implements the protective_toxins passive
// (spec §9 open question: block gained is frozen here at the full damage
// dealt, not half - see DESIGN.md).
func onDamageTakenProtectiveToxins(_ context.Context, e DamageTakenEvent) error {
	target := e.State.Combatant(e.TargetID)
	if target == nil || !target.Passives["protective_toxins"] || e.HPDamage <= 0 {
		return nil
	}
	target.Block += e.HPDamage
	return nil
}

func onDamageTakenProtectiveInstinct(_ context.Context, e DamageTakenEvent) error {
	target := e.State.Combatant(e.TargetID)
	if target == nil || !target.Passives["protective_instinct"] {
		return nil
	}
	for _, ally := range adjacentAllies(e.State, target) {
		ally.Block += 2
	}
	return nil
}

// Status applied passives (spec §4.6): these are reactive spreads and
// must use applyStatusDirect to avoid re-entering onStatusApplied.

func onStatusAppliedSpreadingFlames(_ context.Context, e StatusAppliedEvent) error {
	return spreadStatus(e, "spreading_flames", StatusBurn)
}

func onStatusAppliedSpreadingSpores(_ context.Context, e StatusAppliedEvent) error {
	return spreadStatus(e, "spreading_spores", StatusPoison)
}

func onStatusAppliedPowderSpread(_ context.Context, e StatusAppliedEvent) error {
	return spreadStatus(e, "powder_spread", StatusSleep)
}

func onStatusAppliedDrowsyAura(_ context.Context, e StatusAppliedEvent) error {
	return spreadStatus(e, "drowsy_aura", StatusSleep)
}

// spreadStatus implements the "spreading X" family: when source applies
// statusType to target and source carries passive, the same status spreads
// to target's side-adjacent allies via the direct (non-re-entrant) path.
func spreadStatus(e StatusAppliedEvent, passive string, statusType StatusType) error {
	if e.Type != statusType {
		return nil
	}
	source := e.State.Combatant(e.SourceID)
	target := e.State.Combatant(e.TargetID)
	if source == nil || target == nil || !source.Passives[passive] {
		return nil
	}
	for _, neighbor := range adjacentAllies(e.State, target) {
		e.State.applyStatusDirect(neighbor, statusType, 1, e.SourceID)
	}
	return nil
}

// onStatusAppliedCompoundEyes: self-evasion when the combatant applies a
// debuff to an enemy.
func onStatusAppliedCompoundEyes(_ context.Context, e StatusAppliedEvent) error {
	source := e.State.Combatant(e.SourceID)
	target := e.State.Combatant(e.TargetID)
	if source == nil || target == nil || source.ID == target.ID || source.Side == target.Side {
		return nil
	}
	if !source.Passives["compound_eyes"] || !isDebuff(e.Type) {
		return nil
	}
	e.State.applyStatusDirect(source, StatusEvasion, 1, source.ID)
	return nil
}

func isDebuff(t StatusType) bool {
	switch t {
	case StatusBurn, StatusPoison, StatusSleep, StatusParalysis, StatusSlow, StatusEnfeeble:
		return true
	default:
		return false
	}
}
