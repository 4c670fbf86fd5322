// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import "github.com/kestrelforge/combatcore/events"

// registerPassives wires every hook-listener passive (spec §4.6) onto bus.
// Passives are a table keyed by id mapping to hook closures, not
// polymorphic types (spec §9): every entry below is independent and the
// registration order here is the deterministic iteration order for
// same-hook passives.
func registerPassives(bus events.EventBus) {
	battleStart := BattleStartTopic.On(bus)
	turnStart := TurnStartTopic.On(bus)
	damageDealt := DamageDealtTopic.On(bus)
	damageTaken := DamageTakenTopic.On(bus)
	statusApplied := StatusAppliedTopic.On(bus)

	_, _ = battleStart.Subscribe(onBattleStartScurry)
	_, _ = battleStart.Subscribe(onBattleStartIntimidate)
	_, _ = battleStart.Subscribe(onBattleStartHustleHandSize)

	_, _ = turnStart.Subscribe(onTurnStartResetScratch)
	_, _ = turnStart.Subscribe(onTurnStartBabyShell)
	_, _ = turnStart.Subscribe(onTurnStartCharge)
	_, _ = turnStart.Subscribe(onTurnStartInfernoMomentum)
	_, _ = turnStart.Subscribe(onTurnStartSleepEnergy)

	_, _ = damageDealt.Subscribe(onDamageDealtKindling)
	_, _ = damageDealt.Subscribe(onDamageDealtNumbingStrike)
	_, _ = damageDealt.Subscribe(onDamageDealtOvergrowHeal)
	_, _ = damageDealt.Subscribe(onDamageDealtTorrentShield)
	_, _ = damageDealt.Subscribe(onDamageDealtBabyVines)
	_, _ = damageDealt.Subscribe(onDamageDealtHypnoticGaze)
	_, _ = damageDealt.Subscribe(onDamageDealtGustForce)
	_, _ = damageDealt.Subscribe(onDamageDealtPoisonPoint)

	_, _ = damageTaken.Subscribe(onDamageTakenStatic)
	_, _ = damageTaken.Subscribe(onDamageTakenFlameBody)
	_, _ = damageTaken.Subscribe(onDamageTakenFlashFire)
	_, _ = damageTaken.Subscribe(onDamageTakenProtectiveInstinct)
	_, _ = damageTaken.Subscribe(onDamageTakenProtectiveToxins)

	_, _ = statusApplied.Subscribe(onStatusAppliedSpreadingFlames)
	_, _ = statusApplied.Subscribe(onStatusAppliedSpreadingSpores)
	_, _ = statusApplied.Subscribe(onStatusAppliedPowderSpread)
	_, _ = statusApplied.Subscribe(onStatusAppliedDrowsyAura)
	_, _ = statusApplied.Subscribe(onStatusAppliedCompoundEyes)
}

// adjacentAllies returns c's side-mates in grid positions adjacent to c.
func adjacentAllies(st *CombatState, c *Combatant) []*Combatant {
	out := make([]*Combatant, 0, 2)
	for _, other := range st.sideOf(c) {
		if other.ID != c.ID && other.Alive && adjacent(c.Pos, other.Pos) {
			out = append(out, other)
		}
	}
	return out
}
