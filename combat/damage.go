// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import "github.com/kestrelforge/combatcore/content"

// DamageBreakdown is the full intermediate-quantity record the spec §4.3
// calculator returns, used by the log formatter and by golden tests that
// pin the fixed step order.
type DamageBreakdown struct {
	Base             int
	STAB             int
	RawAfterFlat     int // step 1 result, floored at 1
	AfterMultiplier  int // step 2 (blaze/swarm/finisher, max-of)
	AfterRagingBull  int
	AfterHustle      int
	AfterTechnician  int
	AfterAristocrat  int
	Effectiveness    float64
	AfterTypeEffect  int
	AfterReductions  int
	AfterThickFat    int
	AfterMultiscale  int
	AfterShellArmor  int
	AfterEvasion     int
	BlockedAmount    int
	HPDamage         int
}

// damageCalcInput bundles one damage resolution's parameters.
type damageCalcInput struct {
	Attacker      *Combatant
	Target        *Combatant
	AttackType    content.Type
	Base          int
	Cost          int // card cost, for technician
	Rarity        content.Rarity
	IgnoreEvasion bool
	IgnoreBlock   bool
	FirstAttack   bool // mutual-exclusion flag already decided by the caller
}

// calculateDamage runs the fixed 14-step chain (spec §4.3). Step order is
// a contract: do not re-order these without updating the golden fixtures
// in spec §8.
func (st *CombatState) calculateDamage(in damageCalcInput) DamageBreakdown {
	var b DamageBreakdown
	b.Base = in.Base

	// Step 1: raw = base + strength + stab + flat bonuses - enfeeble, floored at 1.
	// Normal-type attacks never earn STAB even on a Normal-typed attacker;
	// scrappy's own flat +2 normal bonus (below) fills that gap instead.
	stab := 0
	if in.AttackType != content.TypeNormal {
		for _, t := range in.Attacker.Types {
			if t == in.AttackType {
				stab = 2
				if in.Attacker.Passives["adaptability"] {
					stab = 4
				}
				break
			}
		}
	}
	b.STAB = stab

	strength := statusStacks(in.Attacker, StatusStrength)
	enfeeble := statusStacks(in.Attacker, StatusEnfeeble)
	flatBonus := 0
	if in.Attacker.Passives["scrappy"] && in.AttackType == content.TypeNormal {
		flatBonus += 2
	}
	if in.Attacker.Passives["keen_eye"] || in.Attacker.Passives["whipping_winds"] || in.Attacker.Passives["predators_patience"] {
		if len(in.Target.Statuses) > 0 {
			flatBonus += 3
		}
	}
	if in.Attacker.Passives["counter_current"] {
		flatBonus += staticFieldReduction(in.Attacker, in.Target)
	}
	raw := in.Base + strength + stab + flatBonus - enfeeble
	raw = floorAt(raw, 1)
	b.RawAfterFlat = raw

	// Step 2: single largest of blaze-strike/swarm-strike/finisher, else 1.
	multiplier := 1.0
	if in.Attacker.Passives["blaze_strike"] || in.Attacker.Passives["swarm_strike"] || in.Attacker.Passives["finisher"] {
		multiplier = 2.0
	}
	raw = floorMul(raw, multiplier)
	b.AfterMultiplier = raw

	// Step 3: raging-bull.
	if in.Attacker.Passives["raging_bull"] && in.Attacker.HP*2 < in.Attacker.MaxHP {
		raw = floorMul(raw, 1.5)
	}
	b.AfterRagingBull = raw

	// Step 4: hustle.
	if in.Attacker.Passives["hustle"] {
		raw = floorMul(raw, 1.3)
	}
	b.AfterHustle = raw

	// Step 5: technician (1-cost cards).
	if in.Attacker.Passives["technician"] && in.Cost == 1 {
		raw = floorMul(raw, 1.3)
	}
	b.AfterTechnician = raw

	// Step 6: aristocrat (Epic cards).
	if in.Attacker.Passives["aristocrat"] && in.Rarity == content.RarityEpic {
		raw = floorMul(raw, 1.3)
	}
	if in.Attacker.Passives["sheer_force"] {
		raw = floorMul(raw, 1.3)
	}
	b.AfterAristocrat = raw

	// Step 7: type effectiveness. Resolved through the content port rather
	// than the local chart directly - a content.Source is free to layer
	// move-specific overrides (e.g. foresight-style immunity removal) on
	// top of the reference chart in typechart.go.
	effectiveness := st.content.GetTypeEffectiveness(in.AttackType, in.Target.Types)
	if in.Attacker.Passives["tinted_lens"] && effectiveness < 1.0 {
		effectiveness = 1.0
	}
	b.Effectiveness = effectiveness
	raw = floorMul(raw, effectiveness)
	b.AfterTypeEffect = raw

	// Step 8: reductions (blooming-cycle, static-field, thick-hide, friend-guard).
	reduction := 0
	if in.Target.Passives["thick_hide"] {
		reduction += 2
	}
	if in.Target.Passives["static_field"] {
		reduction += staticFieldReduction(in.Attacker, in.Target)
	}
	if in.Target.Passives["blooming_cycle"] {
		reduction += 2
	}
	if in.Target.Passives["friend_guard"] {
		reduction += alliesAlive(st, in.Target) * 1
	}
	raw -= reduction
	raw = floorAt(raw, 0)
	b.AfterReductions = raw

	// Step 9: thick-fat (vs fire/ice).
	if in.Target.Passives["thick_fat"] && (in.AttackType == content.TypeFire || in.AttackType == content.TypeIce) {
		raw = floorMul(raw, 0.75)
	}
	b.AfterThickFat = raw

	// Step 10: multiscale (target >= 75% HP).
	if in.Target.Passives["multiscale"] && in.Target.HP*4 >= in.Target.MaxHP*3 {
		raw = floorMul(raw, 0.5)
	}
	b.AfterMultiscale = raw

	// Step 11: shell-armor caps at 20.
	if in.Target.Passives["shell_armor"] && raw > 20 {
		raw = 20
	}
	b.AfterShellArmor = raw

	// Step 12: evasion stacks, unless ignoreEvasion.
	if !in.IgnoreEvasion {
		raw -= statusStacks(in.Target, StatusEvasion)
		raw = floorAt(raw, 0)
	}
	b.AfterEvasion = raw

	// Step 13: consume block, unless ignoreBlock.
	blocked := 0
	if !in.IgnoreBlock && in.Target.Block > 0 {
		blocked = in.Target.Block
		if blocked > raw {
			blocked = raw
		}
		in.Target.Block -= blocked
	}
	b.BlockedAmount = blocked
	hpDamage := raw - blocked
	b.HPDamage = hpDamage

	// Step 14: apply HP damage.
	in.Target.HP -= hpDamage
	if in.Target.HP <= 0 {
		in.Target.HP = 0
		in.Target.Alive = false
	}

	return b
}

func staticFieldReduction(attacker, target *Combatant) int {
	gap := attacker.BaseSpeed - target.BaseSpeed
	if gap <= 0 {
		return 0
	}
	return gap
}

func alliesAlive(st *CombatState, c *Combatant) int {
	count := 0
	for _, other := range st.sideOf(c) {
		if other.ID != c.ID && other.Alive {
			count++
		}
	}
	return count
}

func floorAt(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// floorMul multiplies an int by a float factor and truncates toward zero,
// matching the spec's repeated "multiply, then floor" instruction.
func floorMul(v int, factor float64) int {
	return int(float64(v) * factor)
}
