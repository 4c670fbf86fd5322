// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"

	"github.com/kestrelforge/combatcore/content"
)

// playCard implements the spec §4.7 resolver contract: playCard(state,
// combatant, action) -> logs. It validates, then resolves in the declared
// 8-step order; a validation failure leaves state unchanged.
func (st *CombatState) playCard(ctx context.Context, c *Combatant, action Action) error {
	if indexInHand(c, action.CardInstanceID) < 0 {
		return errCardNotInHand(c.ID, action.CardInstanceID)
	}

	move, err := st.content.GetMove(action.CardInstanceID)
	if err != nil {
		return errContentNotFound("move", action.CardInstanceID, err)
	}

	// Step 1: effective cost.
	cost := st.effectiveCost(c, action.CardInstanceID, move)
	if cost > c.Energy {
		return errInsufficientEnergy(c.ID, cost, c.Energy)
	}

	// Resolve targets early so an invalid/missing target fails validation
	// before any mutation (spec §4.7 preconditions).
	targets, err := st.resolveCardTargets(c, move, action.TargetID)
	if err != nil {
		return err
	}

	// Step 2: first-attack-this-turn / relentless accounting.
	isAttack := isAttackMove(move)
	firstAttack := !c.RelentlessUsedThisTurn && isAttack
	if isAttack {
		c.RelentlessUsedThisTurn = true
	}
	relentlessBonus := c.RelentlessCounter
	c.RelentlessCounter++

	// Step 3: parental-bond/family-fury copy decision.
	makeCopy := (c.Passives["parental_bond"] || c.Passives["family_fury"]) && !st.content.IsParentalBondCopy(action.CardInstanceID)

	// Step 4: deduct energy, remove card from hand, fix up inferno index.
	c.Energy -= cost
	handIndex := indexInHand(c, action.CardInstanceID)
	removeFromHand(c, action.CardInstanceID)
	if c.InfernoMomentumIndex == handIndex {
		c.InfernoMomentumActive = false
		c.InfernoMomentumIndex = -1
	} else if c.InfernoMomentumIndex > handIndex {
		c.InfernoMomentumIndex--
	}

	st.appendLog(c.ID, "played "+move.Name)

	ignoreEvasion := c.Passives["scrappy"] && move.Type == content.TypeNormal
	ignoreBlock := c.Passives["sniper"]
	relentlessDamageBonus := 0
	if c.Passives["relentless"] {
		relentlessDamageBonus = relentlessBonus
	}

	// Step 6: apply effects in declared order, per target.
	for _, target := range targets {
		for _, eff := range move.Effects {
			if !target.Alive && effectDealsDamage(eff.Kind) {
				continue // dead target halts further damage effects; self-effects below still run.
			}
			st.applyCardEffect(ctx, c, target, move, eff, damageCalcInput{
				Attacker:      c,
				Target:        target,
				AttackType:    move.Type,
				Base:          eff.Value,
				Cost:          move.Cost,
				Rarity:        move.Rarity,
				IgnoreEvasion: ignoreEvasion || eff.IgnoreEvasion,
				IgnoreBlock:   ignoreBlock || eff.IgnoreBlock,
				FirstAttack:   firstAttack,
			}, relentlessDamageBonus)
		}
	}

	// Step 7: push passive copy into hand, then dispose of the played card.
	if makeCopy {
		copyID := action.CardInstanceID + "#copy"
		c.Hand = append(c.Hand, copyID)
	}
	vanish := move.Vanish
	for _, eff := range move.Effects {
		vanish = vanish || eff.Vanish
	}
	if vanish {
		vanishOne(c, action.CardInstanceID)
	} else {
		discardOne(c, action.CardInstanceID)
	}

	// Step 8: gust + slipstream.
	if action.CardInstanceID == "gust" && c.Passives["slipstream"] {
		st.triggerSlipstream(c)
	}

	return nil
}

// applyCardEffect dispatches one closed-union effect (spec §4.7 step 6).
func (st *CombatState) applyCardEffect(ctx context.Context, attacker, target *Combatant, move content.MoveDefinition, eff content.Effect, dmgIn damageCalcInput, relentlessBonus int) {
	switch eff.Kind {
	case content.EffectDamage:
		dmgIn.Base += relentlessBonus
		st.resolveDamage(ctx, attacker, target, move.ID, dmgIn)

	case content.EffectMultiHit:
		for i := 0; i < eff.Hits; i++ {
			if !target.Alive {
				break
			}
			hitIn := dmgIn
			hitIn.Base = eff.Value + relentlessBonus
			st.resolveDamage(ctx, attacker, target, move.ID, hitIn)
		}

	case content.EffectRecoil:
		st.dealBypassDamage(target, eff.Value, "recoil")
		recoilAmount := int(float64(eff.Value) * eff.Percent)
		st.dealBypassDamage(attacker, recoilAmount, "recoil")

	case content.EffectSelfKO:
		attacker.HP = 0
		attacker.Alive = false
		st.appendLog(attacker.ID, "fainted from self-destruction")

	case content.EffectHealOnHit:
		dmgIn.Base += relentlessBonus
		before := target.HP
		st.resolveDamage(ctx, attacker, target, move.ID, dmgIn)
		dealt := before - target.HP
		if dealt > 0 {
			st.heal(attacker, dealt)
		}

	case content.EffectSetDamage:
		st.dealBypassDamage(target, eff.Value, "set damage")
		if target.Alive {
			st.fireDamageEvents(ctx, attacker, target, move.ID, move.Type, eff.Value)
		}

	case content.EffectPercentHP:
		amount := int(float64(target.MaxHP) * eff.Percent)
		st.dealBypassDamage(target, amount, "percent-hp")

	case content.EffectDrawCards:
		st.draw(attacker, eff.Value, st.stream)

	case content.EffectGainEnergy:
		attacker.Energy += eff.Value
		if attacker.Energy > attacker.EnergyCap {
			attacker.Energy = attacker.EnergyCap
		}

	case content.EffectApplyStatus:
		if attacker.Passives["sheer_force"] {
			return // move-based status suppressed; passive-driven status still fires elsewhere.
		}
		st.applyStatus(ctx, attacker.ID, target, StatusType(eff.StatusType), eff.Stacks)

	case content.EffectApplyStatusSelf:
		st.applyStatus(ctx, attacker.ID, attacker, StatusType(eff.StatusType), eff.Stacks)

	case content.EffectCleanse:
		removeStatus(attacker, StatusType(eff.StatusType))

	case content.EffectBlock:
		attacker.Block += eff.Value

	case content.EffectHeal:
		st.heal(attacker, eff.Value)

	case content.EffectHealPercent:
		amount := int(float64(attacker.MaxHP) * eff.Percent)
		st.heal(attacker, amount)
	}
}

// resolveDamage runs the fixed damage chain and fires onDamageDealt /
// onDamageTaken when HP damage occurred (spec §4.7 step 6).
func (st *CombatState) resolveDamage(ctx context.Context, attacker, target *Combatant, cardID string, in damageCalcInput) DamageBreakdown {
	b := st.calculateDamage(in)
	if b.HPDamage > 0 {
		st.fireDamageEvents(ctx, attacker, target, cardID, in.AttackType, b.HPDamage)
	} else {
		st.appendLog(attacker.ID, "attack fully blocked/evaded")
	}
	return b
}

func (st *CombatState) fireDamageEvents(ctx context.Context, attacker, target *Combatant, cardID string, attackType content.Type, hpDamage int) {
	dealt := newDamageDealtEvent(st, attacker.ID, target.ID, cardID, attackType, hpDamage)
	_ = DamageDealtTopic.On(st.bus).Publish(ctx, dealt)
	taken := newDamageTakenEvent(st, attacker.ID, target.ID, cardID, attackType, hpDamage)
	_ = DamageTakenTopic.On(st.bus).Publish(ctx, taken)
}

func effectDealsDamage(kind content.EffectKind) bool {
	switch kind {
	case content.EffectDamage, content.EffectMultiHit, content.EffectSetDamage, content.EffectHealOnHit:
		return true
	default:
		return false
	}
}

func isAttackMove(move content.MoveDefinition) bool {
	for _, eff := range move.Effects {
		if effectDealsDamage(eff.Kind) {
			return true
		}
	}
	return false
}

// effectiveCost implements the spec §4.7 step 1 formula: reductions from
// quick_feet (first attack) and inferno_momentum (marked hand index),
// increases from hustle, floored at 0.
func (st *CombatState) effectiveCost(c *Combatant, cardID string, move content.MoveDefinition) int {
	cost := move.Cost
	if c.Passives["quick_feet"] && !c.RelentlessUsedThisTurn && isAttackMove(move) {
		cost--
	}
	if c.InfernoMomentumActive && c.InfernoMomentumIndex == indexInHand(c, cardID) {
		cost -= 3
	}
	if c.Passives["hustle"] {
		cost++
	}
	if cost < 0 {
		return 0
	}
	return cost
}

func indexInHand(c *Combatant, cardID string) int {
	for i, id := range c.Hand {
		if id == cardID {
			return i
		}
	}
	return -1
}

// resolveCardTargets implements spec §4.7 step 5: range resolution with
// the hurricane row->all_enemies upgrade and lightning-rod redirection.
func (st *CombatState) resolveCardTargets(c *Combatant, move content.MoveDefinition, targetHint string) ([]*Combatant, error) {
	effectiveRange := move.Range
	if c.Passives["hurricane"] {
		switch effectiveRange {
		case content.RangeFrontRow, content.RangeBackRow, content.RangeAnyRow:
			effectiveRange = content.RangeAllEnemies
		}
	}

	targets, err := st.resolveTargets(c, effectiveRange, targetHint)
	if err != nil {
		return nil, err
	}

	if move.Type == content.TypeElectric {
		targets = redirectLightningRod(st, c, targets)
	}

	return targets, nil
}

// redirectLightningRod implements the spec §4.6 lightning_rod passive:
// electric attacks against a side with a lightning_rod holder are redirected
// to that holder instead of the original targets.
func redirectLightningRod(st *CombatState, attacker *Combatant, targets []*Combatant) []*Combatant {
	if len(targets) == 0 {
		return targets
	}
	for _, c := range st.sideOf(targets[0]) {
		if c.Alive && c.Passives["lightning_rod"] {
			return []*Combatant{c}
		}
	}
	return targets
}

// triggerSlipstream implements the spec §5 slipstream primitive: moves the
// next unacted ally immediately after the current actor in the queue and
// marks it protected for the remainder of the round.
func (st *CombatState) triggerSlipstream(actor *Combatant) {
	currentIdx := -1
	for i, entry := range st.Queue {
		if entry.CombatantID == actor.ID {
			currentIdx = i
			break
		}
	}
	if currentIdx < 0 {
		return
	}

	nextAllyIdx := -1
	for i := currentIdx + 1; i < len(st.Queue); i++ {
		entry := st.Queue[i]
		cand := st.Combatant(entry.CombatantID)
		if cand != nil && cand.Side == actor.Side && !entry.HasActed {
			nextAllyIdx = i
			break
		}
	}
	if nextAllyIdx < 0 || nextAllyIdx == currentIdx+1 {
		return
	}

	entry := st.Queue[nextAllyIdx]
	st.Queue = append(st.Queue[:nextAllyIdx], st.Queue[nextAllyIdx+1:]...)
	insertAt := currentIdx + 1
	st.Queue = append(st.Queue[:insertAt], append([]TurnQueueEntry{entry}, st.Queue[insertAt:]...)...)

	st.slipstreamProtected[entry.CombatantID] = true
	st.appendLog(actor.ID, "slipstream pulled "+entry.CombatantID+" forward")
}
