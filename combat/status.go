// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"
	"strconv"
)

// speedAffecting is the set of status types that feed into effective speed
// (spec §4.4).
var speedAffecting = map[StatusType]bool{
	StatusParalysis: true,
	StatusSlow:      true,
	StatusHaste:     true,
}

// immunityPassives maps a status type to the passive ids that block it
// outright (spec §4.4). applyStatus consults this before stacking.
var immunityPassives = map[StatusType][]string{
	StatusPoison:  {"immunity", "shield_dust"},
	StatusBurn:    {"immunity", "flash_fire"},
	StatusSleep:   {"insomnia"},
	StatusEnfeeble: {"inner_focus"},
}

// isImmune reports whether c's passive set blocks statusType outright.
func isImmune(c *Combatant, statusType StatusType) bool {
	for _, passive := range immunityPassives[statusType] {
		if c.Passives[passive] {
			return true
		}
	}
	return false
}

// applyStatus applies a status to target, re-entering onStatusApplied on
// success (spec §4.6). Use applyStatusDirect for cascades triggered as a
// consequence of another status application.
func (st *CombatState) applyStatus(ctx context.Context, sourceID string, target *Combatant, statusType StatusType, stacks int) bool {
	if !st.applyStatusDirect(target, statusType, stacks, sourceID) {
		return false
	}
	event := newStatusAppliedEvent(st, sourceID, target.ID, statusType, stacks)
	_ = StatusAppliedTopic.On(st.bus).Publish(ctx, event)
	return true
}

// applyStatusDirect applies a status without firing onStatusApplied (spec
// §4.6, §9 recursion safety). Spreading passives (spreading_flames,
// spreading_spores, powder_spread, drowsy_aura) must call this, not
// applyStatus, or a chain of spreads would recurse through the hook bus.
func (st *CombatState) applyStatusDirect(target *Combatant, statusType StatusType, stacks int, sourceID string) bool {
	if isImmune(target, statusType) {
		return false
	}

	for i := range target.Statuses {
		inst := &target.Statuses[i]
		if inst.Type != statusType {
			continue
		}
		inst.Stacks += stacks
		if statusType == StatusLeech {
			inst.SourceID = sourceID
		}
		return true
	}

	target.Statuses = append(target.Statuses, StatusInstance{
		Type:         statusType,
		Stacks:       stacks,
		SourceID:     sourceID,
		AppliedOrder: st.statusApplyCounter,
	})
	st.statusApplyCounter++
	return true
}

// statusStacks returns the current stack count for statusType on c, 0 if
// absent.
func statusStacks(c *Combatant, statusType StatusType) int {
	for _, inst := range c.Statuses {
		if inst.Type == statusType {
			return inst.Stacks
		}
	}
	return 0
}

// effectiveSpeed implements the spec §4.4 formula: baseSpeed + passiveBonus
// + haste - paralysis - slow, floored at 0.
func effectiveSpeed(c *Combatant, passiveBonus int) int {
	speed := c.BaseSpeed + passiveBonus
	speed += statusStacks(c, StatusHaste)
	speed -= statusStacks(c, StatusParalysis)
	speed -= statusStacks(c, StatusSlow)
	if speed < 0 {
		return 0
	}
	return speed
}

// removeStatus deletes the instance for statusType from c, if present.
func removeStatus(c *Combatant, statusType StatusType) {
	for i, inst := range c.Statuses {
		if inst.Type == statusType {
			c.Statuses = append(c.Statuses[:i], c.Statuses[i+1:]...)
			return
		}
	}
}

// processStatusTicks runs round-boundary status processing for one
// combatant (spec §4.4): ticks in appliedOrder (oldest first), stopping if
// the combatant dies mid-tick, then resets block. Each tick appends its log
// lines to the state's log.
func (st *CombatState) processStatusTicks(c *Combatant) {
	order := append([]StatusInstance(nil), c.Statuses...)
	sortByAppliedOrder(order)

	for _, snapshot := range order {
		inst := findStatus(c, snapshot.Type)
		if inst == nil {
			continue // removed earlier this tick pass (e.g. a prior tick killed and revived is impossible, but defensive)
		}
		if !c.Alive {
			return
		}

		switch inst.Type {
		case StatusBurn:
			st.dealBypassDamage(c, inst.Stacks, "burn")
			inst.Stacks--
		case StatusPoison:
			amount := inst.Stacks
			if sourceHasPotentVenom(st, inst.SourceID) {
				amount *= 2
			}
			st.dealBypassDamage(c, amount, "poison")
			inst.Stacks++
		case StatusLeech:
			amount := inst.Stacks
			st.dealBypassDamage(c, amount, "leech")
			if source := st.Combatant(inst.SourceID); source != nil && source.Alive {
				healed := st.heal(source, amount)
				if healed > 0 {
					st.appendLog(source.ID, "healed for "+strconv.Itoa(healed)+" from leech")
				}
			}
			inst.Stacks--
		default:
			inst.Stacks--
		}

		if inst.Stacks <= 0 {
			removeStatus(c, inst.Type)
		}
	}

	if !c.Passives["pressure_hull"] {
		c.Block = 0
	} else {
		c.Block = c.Block / 2
	}
}

func findStatus(c *Combatant, statusType StatusType) *StatusInstance {
	for i := range c.Statuses {
		if c.Statuses[i].Type == statusType {
			return &c.Statuses[i]
		}
	}
	return nil
}

func sortByAppliedOrder(statuses []StatusInstance) {
	for i := 1; i < len(statuses); i++ {
		for j := i; j > 0 && statuses[j-1].AppliedOrder > statuses[j].AppliedOrder; j-- {
			statuses[j-1], statuses[j] = statuses[j], statuses[j-1]
		}
	}
}

func sourceHasPotentVenom(st *CombatState, sourceID string) bool {
	source := st.Combatant(sourceID)
	return source != nil && source.Passives["potent_venom"]
}

// dealBypassDamage applies bypass damage (spec §4.3): ignores strength,
// enfeeble, evasion, and block; clamps HP at 0 and marks death.
func (st *CombatState) dealBypassDamage(c *Combatant, amount int, reason string) {
	if amount <= 0 {
		return
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
	}
	st.appendLog(c.ID, "took "+strconv.Itoa(amount)+" "+reason+" damage")
}

// heal applies HP healing saturated at maxHp, returning the actual amount
// gained (spec §4.3).
func (st *CombatState) heal(c *Combatant, amount int) int {
	if amount <= 0 || !c.Alive {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}
