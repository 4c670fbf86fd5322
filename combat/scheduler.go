// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"

	"github.com/kestrelforge/combatcore/content"
)

// rebuildQueue builds the turn queue from scratch in initiative order
// (spec §5 sort key) over every alive combatant, clearing hasActed.
func (st *CombatState) rebuildQueue() {
	alive := st.aliveCombatants()
	sortByInitiative(alive, st.slipstreamProtected)

	st.Queue = make([]TurnQueueEntry, len(alive))
	for i, c := range alive {
		st.Queue[i] = TurnQueueEntry{CombatantID: c.ID}
	}
	st.CurrentTurnIndex = 0
}

// sortByInitiative implements the spec §5 key: (-effectiveSpeed, sideRank,
// slotTieBreak), sideRank player<enemy, slotTieBreak -slot for player and
// +slot for enemy.
func sortByInitiative(cs []*Combatant, protected map[string]bool) {
	less := func(a, b *Combatant) bool {
		sa, sb := effectiveSpeed(a, 0), effectiveSpeed(b, 0)
		if sa != sb {
			return sa > sb // higher effective speed first (-speed ascending)
		}
		ra, rb := sideRank(a.Side), sideRank(b.Side)
		if ra != rb {
			return ra < rb
		}
		ta, tb := slotTieBreak(a), slotTieBreak(b)
		return ta < tb
	}
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && less(cs[j], cs[j-1]); j-- {
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}

func sideRank(side Side) int {
	if side == SidePlayer {
		return 0
	}
	return 1
}

func slotTieBreak(c *Combatant) int {
	if c.Side == SidePlayer {
		return -c.Slot
	}
	return c.Slot
}

// currentActor returns the combatant whose turn it is, or nil if the queue
// is exhausted or invalid.
func (st *CombatState) currentActor() *Combatant {
	if st.CurrentTurnIndex < 0 || st.CurrentTurnIndex >= len(st.Queue) {
		return nil
	}
	return st.Combatant(st.Queue[st.CurrentTurnIndex].CombatantID)
}

// StartTurnResult reports startTurn's outcome (spec §6).
type StartTurnResult struct {
	Skipped bool
}

// startTurn implements the spec §6 operation: runs pre-turn housekeeping,
// fires onTurnStart, and reports whether the actor was already dead
// (having been killed by a prior status tick) so the driver should skip
// straight to skipTurnAndAdvance.
func (st *CombatState) StartTurn(ctx context.Context) (StartTurnResult, error) {
	actor := st.currentActor()
	if actor == nil {
		return StartTurnResult{}, errInvariantViolation("no current actor at turn start")
	}
	if !actor.Alive {
		return StartTurnResult{Skipped: true}, nil
	}

	actor.AlliesDamagedThisRound = make(map[string]bool)

	_ = TurnStartTopic.On(st.bus).Publish(ctx, newTurnStartEvent(st, actor.ID))

	if !actor.Alive {
		return StartTurnResult{Skipped: true}, nil
	}
	return StartTurnResult{}, nil
}

// processAction implements the spec §6 operation: resolves a single
// PlayCard or SwitchPosition action, then re-sorts the remaining unacted
// queue if any effective speed changed (spec §5).
func (st *CombatState) ProcessAction(ctx context.Context, action Action) error {
	actor := st.currentActor()
	if actor == nil {
		return errInvariantViolation("no current actor to act")
	}

	before := st.snapshotSpeeds()

	var err error
	switch action.Kind {
	case ActionPlayCard:
		err = st.playCard(ctx, actor, action)
	case ActionSwitchPosition:
		err = st.switchPosition(actor, action.TargetPosition)
	case ActionEndTurn:
		return st.EndTurn(ctx)
	default:
		return errInvariantViolation("unknown action kind")
	}
	if err != nil {
		return err
	}

	if st.speedsChanged(before) {
		st.resortUnacted()
	}
	return nil
}

func (st *CombatState) snapshotSpeeds() map[string]int {
	speeds := make(map[string]int, len(st.Order))
	for _, id := range st.Order {
		c := st.Combatants[id]
		if c.Alive {
			speeds[id] = effectiveSpeed(c, 0)
		}
	}
	return speeds
}

func (st *CombatState) speedsChanged(before map[string]int) bool {
	for _, id := range st.Order {
		c := st.Combatants[id]
		if !c.Alive {
			continue
		}
		if before[id] != effectiveSpeed(c, 0) {
			return true
		}
	}
	return false
}

// resortUnacted re-sorts the not-yet-acted tail of the queue in place,
// preserving already-acted entries and relocating the current actor (spec
// §5). Slipstream-protected combatants are exempt from being pushed behind
// enemies: they are pinned immediately after the current actor's new
// position before the remainder is sorted.
func (st *CombatState) resortUnacted() {
	currentID := ""
	if actor := st.currentActor(); actor != nil {
		currentID = actor.ID
	}

	acted := make([]TurnQueueEntry, 0, len(st.Queue))
	unacted := make([]TurnQueueEntry, 0, len(st.Queue))
	for _, entry := range st.Queue {
		if entry.HasActed {
			acted = append(acted, entry)
		} else {
			unacted = append(unacted, entry)
		}
	}

	var protected []TurnQueueEntry
	var rest []TurnQueueEntry
	for _, entry := range unacted {
		if st.slipstreamProtected[entry.CombatantID] {
			protected = append(protected, entry)
		} else {
			rest = append(rest, entry)
		}
	}

	combatants := make([]*Combatant, 0, len(rest))
	for _, entry := range rest {
		combatants = append(combatants, st.Combatants[entry.CombatantID])
	}
	sortByInitiative(combatants, st.slipstreamProtected)

	sortedRest := make([]TurnQueueEntry, 0, len(combatants))
	for _, c := range combatants {
		sortedRest = append(sortedRest, TurnQueueEntry{CombatantID: c.ID})
	}

	newUnacted := make([]TurnQueueEntry, 0, len(unacted))
	pinned := false
	for _, entry := range sortedRest {
		newUnacted = append(newUnacted, entry)
		if entry.CombatantID == currentID {
			newUnacted = append(newUnacted, protected...)
			pinned = true
		}
	}
	if !pinned {
		newUnacted = append(protected, newUnacted...)
	}
	st.Queue = append(acted, newUnacted...)

	for i, entry := range st.Queue {
		if entry.CombatantID == currentID {
			st.CurrentTurnIndex = i
			break
		}
	}
}

// endTurn implements the spec §6 operation: discard remaining hand,
// pre-draw the actor's next hand, fire onTurnEnd, advance the queue, and
// possibly run the round boundary.
func (st *CombatState) EndTurn(ctx context.Context) error {
	actor := st.currentActor()
	if actor == nil {
		return errInvariantViolation("no current actor to end turn for")
	}

	st.discardHand(actor)
	st.draw(actor, actor.HandSize, st.stream)

	_ = TurnEndTopic.On(st.bus).Publish(ctx, newTurnEndEvent(st, actor.ID))

	st.Queue[st.CurrentTurnIndex].HasActed = true

	return st.advanceQueue(ctx)
}

// skipTurnAndAdvance implements the spec §6 operation: for a turn skipped
// because the actor died from a pre-turn tick.
func (st *CombatState) SkipTurnAndAdvance(ctx context.Context) error {
	if st.CurrentTurnIndex >= 0 && st.CurrentTurnIndex < len(st.Queue) {
		st.Queue[st.CurrentTurnIndex].HasActed = true
	}
	return st.advanceQueue(ctx)
}

// advanceQueue moves to the next unacted entry, or runs the round boundary
// if every entry has acted (spec §5).
func (st *CombatState) advanceQueue(ctx context.Context) error {
	for i := st.CurrentTurnIndex + 1; i < len(st.Queue); i++ {
		if !st.Queue[i].HasActed {
			st.CurrentTurnIndex = i
			return nil
		}
	}

	allActed := true
	for _, entry := range st.Queue {
		if !entry.HasActed {
			allActed = false
			break
		}
	}
	if !allActed {
		return errInvariantViolation("queue has unacted entries out of scan order")
	}

	return st.processRoundBoundary(ctx)
}

// processRoundBoundary implements the spec §5 round boundary: status ticks
// and block reset, onRoundEnd, clear slipstream protection, increment
// round, rebuild the queue.
func (st *CombatState) processRoundBoundary(ctx context.Context) error {
	for _, id := range st.Order {
		c := st.Combatants[id]
		if c.Alive {
			st.processStatusTicks(c)
		}
	}

	_ = RoundEndTopic.On(st.bus).Publish(ctx, newRoundEndEvent(st))

	st.slipstreamProtected = make(map[string]bool)
	st.Round++

	if st.checkVictoryDefeat() {
		return nil
	}

	st.rebuildQueue()
	return nil
}

// checkVictoryDefeat sets Phase to victory/defeat if one side has no
// living combatants, returning true if the battle ended.
func (st *CombatState) checkVictoryDefeat() bool {
	playersAlive, enemiesAlive := false, false
	for _, id := range st.Order {
		c := st.Combatants[id]
		if !c.Alive {
			continue
		}
		if c.Side == SidePlayer {
			playersAlive = true
		} else {
			enemiesAlive = true
		}
	}
	switch {
	case !playersAlive:
		st.Phase = PhaseDefeat
		return true
	case !enemiesAlive:
		st.Phase = PhaseVictory
		return true
	default:
		return false
	}
}

// getPlayableCards returns the hand card ids c can currently afford.
func (st *CombatState) GetPlayableCards(c *Combatant) []string {
	out := make([]string, 0, len(c.Hand))
	for _, cardID := range c.Hand {
		move, err := st.content.GetMove(cardID)
		if err != nil {
			continue
		}
		if st.effectiveCost(c, cardID, move) <= c.Energy {
			out = append(out, cardID)
		}
	}
	return out
}

// getEffectiveCost returns the effective cost of the card at handIndex.
func (st *CombatState) GetEffectiveCost(c *Combatant, handIndex int) (int, error) {
	if handIndex < 0 || handIndex >= len(c.Hand) {
		return 0, errInvariantViolation("hand index out of range")
	}
	cardID := c.Hand[handIndex]
	move, err := st.content.GetMove(cardID)
	if err != nil {
		return 0, errContentNotFound("move", cardID, err)
	}
	return st.effectiveCost(c, cardID, move), nil
}

// getValidTargets returns candidate target ids for source at the given
// range, without requiring a target hint (useful for driver UI prompts).
func (st *CombatState) GetValidTargets(source *Combatant, rng content.Range) []string {
	targets, err := st.resolveTargets(source, rng, "")
	if err == nil {
		return idsOf(targets)
	}
	// Ambiguous or multi-candidate ranges: surface every enemy that would
	// be a legal hint rather than erroring the whole query.
	all := st.enemiesOf(source)
	ids := make([]string, 0, len(all))
	for _, c := range all {
		ids = append(ids, c.ID)
	}
	return ids
}

func idsOf(cs []*Combatant) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
