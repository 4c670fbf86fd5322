// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"

	"github.com/google/uuid"

	"github.com/kestrelforge/combatcore/content"
	"github.com/kestrelforge/combatcore/events"
	"github.com/kestrelforge/combatcore/rng"
)

// CombatState owns every piece of mutable battle data (spec §3). Callers
// must not retain references to its internals after a call returns; read
// through the accessors in scheduler.go instead.
type CombatState struct {
	Combatants map[string]*Combatant
	Order      []string // stable creation order, for deterministic iteration

	Queue            []TurnQueueEntry
	CurrentTurnIndex int
	Round            int
	Phase            Phase

	Log []LogEntry

	statusApplyCounter int
	slipstreamProtected map[string]bool

	content content.Source
	stream  rng.Stream
	bus     events.EventBus
}

// NewCombatStateParams bundles createCombatState's inputs (spec §6).
type NewCombatStateParams struct {
	Players []CreatureSpawn
	Enemies []CreatureSpawn

	Content content.Source
	Stream  rng.Stream

	// DeterministicDraw skips the opening hand shuffle, drawing decks in
	// declared order - useful for golden tests pinned to spec §8 fixtures.
	DeterministicDraw bool
}

// CreatureSpawn is one combatant to create at battle start: a content id
// plus the slot/position it occupies.
type CreatureSpawn struct {
	ContentID string
	ID        string // optional; generated if empty
	Pos       Position
}

// NewCombatState implements createCombatState (spec §6): builds combatants
// from the content snapshot, assigns default positions if unset, builds the
// passive bus, fires onBattleStart, draws opening hands, and builds the
// initial turn queue.
func NewCombatState(params NewCombatStateParams) (*CombatState, error) {
	st := &CombatState{
		Combatants:           make(map[string]*Combatant),
		Phase:                PhaseOngoing,
		Round:                1,
		slipstreamProtected:  make(map[string]bool),
		content:              params.Content,
		stream:               params.Stream,
		bus:                  events.NewBus(),
	}
	if st.stream == nil {
		st.stream = rng.Default
	}

	if err := st.spawnSide(SidePlayer, params.Players); err != nil {
		return nil, err
	}
	if err := st.spawnSide(SideEnemy, params.Enemies); err != nil {
		return nil, err
	}

	registerPassives(st.bus)

	ctx := context.Background()
	_ = BattleStartTopic.On(st.bus).Publish(ctx, newBattleStartEvent(st))

	for _, id := range st.Order {
		c := st.Combatants[id]
		st.drawOpeningHand(c, params.DeterministicDraw)
	}

	st.rebuildQueue()

	return st, nil
}

func (st *CombatState) spawnSide(side Side, spawns []CreatureSpawn) error {
	for i, spawn := range spawns {
		data, err := st.content.GetCreature(spawn.ContentID)
		if err != nil {
			return errContentNotFound("creature", spawn.ContentID, err)
		}

		id := spawn.ID
		if id == "" {
			id = uuid.NewString()
		}

		pos := spawn.Pos
		if pos.Row == "" {
			pos = defaultPosition(side, i)
		}

		c := &Combatant{
			ID:                     id,
			ContentID:              spawn.ContentID,
			Name:                   data.Name,
			Types:                  data.Types,
			Side:                   side,
			Slot:                   i,
			Pos:                    pos,
			HP:                     data.MaxHP,
			MaxHP:                  data.MaxHP,
			Alive:                  true,
			EnergyPerTurn:          data.EnergyPerTurn,
			EnergyCap:              data.EnergyCap,
			BaseSpeed:              data.BaseSpeed,
			HandSize:               data.HandSize,
			DrawPile:               append([]string(nil), data.Deck...),
			Passives:               make(map[string]bool),
			FirstAttackFlags:       make(map[content.Type]bool),
			InfernoMomentumIndex:   -1,
			AlliesDamagedThisRound: make(map[string]bool),
		}

		for _, passive := range data.Passives {
			c.Passives[passive] = true
		}

		st.Combatants[id] = c
		st.Order = append(st.Order, id)
	}
	return nil
}

// defaultPosition lays out combatants front-row-first, 3 per row, 2 rows.
func defaultPosition(side Side, index int) Position {
	row := RowFront
	col := index
	if index >= 3 {
		row = RowBack
		col = index - 3
	}
	if col > 2 {
		col = 2
	}
	return Position{Row: row, Column: col}
}

func (st *CombatState) drawOpeningHand(c *Combatant, deterministic bool) {
	var stream rng.Stream = st.stream
	if deterministic {
		stream = noShuffleStream{}
	}
	rng.Shuffle(c.DrawPile, stream)
	st.draw(c, c.HandSize, stream)
}

// noShuffleStream always reports the largest float64 below 1, which leaves
// rng.Shuffle's Fisher-Yates pass a no-op (every swap target equals the
// current index).
type noShuffleStream struct{}

func (noShuffleStream) Float64() float64 { return 1 - 1.0/(1<<53) }

// appendLog appends one entry to the append-only log.
func (st *CombatState) appendLog(combatantID, message string) {
	st.Log = append(st.Log, LogEntry{
		Round:       st.Round,
		CombatantID: combatantID,
		Message:     message,
	})
}

// Combatant returns a combatant by id, or nil if unknown.
func (st *CombatState) Combatant(id string) *Combatant {
	return st.Combatants[id]
}

// aliveCombatants returns combatants with Alive == true, in creation order.
func (st *CombatState) aliveCombatants() []*Combatant {
	out := make([]*Combatant, 0, len(st.Order))
	for _, id := range st.Order {
		if c := st.Combatants[id]; c.Alive {
			out = append(out, c)
		}
	}
	return out
}

func (st *CombatState) sideOf(c *Combatant) []*Combatant {
	out := make([]*Combatant, 0)
	for _, id := range st.Order {
		if other := st.Combatants[id]; other.Side == c.Side && other.Alive {
			out = append(out, other)
		}
	}
	return out
}

func (st *CombatState) enemiesOf(c *Combatant) []*Combatant {
	out := make([]*Combatant, 0)
	for _, id := range st.Order {
		if other := st.Combatants[id]; other.Side != c.Side && other.Alive {
			out = append(out, other)
		}
	}
	return out
}
