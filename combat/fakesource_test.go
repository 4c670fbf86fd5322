// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/kestrelforge/combatcore/content"
)

// fakeSource is a minimal hand-rolled content.Source for tests that need
// fixed, readable data rather than gomock call expectations - the engine
// only ever reads through this interface, so a literal map-backed fake
// exercises the same contract a generated mock would.
type fakeSource struct {
	moves     map[string]content.MoveDefinition
	creatures map[string]content.CreatureData
	copies    map[string]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		moves:     make(map[string]content.MoveDefinition),
		creatures: make(map[string]content.CreatureData),
		copies:    make(map[string]bool),
	}
}

func (f *fakeSource) GetMove(id string) (content.MoveDefinition, error) {
	mv, ok := f.moves[id]
	if !ok {
		return content.MoveDefinition{}, &content.ErrNotFound{Kind: "move", ID: id}
	}
	return mv, nil
}

func (f *fakeSource) GetCreature(id string) (content.CreatureData, error) {
	cr, ok := f.creatures[id]
	if !ok {
		return content.CreatureData{}, &content.ErrNotFound{Kind: "creature", ID: id}
	}
	return cr, nil
}

func (f *fakeSource) IsParentalBondCopy(cardID string) bool {
	return f.copies[cardID]
}

func (f *fakeSource) GetTypeEffectiveness(attackType content.Type, defenderTypes []content.Type) float64 {
	return Effectiveness(attackType, defenderTypes)
}

// newTestCombatant builds a bare combatant with the scratch maps a real
// spawn would initialize, for tests that exercise calculateDamage or the
// status system directly without going through NewCombatState.
func newTestCombatant(id string, side Side, types ...content.Type) *Combatant {
	return &Combatant{
		ID:                     id,
		Name:                   id,
		Types:                  types,
		Side:                   side,
		HP:                     100,
		MaxHP:                  100,
		Alive:                  true,
		EnergyCap:              10,
		HandSize:               5,
		Passives:               make(map[string]bool),
		FirstAttackFlags:       make(map[content.Type]bool),
		InfernoMomentumIndex:   -1,
		AlliesDamagedThisRound: make(map[string]bool),
	}
}

// newTestState builds a CombatState around pre-built combatants, bypassing
// NewCombatState's spawn/draw/queue-build sequence for tests that only need
// calculateDamage or the status system.
func newTestState(src *fakeSource, combatants ...*Combatant) *CombatState {
	st := &CombatState{
		Combatants:          make(map[string]*Combatant),
		Phase:               PhaseOngoing,
		Round:                1,
		slipstreamProtected: make(map[string]bool),
		content:             src,
	}
	for _, c := range combatants {
		st.Combatants[c.ID] = c
		st.Order = append(st.Order, c.ID)
	}
	return st
}
