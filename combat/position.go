// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import "github.com/kestrelforge/combatcore/content"

const switchCost = 2

// effectiveFrontRow implements the front-row collapse rule (spec §4.5): if
// a side has no alive front-row combatant, its back row stands in as front
// for range resolution purposes.
func (st *CombatState) effectiveFrontRow(side Side) Row {
	for _, id := range st.Order {
		c := st.Combatants[id]
		if c.Side == side && c.Alive && c.Pos.Row == RowFront {
			return RowFront
		}
	}
	return RowBack
}

// adjacent reports whether two positions on the same side are adjacent
// (spec §4.5): same row, column difference exactly 1.
func adjacent(a, b Position) bool {
	if a.Row != b.Row {
		return false
	}
	diff := a.Column - b.Column
	if diff < 0 {
		diff = -diff
	}
	return diff == 1
}

func (st *CombatState) combatantsInRow(side Side, row Row) []*Combatant {
	out := make([]*Combatant, 0, 3)
	for _, id := range st.Order {
		c := st.Combatants[id]
		if c.Side == side && c.Alive && c.Pos.Row == row {
			out = append(out, c)
		}
	}
	sortBySlotColumn(out)
	return out
}

func sortBySlotColumn(cs []*Combatant) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j-1].Pos.Column > cs[j].Pos.Column; j-- {
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}

// resolveTargets implements the spec §4.5 range table. targetHint
// selects the row or column for any_row and column, and otherwise names the
// target of a single-target range; a non-empty hint must match a candidate.
// Without a hint, a single-target range resolves only when exactly one
// candidate qualifies. Returned
// slices are ordered by the spec §5 deterministic rule: slot index
// ascending for same-side, row-then-column for cross-row.
func (st *CombatState) resolveTargets(source *Combatant, rng content.Range, targetHint string) ([]*Combatant, error) {
	enemySide := opposite(source.Side)

	switch rng {
	case content.RangeSelf:
		return []*Combatant{source}, nil

	case content.RangeFrontEnemy:
		row := st.effectiveFrontRow(enemySide)
		candidates := st.combatantsInRow(enemySide, row)
		return pickSingle(source, candidates, targetHint, rng)

	case content.RangeBackEnemy:
		candidates := st.combatantsInRow(enemySide, RowBack)
		if len(candidates) == 0 {
			candidates = st.combatantsInRow(enemySide, st.effectiveFrontRow(enemySide))
		}
		return pickSingle(source, candidates, targetHint, rng)

	case content.RangeAnyEnemy:
		candidates := st.enemiesOf(source)
		return pickSingle(source, candidates, targetHint, rng)

	case content.RangeFrontRow:
		return st.combatantsInRow(enemySide, st.effectiveFrontRow(enemySide)), nil

	case content.RangeBackRow:
		candidates := st.combatantsInRow(enemySide, RowBack)
		if len(candidates) == 0 {
			candidates = st.combatantsInRow(enemySide, st.effectiveFrontRow(enemySide))
		}
		return candidates, nil

	case content.RangeAnyRow:
		row := Row(targetHint)
		if row != RowFront && row != RowBack {
			return nil, errAmbiguousTarget(source.ID, rng, 2)
		}
		return st.combatantsInRow(enemySide, row), nil

	case content.RangeColumn:
		col, ok := parseColumn(targetHint)
		if !ok {
			return nil, errAmbiguousTarget(source.ID, rng, 3)
		}
		out := make([]*Combatant, 0, 2)
		for _, id := range st.Order {
			c := st.Combatants[id]
			if c.Side == enemySide && c.Alive && c.Pos.Column == col {
				out = append(out, c)
			}
		}
		sortByRowThenColumn(out)
		return out, nil

	case content.RangeAllEnemies:
		out := st.enemiesOf(source)
		sortByRowThenColumn(out)
		return out, nil

	case content.RangePiercing:
		front := st.combatantsInRow(enemySide, st.effectiveFrontRow(enemySide))
		primary, err := pickSingle(source, front, targetHint, rng)
		if err != nil {
			return nil, err
		}
		out := append([]*Combatant(nil), primary...)
		if len(primary) == 1 {
			for _, id := range st.Order {
				c := st.Combatants[id]
				if c.Side == enemySide && c.Alive && c.Pos.Row == RowBack && c.Pos.Column == primary[0].Pos.Column {
					out = append(out, c)
				}
			}
		}
		return out, nil

	default:
		return nil, errNoValidTarget(source.ID, rng)
	}
}

// pickSingle resolves a single-target range: if targetHint names a
// candidate, that one wins; if exactly one candidate exists, it is chosen
// implicitly; otherwise resolution fails (spec §4.5).
func pickSingle(source *Combatant, candidates []*Combatant, targetHint string, rng content.Range) ([]*Combatant, error) {
	if targetHint != "" {
		for _, c := range candidates {
			if c.ID == targetHint {
				return []*Combatant{c}, nil
			}
		}
		return nil, errNoValidTarget(source.ID, rng)
	}
	switch len(candidates) {
	case 0:
		return nil, errNoValidTarget(source.ID, rng)
	case 1:
		return candidates, nil
	default:
		return nil, errAmbiguousTarget(source.ID, rng, len(candidates))
	}
}

func sortByRowThenColumn(cs []*Combatant) {
	rowRank := func(r Row) int {
		if r == RowFront {
			return 0
		}
		return 1
	}
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0; j-- {
			a, b := cs[j-1], cs[j]
			if rowRank(a.Pos.Row) < rowRank(b.Pos.Row) {
				break
			}
			if rowRank(a.Pos.Row) == rowRank(b.Pos.Row) && a.Pos.Column <= b.Pos.Column {
				break
			}
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}

func parseColumn(hint string) (int, bool) {
	switch hint {
	case "0":
		return 0, true
	case "1":
		return 1, true
	case "2":
		return 2, true
	default:
		return 0, false
	}
}

func opposite(side Side) Side {
	if side == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// switchPosition implements the spec §4.5 switch action: fixed 2-energy
// cost, at most once per turn, target must be adjacent; swaps with a
// living ally occupying the cell, otherwise moves.
func (st *CombatState) switchPosition(c *Combatant, target Position) error {
	if c.HasSwitchedThisTurn {
		return errSwitchAlreadyUsed(c.ID)
	}
	if !adjacent(c.Pos, target) {
		return errSwitchNotAdjacent(c.ID)
	}
	if c.Energy < switchCost {
		return errInsufficientEnergy(c.ID, switchCost, c.Energy)
	}

	c.Energy -= switchCost
	c.HasSwitchedThisTurn = true

	if occupant := st.combatantAt(c.Side, target); occupant != nil && occupant.Alive {
		occupant.Pos, c.Pos = c.Pos, target
	} else {
		c.Pos = target
	}

	st.appendLog(c.ID, "switched position")
	return nil
}

func (st *CombatState) combatantAt(side Side, pos Position) *Combatant {
	for _, id := range st.Order {
		c := st.Combatants[id]
		if c.Side == side && c.Pos == pos {
			return c
		}
	}
	return nil
}
