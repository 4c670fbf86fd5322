// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "fmt"

// ErrNotFound is returned by a Source when an id has no matching content.
// The combat engine surfaces this as a content-lookup-miss error (spec §7) -
// it is fatal for the current call, not a recoverable rejection.
type ErrNotFound struct {
	Kind string // "move" or "creature"
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("content: %s %q not found", e.Kind, e.ID)
}

// Source is the read-only content port the combat engine consumes. It is
// never defined by this repository - run/map progression and card drafting
// own the data; combat only ever reads through this interface.
//
//go:generate mockgen -destination=mock/mock_source.go -package=mock_content github.com/kestrelforge/combatcore/content Source
type Source interface {
	// GetMove returns the definition for a card id.
	// Returns *ErrNotFound if the id is unknown.
	GetMove(id string) (MoveDefinition, error)

	// GetCreature returns the definition for a creature id.
	// Returns *ErrNotFound if the id is unknown.
	GetCreature(id string) (CreatureData, error)

	// IsParentalBondCopy reports whether cardID names a card that was
	// generated as a Parental-Bond/Family-Fury copy (spec §4.6) rather
	// than an original deck card. Copies must not themselves copy.
	IsParentalBondCopy(cardID string) bool

	// GetTypeEffectiveness returns the attack-type x defender-types
	// multiplier, already combined and clamped to [0.5, 1.5] (spec §4.1).
	GetTypeEffectiveness(attackType Type, defenderTypes []Type) float64
}
