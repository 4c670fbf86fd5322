// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"fmt"

	"github.com/kestrelforge/combatcore/content"
	"github.com/kestrelforge/combatcore/rpgerr"
)

// Rejection builders for the "invalid action" error kind (spec §7). These
// never panic; the resolver returns them and leaves state unchanged.

func errCardNotInHand(combatantID, cardInstanceID string) error {
	return rpgerr.NotAllowed("card not in hand",
		rpgerr.WithMeta("combatant_id", combatantID),
		rpgerr.WithMeta("card_instance_id", cardInstanceID),
	)
}

func errInsufficientEnergy(combatantID string, cost, available int) error {
	return rpgerr.ResourceExhausted("insufficient energy",
		rpgerr.WithMeta("combatant_id", combatantID),
		rpgerr.WithMeta("cost", cost),
		rpgerr.WithMeta("available", available),
	)
}

func errNoValidTarget(combatantID string, rng content.Range) error {
	return rpgerr.InvalidTarget("no valid target",
		rpgerr.WithMeta("combatant_id", combatantID),
		rpgerr.WithMeta("range", string(rng)),
	)
}

func errAmbiguousTarget(combatantID string, rng content.Range, candidates int) error {
	return rpgerr.InvalidTarget("target hint required",
		rpgerr.WithMeta("combatant_id", combatantID),
		rpgerr.WithMeta("range", string(rng)),
		rpgerr.WithMeta("candidates", candidates),
	)
}

func errSwitchNotAdjacent(combatantID string) error {
	return rpgerr.NotAllowed("switch target not adjacent",
		rpgerr.WithMeta("combatant_id", combatantID),
	)
}

func errSwitchAlreadyUsed(combatantID string) error {
	return rpgerr.NotAllowed("switch already used this turn",
		rpgerr.WithMeta("combatant_id", combatantID),
	)
}

// errContentNotFound wraps a content lookup miss (spec §7: fatal for the
// current call; the driver is expected to abort the battle).
func errContentNotFound(kind, id string, cause error) error {
	return rpgerr.WrapWithCode(cause, rpgerr.CodeNotFound, fmt.Sprintf("%s %q not found", kind, id))
}

// errInvariantViolation wraps an unrecoverable internal invariant failure
// (spec §7): empty queue while ongoing, current index permanently invalid.
func errInvariantViolation(msg string) error {
	return rpgerr.New(rpgerr.CodeInvalidState, msg)
}
