// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import "github.com/kestrelforge/combatcore/rng"

// draw moves up to n cards from the draw pile into hand (spec §4.2). When
// the draw pile empties mid-draw, the discard pile is shuffled into a new
// draw pile and drawing continues; if both piles are empty the draw stops
// early. Cards drawn past HandSize are discarded immediately with a log
// line rather than held.
func (st *CombatState) draw(c *Combatant, n int, stream rng.Stream) {
	for i := 0; i < n; i++ {
		if len(c.DrawPile) == 0 {
			if len(c.DiscardPile) == 0 {
				return
			}
			c.DrawPile = c.DiscardPile
			c.DiscardPile = nil
			rng.Shuffle(c.DrawPile, stream)
			st.appendLog(c.ID, "deck exhausted, reshuffled discard pile")
		}

		top := c.DrawPile[0]
		c.DrawPile = c.DrawPile[1:]

		if len(c.Hand) >= c.HandSize {
			c.DiscardPile = append(c.DiscardPile, top)
			st.appendLog(c.ID, "hand full, discarded "+top)
			continue
		}
		c.Hand = append(c.Hand, top)
	}
}

// discardHand moves every card left in hand to the discard pile, used at
// end of turn for any cards the combatant chose not to play.
func (st *CombatState) discardHand(c *Combatant) {
	if len(c.Hand) == 0 {
		return
	}
	c.DiscardPile = append(c.DiscardPile, c.Hand...)
	c.Hand = nil
}

// removeFromHand removes one card instance by value, returning false if it
// was not present. Cards are identified by content id within this engine;
// duplicates in hand are indistinguishable and the first match is removed.
func removeFromHand(c *Combatant, cardID string) bool {
	for i, id := range c.Hand {
		if id == cardID {
			c.Hand = append(c.Hand[:i], c.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// discardOne appends a single card to the discard pile, used when a played
// card resolves (and is not vanished).
func discardOne(c *Combatant, cardID string) {
	c.DiscardPile = append(c.DiscardPile, cardID)
}

// vanishOne appends a single card to the vanished pile (spec §4.7: vanish
// cards do not return to the discard pile and cannot be reshuffled back
// into the draw pile for the rest of the battle).
func vanishOne(c *Combatant, cardID string) {
	c.VanishedPile = append(c.VanishedPile, cardID)
}
