// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import "github.com/kestrelforge/combatcore/content"

// effectiveness factors (spec §4.1): softened from the classic chart.
const (
	superEffective    = 1.25
	notVeryEffective  = 0.75
	wouldBeImmune     = 0.5
	neutralEffective  = 1.0
	minEffectiveness  = 0.5
	maxEffectiveness  = 1.5
)

// chart[attack][defend] is the per-type-pair factor before dual-typing and
// clamping. Omitted pairs default to neutral (1.0).
var chart = map[content.Type]map[content.Type]float64{
	content.TypeFire: {
		content.TypeGrass: superEffective,
		content.TypeBug:   superEffective,
		content.TypeSteel: superEffective,
		content.TypeWater: notVeryEffective,
		content.TypeFire:  notVeryEffective,
		content.TypeRock:  notVeryEffective,
		content.TypeDragon: notVeryEffective,
	},
	content.TypeWater: {
		content.TypeFire:  superEffective,
		content.TypeGround: superEffective,
		content.TypeRock:  superEffective,
		content.TypeWater: notVeryEffective,
		content.TypeGrass: notVeryEffective,
		content.TypeDragon: notVeryEffective,
	},
	content.TypeGrass: {
		content.TypeWater:  superEffective,
		content.TypeGround: superEffective,
		content.TypeRock:   superEffective,
		content.TypeFire:   notVeryEffective,
		content.TypeGrass:  notVeryEffective,
		content.TypeFlying: notVeryEffective,
		content.TypeBug:    notVeryEffective,
		content.TypeDragon: notVeryEffective,
		content.TypeSteel:  notVeryEffective,
	},
	content.TypeElectric: {
		content.TypeWater:  superEffective,
		content.TypeFlying: superEffective,
		content.TypeGrass:  notVeryEffective,
		content.TypeElectric: notVeryEffective,
		content.TypeDragon: notVeryEffective,
		content.TypeGround: wouldBeImmune,
	},
	content.TypeIce: {
		content.TypeGrass:  superEffective,
		content.TypeGround: superEffective,
		content.TypeFlying: superEffective,
		content.TypeDragon: superEffective,
		content.TypeFire:   notVeryEffective,
		content.TypeWater:  notVeryEffective,
		content.TypeIce:    notVeryEffective,
		content.TypeSteel:  notVeryEffective,
	},
	content.TypeFighting: {
		content.TypeNormal: superEffective,
		content.TypeRock:   superEffective,
		content.TypeSteel:  superEffective,
		content.TypeDark:   superEffective,
		content.TypeIce:    superEffective,
		content.TypeFlying: notVeryEffective,
		content.TypePsychic: notVeryEffective,
		content.TypeBug:    notVeryEffective,
		content.TypePoison: notVeryEffective,
		content.TypeGhost:  wouldBeImmune,
	},
	content.TypePoison: {
		content.TypeGrass:  superEffective,
		content.TypePoison: notVeryEffective,
		content.TypeGround: notVeryEffective,
		content.TypeRock:   notVeryEffective,
		content.TypeGhost:  notVeryEffective,
		content.TypeSteel:  wouldBeImmune,
	},
	content.TypeGround: {
		content.TypeFire:     superEffective,
		content.TypeElectric: superEffective,
		content.TypePoison:   superEffective,
		content.TypeRock:     superEffective,
		content.TypeSteel:    superEffective,
		content.TypeGrass:    notVeryEffective,
		content.TypeBug:      notVeryEffective,
		content.TypeFlying:   wouldBeImmune,
	},
	content.TypeFlying: {
		content.TypeGrass:    superEffective,
		content.TypeFighting: superEffective,
		content.TypeBug:      superEffective,
		content.TypeElectric: notVeryEffective,
		content.TypeRock:     notVeryEffective,
		content.TypeSteel:    notVeryEffective,
	},
	content.TypePsychic: {
		content.TypeFighting: superEffective,
		content.TypePoison:   superEffective,
		content.TypePsychic:  notVeryEffective,
		content.TypeSteel:    notVeryEffective,
		content.TypeDark:     wouldBeImmune,
	},
	content.TypeBug: {
		content.TypeGrass:  superEffective,
		content.TypePsychic: superEffective,
		content.TypeDark:   superEffective,
		content.TypeFire:   notVeryEffective,
		content.TypeFighting: notVeryEffective,
		content.TypePoison: notVeryEffective,
		content.TypeFlying: notVeryEffective,
		content.TypeGhost:  notVeryEffective,
		content.TypeSteel:  notVeryEffective,
	},
	content.TypeRock: {
		content.TypeFire:   superEffective,
		content.TypeIce:    superEffective,
		content.TypeFlying: superEffective,
		content.TypeBug:    superEffective,
		content.TypeFighting: notVeryEffective,
		content.TypeGround:   notVeryEffective,
		content.TypeSteel:    notVeryEffective,
	},
	content.TypeGhost: {
		content.TypeGhost:  superEffective,
		content.TypePsychic: superEffective,
		content.TypeDark:   notVeryEffective,
		content.TypeNormal: wouldBeImmune,
	},
	content.TypeDragon: {
		content.TypeDragon: superEffective,
		content.TypeSteel:  notVeryEffective,
	},
	content.TypeDark: {
		content.TypePsychic: superEffective,
		content.TypeGhost:   superEffective,
		content.TypeFighting: notVeryEffective,
		content.TypeDark:     notVeryEffective,
	},
	content.TypeSteel: {
		content.TypeIce:   superEffective,
		content.TypeRock:  superEffective,
		content.TypeFire:  notVeryEffective,
		content.TypeWater: notVeryEffective,
		content.TypeElectric: notVeryEffective,
		content.TypeSteel:    notVeryEffective,
	},
}

// Effectiveness is the pure type-effectiveness lookup (spec §4.1): dual-type
// defenders multiply both per-type factors together; the result is clamped
// to [0.5, 1.5].
func Effectiveness(attackType content.Type, defenderTypes []content.Type) float64 {
	result := 1.0
	row := chart[attackType]
	for _, dt := range defenderTypes {
		factor := neutralEffective
		if row != nil {
			if f, ok := row[dt]; ok {
				factor = f
			}
		}
		result *= factor
	}
	if result < minEffectiveness {
		return minEffectiveness
	}
	if result > maxEffectiveness {
		return maxEffectiveness
	}
	return result
}
