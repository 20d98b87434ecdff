// Copyright 2024 The Lumina Authors
// This file is part of the lumina library.
//
// The lumina library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lumina library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lumina library. If not, see <http://www.gnu.org/licenses/>.

package state

import (
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/params"
)

// ComputeHealthIndex combines peg deviation, coverage ratio, breaker state,
// and green-validator fraction into a single [0, 10000] scalar. Every
// component is scored in basis points first so the weighted sum stays
// integer throughout; the float ratios (ReserveRatio and the pool coverage
// ratio) are only read and clamped to basis points, never accumulated into.
func ComputeHealthIndex(gs *types.GlobalState) uint64 {
	pegBPS := bpsClamp(gs.ReserveRatio)
	coverageBPS := coverageScore(gs)
	breakerBPS := uint64(0)
	if !gs.CircuitBreakerActive {
		breakerBPS = params.HealthIndexMax
	}
	greenBPS := greenValidatorScore(gs)

	weighted := pegBPS*params.HealthWeightPegBPS +
		coverageBPS*params.HealthWeightCoverageBPS +
		breakerBPS*params.HealthWeightBreakerBPS +
		greenBPS*params.HealthWeightGreenBPS

	index := weighted / params.HealthIndexMax
	if index > params.HealthIndexMax {
		index = params.HealthIndexMax
	}
	gs.HealthIndex = index
	return index
}

// bpsClamp maps a ratio (nominally centered on 1.0) into [0, HealthIndexMax]
// basis points, saturating at the peg rather than overshooting past it.
func bpsClamp(ratio float64) uint64 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1.0 {
		return params.HealthIndexMax
	}
	return uint64(ratio * float64(params.HealthIndexMax))
}

func coverageScore(gs *types.GlobalState) uint64 {
	if gs.TotalLUSDSupply == 0 {
		return params.HealthIndexMax
	}
	coverage := float64(gs.StabilizationPoolBalance) / float64(gs.TotalLUSDSupply)
	return bpsClamp(coverage)
}

func greenValidatorScore(gs *types.GlobalState) uint64 {
	if len(gs.Validators) == 0 {
		return 0
	}
	green := 0
	for _, v := range gs.Validators {
		if v.IsGreen {
			green++
		}
	}
	return uint64(green) * params.HealthIndexMax / uint64(len(gs.Validators))
}
