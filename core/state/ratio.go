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

// Package state holds the stability subsystem that sits above the plain
// account ledger in core/types: reserve-ratio recomputation, the circuit
// breaker gate, the health index, and the authenticated state root.
package state

import (
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/log"
	"github.com/lumina-chain/lumina/params"
)

// RecomputeReserveRatio derives GlobalState.ReserveRatio from the oracle
// price and pool coverage and trips the circuit breaker if the result
// falls below the configured threshold.
func RecomputeReserveRatio(gs *types.GlobalState) {
	if gs.TotalLUSDSupply == 0 {
		gs.ReserveRatio = 1.0
		return
	}
	price := float64(gs.OraclePrices[params.ReservePriceTicker]) / float64(params.PegScale)
	coverage := float64(gs.StabilizationPoolBalance) / float64(gs.TotalLUSDSupply)
	gs.ReserveRatio = price + coverage

	if gs.ReserveRatio < params.BreakerTripRatio && !gs.CircuitBreakerActive {
		log.Warn("circuit breaker tripped", "reserveRatio", gs.ReserveRatio, "threshold", params.BreakerTripRatio)
		gs.CircuitBreakerActive = true
	}
}

// IsDegraded reports whether reserves are low enough that RedeemSenior
// must queue rather than burn immediately: either the breaker is already
// tripped, or reserve_ratio has fallen below the fair-queue threshold.
func IsDegraded(gs *types.GlobalState) bool {
	return gs.CircuitBreakerActive || gs.ReserveRatio < params.FairQueueRatio
}
