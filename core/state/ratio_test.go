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
	"testing"

	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/params"
)

func TestRecomputeReserveRatioZeroSupply(t *testing.T) {
	gs := types.NewGlobalState()
	RecomputeReserveRatio(gs)
	if gs.ReserveRatio != 1.0 {
		t.Fatalf("expected a reserve ratio of 1.0 with zero supply, got %f", gs.ReserveRatio)
	}
	if gs.CircuitBreakerActive {
		t.Fatalf("breaker should not trip with no supply outstanding")
	}
}

func TestRecomputeReserveRatioTripsBreaker(t *testing.T) {
	gs := types.NewGlobalState()
	gs.TotalLUSDSupply = 1000
	gs.StabilizationPoolBalance = 0
	gs.OraclePrices[params.ReservePriceTicker] = 0

	RecomputeReserveRatio(gs)
	if !gs.CircuitBreakerActive {
		t.Fatalf("expected the breaker to trip when reserve ratio falls below threshold")
	}
}

func TestRecomputeReserveRatioHealthyDoesNotTrip(t *testing.T) {
	gs := types.NewGlobalState()
	gs.TotalLUSDSupply = 1000
	gs.StabilizationPoolBalance = 1000
	gs.OraclePrices[params.ReservePriceTicker] = params.PegScale

	RecomputeReserveRatio(gs)
	if gs.CircuitBreakerActive {
		t.Fatalf("breaker tripped despite full coverage at peg")
	}
	if gs.ReserveRatio < params.BreakerTripRatio {
		t.Fatalf("expected a healthy ratio, got %f", gs.ReserveRatio)
	}
}

func TestIsDegraded(t *testing.T) {
	gs := types.NewGlobalState()
	gs.ReserveRatio = 1.0
	if IsDegraded(gs) {
		t.Fatalf("a fully healthy, non-tripped state should not be degraded")
	}

	gs.CircuitBreakerActive = true
	if !IsDegraded(gs) {
		t.Fatalf("an active breaker must count as degraded")
	}

	gs.CircuitBreakerActive = false
	gs.ReserveRatio = params.FairQueueRatio - 0.01
	if !IsDegraded(gs) {
		t.Fatalf("a ratio below the fair-queue threshold must count as degraded")
	}
}
