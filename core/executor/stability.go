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

package executor

import (
	"github.com/lumina-chain/lumina/core/state"
	"github.com/lumina-chain/lumina/core/types"
)

func execTriggerStabilizer(gs *types.GlobalState) error {
	if gs.ReserveRatio >= 1.0 || gs.StabilizationPoolBalance == 0 || gs.TotalLUSDSupply == 0 {
		return nil
	}
	deficit := uint64(float64(gs.TotalLUSDSupply) * (1 - gs.ReserveRatio))
	move := deficit
	if gs.StabilizationPoolBalance < move {
		move = gs.StabilizationPoolBalance
	}
	gs.StabilizationPoolBalance -= move
	gs.ReserveRatio += float64(move) / float64(gs.TotalLUSDSupply)
	return nil
}

func execRunCircuitBreaker(gs *types.GlobalState, ins types.RunCircuitBreaker) error {
	if !ins.Active {
		if err := requireGovernance(gs, ins.Governance, ins.GovernanceMessage()); err != nil {
			return err
		}
	}
	gs.CircuitBreakerActive = ins.Active
	return nil
}

func execFairRedeemQueue(gs *types.GlobalState, ins types.FairRedeemQueue) error {
	if gs.CircuitBreakerActive {
		return types.NewExecError(types.ErrBreakerActive, "")
	}
	n := ins.BatchSize
	if uint64(len(gs.FairRedeemQueue)) < n {
		n = uint64(len(gs.FairRedeemQueue))
	}
	for i := uint64(0); i < n; i++ {
		gs.TotalLUSDSupply -= gs.FairRedeemQueue[i].Amount
	}
	gs.FairRedeemQueue = gs.FairRedeemQueue[n:]
	state.RecomputeReserveRatio(gs)
	return nil
}

func execUpdateOracle(gs *types.GlobalState, ins types.UpdateOracle) error {
	if err := requireGovernance(gs, ins.Governance, ins.GovernanceMessage()); err != nil {
		return err
	}
	gs.OraclePrices[ins.AssetTicker] = ins.Price
	state.RecomputeReserveRatio(gs)
	return nil
}

func execRegisterValidator(gs *types.GlobalState, ins types.RegisterValidator) error {
	if err := requireGovernance(gs, ins.Governance, ins.GovernanceMessage()); err != nil {
		return err
	}
	gs.Validators = append(gs.Validators, types.ValidatorState{
		PubKey:  ins.PubKey,
		Stake:   ins.Stake,
		Power:   ins.Stake,
		IsGreen: false,
	})
	return nil
}
