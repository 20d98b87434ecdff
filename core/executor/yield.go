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
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/params"
)

func execWrapToYieldToken(gs *types.GlobalState, acc *types.AccountState, ins types.WrapToYieldToken, ctx Context) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	if acc.LUSDBalance < ins.Amount {
		return types.NewExecError(types.ErrInsufficientBalance, "")
	}
	acc.LUSDBalance -= ins.Amount
	gs.StabilizationPoolBalance += ins.Amount

	id := gs.NextYieldTokenID
	gs.NextYieldTokenID++
	acc.YieldPositions = append(acc.YieldPositions, types.YieldPosition{
		ID:             id,
		Principal:      ins.Amount,
		IssuedHeight:   ctx.Height,
		MaturityHeight: ctx.Height + ins.MaturityBlocks,
	})
	return nil
}

// accrualBPS is the linear-with-cap curve UnwrapYieldToken prices a
// position's yield at.
func accrualBPS(elapsed uint64) uint64 {
	bps := elapsed * params.YieldAccrualBPSPerBlock
	if bps > params.YieldAccrualCapBPS {
		bps = params.YieldAccrualCapBPS
	}
	return bps
}

func execUnwrapYieldToken(gs *types.GlobalState, acc *types.AccountState, ins types.UnwrapYieldToken, ctx Context) error {
	idx := acc.FindYieldPosition(ins.TokenID)
	if idx < 0 {
		return types.NewExecError(types.ErrNotFound, "yield position")
	}
	pos := acc.YieldPositions[idx]
	if ctx.Height < pos.MaturityHeight {
		return types.NewExecError(types.ErrNotMatured, "")
	}

	elapsed := ctx.Height - pos.IssuedHeight
	yield := mulDivBPS(pos.Principal, accrualBPS(elapsed), params.BPSDenominator)
	if yield > gs.StabilizationPoolBalance {
		yield = gs.StabilizationPoolBalance
	}

	gs.StabilizationPoolBalance -= yield
	acc.LUSDBalance += pos.Principal + yield
	acc.RemoveYieldPosition(idx)
	return nil
}

// execDistributeYield takes the simplest implementation named for this
// instruction: route the distributed total into the velocity reward pool
// rather than fanning it out per holder.
func execDistributeYield(gs *types.GlobalState, ins types.DistributeYield) error {
	gs.VelocityRewardPool += ins.TotalYield
	return nil
}
