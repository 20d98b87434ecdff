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
	"testing"

	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/params"
)

func TestAccrualBPSCapsAt20Percent(t *testing.T) {
	if got := accrualBPS(0); got != 0 {
		t.Fatalf("accrualBPS(0) = %d, want 0", got)
	}
	if got := accrualBPS(params.YieldAccrualCapBPS * 10); got != params.YieldAccrualCapBPS {
		t.Fatalf("accrualBPS should cap at %d, got %d", params.YieldAccrualCapBPS, got)
	}
}

func TestExecWrapToYieldTokenCreatesPosition(t *testing.T) {
	gs := types.NewGlobalState()
	acc := &types.AccountState{LUSDBalance: 1000}
	ins := types.WrapToYieldToken{Amount: 500, MaturityBlocks: 100}

	if err := execWrapToYieldToken(gs, acc, ins, Context{Height: 10}); err != nil {
		t.Fatalf("execWrapToYieldToken: %v", err)
	}
	if acc.LUSDBalance != 500 {
		t.Fatalf("expected 500 debited, got balance %d", acc.LUSDBalance)
	}
	if gs.StabilizationPoolBalance != 500 {
		t.Fatalf("expected pool balance 500, got %d", gs.StabilizationPoolBalance)
	}
	if len(acc.YieldPositions) != 1 {
		t.Fatalf("expected a yield position to be created")
	}
	pos := acc.YieldPositions[0]
	if pos.Principal != 500 || pos.IssuedHeight != 10 || pos.MaturityHeight != 110 {
		t.Fatalf("unexpected yield position: %+v", pos)
	}
}

func TestExecWrapToYieldTokenInsufficientBalance(t *testing.T) {
	gs := types.NewGlobalState()
	acc := &types.AccountState{LUSDBalance: 10}
	err := execWrapToYieldToken(gs, acc, types.WrapToYieldToken{Amount: 100, MaturityBlocks: 1}, Context{})
	if !types.IsKind(err, types.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestExecUnwrapYieldTokenBeforeMaturityRejected(t *testing.T) {
	gs := types.NewGlobalState()
	gs.StabilizationPoolBalance = 1000
	acc := &types.AccountState{YieldPositions: []types.YieldPosition{{ID: 1, Principal: 100, IssuedHeight: 0, MaturityHeight: 100}}}

	err := execUnwrapYieldToken(gs, acc, types.UnwrapYieldToken{TokenID: 1}, Context{Height: 50})
	if !types.IsKind(err, types.ErrNotMatured) {
		t.Fatalf("expected ErrNotMatured, got %v", err)
	}
}

func TestExecUnwrapYieldTokenMissingPosition(t *testing.T) {
	gs := types.NewGlobalState()
	acc := &types.AccountState{}
	err := execUnwrapYieldToken(gs, acc, types.UnwrapYieldToken{TokenID: 99}, Context{Height: 10})
	if !types.IsKind(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExecUnwrapYieldTokenPaysPrincipalPlusYield(t *testing.T) {
	gs := types.NewGlobalState()
	gs.StabilizationPoolBalance = 1000
	acc := &types.AccountState{YieldPositions: []types.YieldPosition{{ID: 1, Principal: 1000, IssuedHeight: 0, MaturityHeight: 100}}}

	if err := execUnwrapYieldToken(gs, acc, types.UnwrapYieldToken{TokenID: 1}, Context{Height: 100}); err != nil {
		t.Fatalf("execUnwrapYieldToken: %v", err)
	}
	wantYield := mulDivBPS(1000, accrualBPS(100), params.BPSDenominator)
	if acc.LUSDBalance != 1000+wantYield {
		t.Fatalf("account balance = %d, want %d", acc.LUSDBalance, 1000+wantYield)
	}
	if len(acc.YieldPositions) != 0 {
		t.Fatalf("expected the yield position to be removed")
	}
}

func TestExecUnwrapYieldTokenClampsToPoolBalance(t *testing.T) {
	gs := types.NewGlobalState()
	gs.StabilizationPoolBalance = 1
	acc := &types.AccountState{YieldPositions: []types.YieldPosition{{ID: 1, Principal: 1000, IssuedHeight: 0, MaturityHeight: 0}}}

	if err := execUnwrapYieldToken(gs, acc, types.UnwrapYieldToken{TokenID: 1}, Context{Height: 100_000}); err != nil {
		t.Fatalf("execUnwrapYieldToken: %v", err)
	}
	if gs.StabilizationPoolBalance != 0 {
		t.Fatalf("expected the pool to be drained to zero, got %d", gs.StabilizationPoolBalance)
	}
	if acc.LUSDBalance != 1001 {
		t.Fatalf("expected principal + clamped yield of 1001, got %d", acc.LUSDBalance)
	}
}

func TestExecDistributeYieldAddsToVelocityPool(t *testing.T) {
	gs := types.NewGlobalState()
	if err := execDistributeYield(gs, types.DistributeYield{TotalYield: 500}); err != nil {
		t.Fatalf("execDistributeYield: %v", err)
	}
	if gs.VelocityRewardPool != 500 {
		t.Fatalf("velocity reward pool = %d, want 500", gs.VelocityRewardPool)
	}
}
