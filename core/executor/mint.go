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
	"github.com/holiman/uint256"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/state"
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/crypto"
	"github.com/lumina-chain/lumina/params"
)

// mulDivBPS computes floor(amount * bps / denom) without overflowing a
// native uint64 intermediate, the same concern geth's uint256 package
// exists to address for EVM fixed-point math.
func mulDivBPS(amount, bps, denom uint64) uint64 {
	v := uint256.NewInt(amount)
	v.Mul(v, uint256.NewInt(bps))
	v.Div(v, uint256.NewInt(denom))
	return v.Uint64()
}

func execMintSenior(gs *types.GlobalState, acc *types.AccountState, ins types.MintSenior) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	if !crypto.VerifyPoR(ins.Collateral, ins.Amount, ins.Proof) {
		return types.NewExecError(types.ErrInvalidProof, "reserve proof")
	}
	fee := mulDivBPS(ins.Amount, params.MintFeeBPS, params.BPSDenominator)
	acc.LUSDBalance += ins.Amount - fee
	gs.InsuranceFundBalance += fee
	gs.TotalLUSDSupply += ins.Amount - fee
	state.RecomputeReserveRatio(gs)
	return nil
}

func execRedeemSenior(gs *types.GlobalState, sender common.Address, acc *types.AccountState, ins types.RedeemSenior, ctx Context) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	if acc.LUSDBalance < ins.Amount {
		return types.NewExecError(types.ErrInsufficientBalance, "")
	}
	acc.LUSDBalance -= ins.Amount
	if state.IsDegraded(gs) {
		gs.FairRedeemQueue = append(gs.FairRedeemQueue, types.RedemptionRequest{
			Sender:    sender,
			Amount:    ins.Amount,
			Timestamp: ctx.Timestamp,
		})
		return nil
	}
	gs.TotalLUSDSupply -= ins.Amount
	state.RecomputeReserveRatio(gs)
	return nil
}

func execMintJunior(gs *types.GlobalState, acc *types.AccountState, ins types.MintJunior) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	acc.LJUNBalance += ins.Amount
	gs.TotalLJUNSupply += ins.Amount
	return nil
}

func execRedeemJunior(gs *types.GlobalState, acc *types.AccountState, ins types.RedeemJunior) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	if acc.LJUNBalance < ins.Amount {
		return types.NewExecError(types.ErrInsufficientBalance, "")
	}
	acc.LJUNBalance -= ins.Amount
	gs.TotalLJUNSupply -= ins.Amount
	return nil
}

func execTransfer(gs *types.GlobalState, acc *types.AccountState, ins types.Transfer) error {
	if ins.Amount == 0 {
		return types.NewExecError(types.ErrMalformedInstruction, "zero amount")
	}
	recipient := gs.TouchAccount(ins.To)
	switch ins.Asset {
	case types.AssetLUSD:
		if acc.LUSDBalance < ins.Amount {
			return types.NewExecError(types.ErrInsufficientBalance, "")
		}
		acc.LUSDBalance -= ins.Amount
		recipient.LUSDBalance += ins.Amount
	case types.AssetLJUN:
		if acc.LJUNBalance < ins.Amount {
			return types.NewExecError(types.ErrInsufficientBalance, "")
		}
		acc.LJUNBalance -= ins.Amount
		recipient.LJUNBalance += ins.Amount
	case types.AssetLumina:
		if acc.LuminaBalance < ins.Amount {
			return types.NewExecError(types.ErrInsufficientBalance, "")
		}
		acc.LuminaBalance -= ins.Amount
		recipient.LuminaBalance += ins.Amount
	default:
		return types.NewExecError(types.ErrMalformedInstruction, "unknown asset")
	}
	return nil
}
