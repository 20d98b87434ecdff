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
	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/state"
	"github.com/lumina-chain/lumina/core/types"
)

// Context carries the prospective block's height and timestamp into a
// transaction's execution.
type Context struct {
	Height    uint64
	Timestamp uint64
}

// breakerAllowlist is the set of instruction tags permitted to execute
// while circuit_breaker_active is set.
var breakerAllowlist = map[byte]bool{
	types.TagRunCircuitBreaker: true,
	types.TagFairRedeemQueue:   true,
	types.TagTriggerStabilizer: true,
	types.TagRedeemSenior:      true, // administrative redemption: enqueues instead of burning
}

// ExecuteTransaction applies tx to gs in a fixed five-step order: auth,
// nonce, breaker gate, dispatch, commit. On any error gs is left
// byte-for-byte unchanged: every mutation happens on a clone that is only
// swapped in on success.
func ExecuteTransaction(gs *types.GlobalState, tx *types.SignedTransaction, ctx Context) error {
	unsigned := &tx.Unsigned

	// Step 1: auth.
	if !cachedVerifySignature(tx.Hash(), tx.VerifySignature) {
		return types.NewExecError(types.ErrInvalidSignature, "")
	}

	shadow := gs.Clone()
	acc := shadow.TouchAccount(unsigned.Sender)

	// Step 2: nonce. Equality subsumes the 0==0 bootstrap case for a
	// freshly touched account.
	if unsigned.Nonce != acc.Nonce {
		return types.NewExecError(types.ErrInvalidNonce, "")
	}

	// Step 3: breaker gate.
	if shadow.CircuitBreakerActive && !breakerAllowlist[unsigned.Instruction.Tag()] {
		return types.NewExecError(types.ErrBreakerActive, "")
	}

	// Step 4: dispatch.
	if err := dispatch(shadow, unsigned.Sender, acc, unsigned.Instruction, ctx); err != nil {
		return err
	}
	acc.Nonce++

	// Step 5: commit. Everything above mutated only shadow; this is the
	// single point where gs becomes observable in its new form.
	*gs = *shadow
	return nil
}

func dispatch(gs *types.GlobalState, sender common.Address, acc *types.AccountState, instr types.Instruction, ctx Context) error {
	switch ins := instr.(type) {
	case types.MintSenior:
		return execMintSenior(gs, acc, ins)
	case types.RedeemSenior:
		return execRedeemSenior(gs, sender, acc, ins, ctx)
	case types.MintJunior:
		return execMintJunior(gs, acc, ins)
	case types.RedeemJunior:
		return execRedeemJunior(gs, acc, ins)
	case types.Transfer:
		return execTransfer(gs, acc, ins)
	case types.TriggerStabilizer:
		return execTriggerStabilizer(gs)
	case types.RunCircuitBreaker:
		return execRunCircuitBreaker(gs, ins)
	case types.FairRedeemQueue:
		return execFairRedeemQueue(gs, ins)
	case types.UpdateOracle:
		return execUpdateOracle(gs, ins)
	case types.RegisterValidator:
		return execRegisterValidator(gs, ins)
	case types.ConfidentialTransfer:
		return execConfidentialTransfer(acc, ins)
	case types.WrapToYieldToken:
		return execWrapToYieldToken(gs, acc, ins, ctx)
	case types.UnwrapYieldToken:
		return execUnwrapYieldToken(gs, acc, ins, ctx)
	case types.ComputeHealthIndex:
		state.ComputeHealthIndex(gs)
		return nil
	case types.CreatePasskeyAccount:
		return execCreatePasskeyAccount(acc, ins)
	case types.InstantFiatBridge:
		return execInstantFiatBridge(gs, acc, ins)
	case types.DistributeYield:
		return execDistributeYield(gs, ins)
	case types.RegisterAsset:
		return execRegisterAsset(gs, ins)
	case types.MultiJurisdictionalCheck:
		return execComplianceCheck(gs, ins)
	case types.RecoverAccountKey:
		return execRecoverAccountKey(acc, ins)
	case types.StreamPayment:
		return execStreamPayment(acc, ins, ctx)
	case types.ZkTaxAttest, types.ZeroSlipBatchMatch, types.GeoRebalance, types.VelocityIncentive, types.DynamicHedge:
		// Reserved NOP-tier instructions: advance the nonce (handled by the
		// caller) and otherwise do nothing.
		return nil
	default:
		return types.NewExecError(types.ErrMalformedInstruction, "unhandled instruction variant")
	}
}
