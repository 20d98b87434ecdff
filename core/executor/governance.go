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
	"github.com/lumina-chain/lumina/crypto"
)

// requireGovernance verifies that proof represents a quorum of gs's
// registered validators over message, gating RunCircuitBreaker{false},
// UpdateOracle, and RegisterValidator.
func requireGovernance(gs *types.GlobalState, proof *types.GovernanceProofWire, message []byte) error {
	if proof == nil {
		return types.NewExecError(types.ErrInvalidProof, "governance proof required")
	}
	signers := make([]crypto.GovernanceSigner, len(gs.Validators))
	for i, v := range gs.Validators {
		signers[i] = crypto.GovernanceSigner{PubKey: v.PubKey, Stake: v.Stake}
	}
	gp := crypto.GovernanceProof{SignerIndices: proof.SignerIndices, AggregateSig: proof.AggregateSig}
	if err := crypto.VerifyGovernanceQuorum(signers, gp, message); err != nil {
		return types.NewExecError(types.ErrInvalidProof, err.Error())
	}
	return nil
}
