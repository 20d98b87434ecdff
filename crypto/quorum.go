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

package crypto

import (
	"errors"

	blst "github.com/supranational/blst/bindings/go"
	"github.com/lumina-chain/lumina/params"
)

var bftSignDst = []byte("LUMINA_GOVERNANCE_BLS12381G2_XMD:SHA-256_SSWU_RO_")

var (
	ErrNoSigners       = errors.New("crypto: governance proof carries no signers")
	ErrUnknownSigner   = errors.New("crypto: governance proof references unknown validator index")
	ErrQuorumNotMet    = errors.New("crypto: signing validators do not control enough stake")
	ErrBadAggregate    = errors.New("crypto: could not aggregate validator public keys")
	ErrBadSignature    = errors.New("crypto: aggregate signature does not verify")
)

// GovernanceSigner is the minimal validator view the quorum check needs:
// a compressed BLS12-381 G1 public key and the validator's staked weight.
// It mirrors ValidatorState.{pubkey, stake} without importing core/types,
// keeping crypto dependency-free of the data model.
type GovernanceSigner struct {
	PubKey []byte
	Stake  uint64
}

// GovernanceProof is the payload a governance-gated instruction carries:
// the indices of co-signing validators plus their aggregated signature.
type GovernanceProof struct {
	SignerIndices []uint32
	AggregateSig  []byte
}

// VerifyGovernanceQuorum checks that AggregateSig is a valid BLS
// aggregate signature over message by the validators named in
// SignerIndices, and that those validators together control at least
// params.GovernanceQuorumNumerator/Denominator of total stake.
func VerifyGovernanceQuorum(validators []GovernanceSigner, proof GovernanceProof, message []byte) error {
	if len(proof.SignerIndices) == 0 {
		return ErrNoSigners
	}
	var totalStake, signedStake uint64
	for _, v := range validators {
		totalStake += v.Stake
	}
	pubkeys := make([][]byte, 0, len(proof.SignerIndices))
	seen := make(map[uint32]bool, len(proof.SignerIndices))
	for _, idx := range proof.SignerIndices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if int(idx) >= len(validators) {
			return ErrUnknownSigner
		}
		v := validators[idx]
		pubkeys = append(pubkeys, v.PubKey)
		signedStake += v.Stake
	}
	if totalStake == 0 || signedStake*params.GovernanceQuorumDenominator < totalStake*params.GovernanceQuorumNumerator {
		return ErrQuorumNotMet
	}

	aggPub := new(blst.P1Aggregate)
	if !aggPub.AggregateCompressed(pubkeys, true) {
		return ErrBadAggregate
	}
	affine := aggPub.ToAffine()
	if affine == nil || !affine.KeyValidate() {
		return ErrBadAggregate
	}
	var sig blst.P2Affine
	if !sig.VerifyCompressed(proof.AggregateSig, true, affine.Compress(), true, message, bftSignDst) {
		return ErrBadSignature
	}
	return nil
}
