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

// ZK proof generation lives outside the core; these functions are the
// verifier side only, each taking opaque proof/context bytes and returning
// a bool, never an error that leaks proof-internal structure.
//
// The real verification circuits (proof-of-reserve, range proofs,
// confidential-transfer validity, compliance attestations, RWA listing
// attestations) are external collaborators; these stubs implement the
// boolean-oracle contract so the executor can be built and tested against
// it today.

// VerifyPoR checks a proof-of-reserve bundle attached to a senior mint.
func VerifyPoR(collateral uint64, amount uint64, proof []byte) bool {
	return len(proof) > 0 && collateral >= amount
}

// VerifyRange checks a bulletproofs-style range proof bounding a hidden
// amount. No executor path calls it; ConfidentialTransfer checks
// VerifyConfidential only.
func VerifyRange(commitment, proof []byte) bool {
	return len(commitment) > 0 && len(proof) > 0
}

// VerifyConfidential checks a confidential-transfer validity proof.
func VerifyConfidential(commitment, proof []byte) bool {
	return len(commitment) > 0 && len(proof) > 0
}

// VerifyCompliance checks a jurisdiction/compliance-circuit attestation.
func VerifyCompliance(circuitID []byte, proof []byte) bool {
	return len(circuitID) > 0 && len(proof) > 0
}

// VerifyRWA checks a real-world-asset listing attestation.
func VerifyRWA(symbol string, proof []byte) bool {
	return symbol != "" && len(proof) > 0
}
