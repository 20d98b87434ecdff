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
	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/params"
)

// GuardianSignature pairs a guardian address with its signature over a
// RecoverAccountKey's proposed NewDeviceKey bytes. Guardians sign with their ordinary
// account key (ed25519), the same as any transaction sender — there is no
// separate guardian key type.
type GuardianSignature struct {
	Guardian  common.Address
	Signature []byte
}

// VerifyGuardianQuorum checks that more than
// params.GuardianQuorumNumerator/Denominator of the account's registered
// guardians (a strict majority) produced a valid signature over message.
func VerifyGuardianQuorum(guardians []common.Address, sigs []GuardianSignature, message []byte) bool {
	if len(guardians) == 0 {
		return false
	}
	registered := make(map[common.Address]bool, len(guardians))
	for _, g := range guardians {
		registered[g] = true
	}
	approved := make(map[common.Address]bool, len(sigs))
	for _, s := range sigs {
		if !registered[s.Guardian] || approved[s.Guardian] {
			continue
		}
		if Verify(s.Guardian, message, s.Signature) {
			approved[s.Guardian] = true
		}
	}
	return len(approved)*params.GuardianQuorumDenominator > len(guardians)*params.GuardianQuorumNumerator
}
