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
	"encoding/binary"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/types"
)

// Reserved keys for the ancillary scalars that ride alongside the accounts
// mapping in the state trie. Each is a 32-byte key distinct from any
// possible account address: the 0xff byte followed by a short tag, which
// no 32-byte ed25519 public key is required to avoid but which in
// practice never collides given the keyspace size.
var (
	keyTotalLUSDSupply          = reservedKey("total_lusd_supply")
	keyTotalLJUNSupply          = reservedKey("total_ljun_supply")
	keyStabilizationPoolBalance = reservedKey("stabilization_pool_balance")
	keyInsuranceFundBalance     = reservedKey("insurance_fund_balance")
	keyVelocityRewardPool       = reservedKey("velocity_reward_pool")
	keyCircuitBreakerActive     = reservedKey("circuit_breaker_active")
	keyCurrentEpoch             = reservedKey("current_epoch")
	keyHealthIndex              = reservedKey("health_index")
	keyNextYieldTokenID         = reservedKey("next_yield_token_id")
)

func reservedKey(tag string) [32]byte {
	var k [32]byte
	k[0] = 0xff
	copy(k[1:], tag)
	return k
}

// Root computes the MPT root over gs.accounts plus the ancillary scalars,
// the same trie construction used for a block's transactions root.
func Root(gs *types.GlobalState) common.Hash {
	entries := make(map[string][]byte, len(gs.Accounts)+8)
	for addr, acc := range gs.Accounts {
		entries[string(addr[:])] = acc.MarshalBinary()
	}

	var u64Buf [8]byte
	putU64 := func(key [32]byte, v uint64) {
		binary.LittleEndian.PutUint64(u64Buf[:], v)
		entries[string(key[:])] = append([]byte(nil), u64Buf[:]...)
	}
	putU64(keyTotalLUSDSupply, gs.TotalLUSDSupply)
	putU64(keyTotalLJUNSupply, gs.TotalLJUNSupply)
	putU64(keyStabilizationPoolBalance, gs.StabilizationPoolBalance)
	putU64(keyInsuranceFundBalance, gs.InsuranceFundBalance)
	putU64(keyVelocityRewardPool, gs.VelocityRewardPool)
	putU64(keyCurrentEpoch, gs.CurrentEpoch)
	putU64(keyHealthIndex, gs.HealthIndex)
	putU64(keyNextYieldTokenID, gs.NextYieldTokenID)

	breakerByte := byte(0)
	if gs.CircuitBreakerActive {
		breakerByte = 1
	}
	entries[string(keyCircuitBreakerActive[:])] = []byte{breakerByte}

	return types.TrieRoot(entries)
}
