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

package types

import "github.com/lumina-chain/lumina/common"

// StreamState models a single active payment stream created by
// StreamPayment. It is advisory bookkeeping only: no instruction currently
// drains it automatically.
type StreamState struct {
	Recipient    common.Address
	RatePerBlock uint64
	StartHeight  uint64
	EndHeight    uint64
}

// YieldPosition is created by WrapToYieldToken and destroyed by
// UnwrapYieldToken.
type YieldPosition struct {
	ID             uint64
	Principal      uint64
	IssuedHeight   uint64
	MaturityHeight uint64
}

// AccountState is the per-address value stored in GlobalState.accounts.
// It is created on first reference, zero-valued, and never destroyed.
type AccountState struct {
	Nonce uint64

	LUSDBalance   uint64
	LJUNBalance   uint64
	LuminaBalance uint64

	PasskeyDeviceKey []byte
	Guardians        []common.Address
	PQPubKey         []byte

	CreditScore     uint16
	EpochTxVolume   uint64
	LastRewardEpoch uint64

	ActiveStreams  []StreamState
	YieldPositions []YieldPosition
}

// Clone returns a deep copy of a, used by the executor's clone-and-swap
// rollback to snapshot touched accounts before mutating them.
func (a *AccountState) Clone() *AccountState {
	if a == nil {
		return &AccountState{}
	}
	cp := *a
	cp.PasskeyDeviceKey = common.CopyBytes(a.PasskeyDeviceKey)
	cp.PQPubKey = common.CopyBytes(a.PQPubKey)
	cp.Guardians = append([]common.Address(nil), a.Guardians...)
	cp.ActiveStreams = append([]StreamState(nil), a.ActiveStreams...)
	cp.YieldPositions = append([]YieldPosition(nil), a.YieldPositions...)
	return &cp
}

// FindYieldPosition returns the index of the yield position with the given
// id, or -1 if absent.
func (a *AccountState) FindYieldPosition(id uint64) int {
	for i := range a.YieldPositions {
		if a.YieldPositions[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveYieldPosition deletes the position at idx, preserving the order of
// the remaining positions.
func (a *AccountState) RemoveYieldPosition(idx int) {
	a.YieldPositions = append(a.YieldPositions[:idx], a.YieldPositions[idx+1:]...)
}
