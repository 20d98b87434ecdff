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

// MarshalBinary serializes a using the same fixed-width, length-prefixed
// scheme as transactions, so it can be stored as a trie leaf value for
// state-root computation.
func (a *AccountState) MarshalBinary() []byte {
	e := newEncoder()
	e.writeU64(a.Nonce)
	e.writeU64(a.LUSDBalance)
	e.writeU64(a.LJUNBalance)
	e.writeU64(a.LuminaBalance)
	e.writeBytes(a.PasskeyDeviceKey)
	e.writeU64(uint64(len(a.Guardians)))
	for _, g := range a.Guardians {
		e.writeFixed(g[:])
	}
	e.writeBytes(a.PQPubKey)
	e.writeU16(a.CreditScore)
	e.writeU64(a.EpochTxVolume)
	e.writeU64(a.LastRewardEpoch)
	e.writeU64(uint64(len(a.ActiveStreams)))
	for _, s := range a.ActiveStreams {
		e.writeFixed(s.Recipient[:])
		e.writeU64(s.RatePerBlock)
		e.writeU64(s.StartHeight)
		e.writeU64(s.EndHeight)
	}
	e.writeU64(uint64(len(a.YieldPositions)))
	for _, y := range a.YieldPositions {
		e.writeU64(y.ID)
		e.writeU64(y.Principal)
		e.writeU64(y.IssuedHeight)
		e.writeU64(y.MaturityHeight)
	}
	return e.bytes()
}

// UnmarshalAccountState is the inverse of MarshalBinary.
func UnmarshalAccountState(data []byte) (*AccountState, error) {
	d := newDecoder(data)
	a := &AccountState{}
	var err error
	if a.Nonce, err = d.readU64(); err != nil {
		return nil, err
	}
	if a.LUSDBalance, err = d.readU64(); err != nil {
		return nil, err
	}
	if a.LJUNBalance, err = d.readU64(); err != nil {
		return nil, err
	}
	if a.LuminaBalance, err = d.readU64(); err != nil {
		return nil, err
	}
	if a.PasskeyDeviceKey, err = d.readBytes(); err != nil {
		return nil, err
	}
	nGuardians, err := d.readU64()
	if err != nil {
		return nil, err
	}
	a.Guardians = make([]common.Address, nGuardians)
	for i := range a.Guardians {
		b, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		a.Guardians[i] = common.BytesToAddress(b)
	}
	if a.PQPubKey, err = d.readBytes(); err != nil {
		return nil, err
	}
	if a.CreditScore, err = d.readU16(); err != nil {
		return nil, err
	}
	if a.EpochTxVolume, err = d.readU64(); err != nil {
		return nil, err
	}
	if a.LastRewardEpoch, err = d.readU64(); err != nil {
		return nil, err
	}
	nStreams, err := d.readU64()
	if err != nil {
		return nil, err
	}
	a.ActiveStreams = make([]StreamState, nStreams)
	for i := range a.ActiveStreams {
		recipient, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		rate, err := d.readU64()
		if err != nil {
			return nil, err
		}
		start, err := d.readU64()
		if err != nil {
			return nil, err
		}
		end, err := d.readU64()
		if err != nil {
			return nil, err
		}
		a.ActiveStreams[i] = StreamState{Recipient: common.BytesToAddress(recipient), RatePerBlock: rate, StartHeight: start, EndHeight: end}
	}
	nPositions, err := d.readU64()
	if err != nil {
		return nil, err
	}
	a.YieldPositions = make([]YieldPosition, nPositions)
	for i := range a.YieldPositions {
		id, err := d.readU64()
		if err != nil {
			return nil, err
		}
		principal, err := d.readU64()
		if err != nil {
			return nil, err
		}
		issued, err := d.readU64()
		if err != nil {
			return nil, err
		}
		maturity, err := d.readU64()
		if err != nil {
			return nil, err
		}
		a.YieldPositions[i] = YieldPosition{ID: id, Principal: principal, IssuedHeight: issued, MaturityHeight: maturity}
	}
	if !d.done() {
		return nil, NewExecError(ErrMalformedInstruction, "trailing bytes after account state")
	}
	return a, nil
}
