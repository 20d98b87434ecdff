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

import (
	"math"
	"sort"

	"github.com/lumina-chain/lumina/common"
)

// MarshalBinary serializes the entire GlobalState snapshot, the form it is
// persisted under the "global_state" reserved key. Accounts are written in
// ascending address order so the encoding is a pure function of the
// state, not of map iteration order.
func (gs *GlobalState) MarshalBinary() []byte {
	e := newEncoder()

	addrs := gs.SortedAddresses()
	e.writeU64(uint64(len(addrs)))
	for _, addr := range addrs {
		e.writeFixed(addr[:])
		e.writeBytes(gs.Accounts[addr].MarshalBinary())
	}

	e.writeU64(gs.TotalLUSDSupply)
	e.writeU64(gs.TotalLJUNSupply)
	e.writeU64(gs.StabilizationPoolBalance)
	e.writeU64(gs.InsuranceFundBalance)
	e.writeU64(gs.VelocityRewardPool)
	e.writeU64(math.Float64bits(gs.ReserveRatio))

	tickers := make([]string, 0, len(gs.OraclePrices))
	for t := range gs.OraclePrices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	e.writeU64(uint64(len(tickers)))
	for _, t := range tickers {
		e.writeString(t)
		e.writeU64(gs.OraclePrices[t])
	}

	e.writeU64(uint64(len(gs.Validators)))
	for _, v := range gs.Validators {
		e.writeBytes(v.PubKey)
		e.writeU64(v.Stake)
		e.writeU64(v.Power)
		e.writeBool(v.IsGreen)
	}

	e.writeU64(uint64(len(gs.Custodians)))
	for _, c := range gs.Custodians {
		e.writeFixed(c[:])
	}

	rwaKeys := make([]string, 0, len(gs.RWAListings))
	for k := range gs.RWAListings {
		rwaKeys = append(rwaKeys, k)
	}
	sort.Strings(rwaKeys)
	e.writeU64(uint64(len(rwaKeys)))
	for _, k := range rwaKeys {
		e.writeString(k)
		e.writeBytes(gs.RWAListings[k])
	}

	circuitKeys := make([]string, 0, len(gs.ComplianceCircuits))
	for k := range gs.ComplianceCircuits {
		circuitKeys = append(circuitKeys, k)
	}
	sort.Strings(circuitKeys)
	e.writeU64(uint64(len(circuitKeys)))
	for _, k := range circuitKeys {
		e.writeString(k)
		e.writeBytes(gs.ComplianceCircuits[k])
	}

	e.writeBool(gs.CircuitBreakerActive)
	e.writeU64(uint64(len(gs.FairRedeemQueue)))
	for _, r := range gs.FairRedeemQueue {
		e.writeFixed(r.Sender[:])
		e.writeU64(r.Amount)
		e.writeU64(r.Timestamp)
	}

	e.writeU64(gs.CurrentEpoch)
	e.writeU64(gs.HealthIndex)
	e.writeU64(gs.NextYieldTokenID)
	e.writeU64(gs.PendingFlashMints)
	e.writeU64(gs.LastRebalanceHeight)
	e.writeU64(gs.LastReserveRotationHeight)

	return e.bytes()
}

// UnmarshalGlobalState is the inverse of (*GlobalState).MarshalBinary.
func UnmarshalGlobalState(data []byte) (*GlobalState, error) {
	d := newDecoder(data)
	gs := NewGlobalState()

	nAccounts, err := d.readU64()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < nAccounts; i++ {
		addrBytes, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		accBytes, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		acc, err := UnmarshalAccountState(accBytes)
		if err != nil {
			return nil, err
		}
		gs.Accounts[common.BytesToAddress(addrBytes)] = acc
	}

	if gs.TotalLUSDSupply, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.TotalLJUNSupply, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.StabilizationPoolBalance, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.InsuranceFundBalance, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.VelocityRewardPool, err = d.readU64(); err != nil {
		return nil, err
	}
	ratioBits, err := d.readU64()
	if err != nil {
		return nil, err
	}
	gs.ReserveRatio = math.Float64frombits(ratioBits)

	nPrices, err := d.readU64()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < nPrices; i++ {
		ticker, err := d.readString()
		if err != nil {
			return nil, err
		}
		price, err := d.readU64()
		if err != nil {
			return nil, err
		}
		gs.OraclePrices[ticker] = price
	}

	nValidators, err := d.readU64()
	if err != nil {
		return nil, err
	}
	gs.Validators = make([]ValidatorState, nValidators)
	for i := range gs.Validators {
		pub, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		stake, err := d.readU64()
		if err != nil {
			return nil, err
		}
		power, err := d.readU64()
		if err != nil {
			return nil, err
		}
		green, err := d.readBool()
		if err != nil {
			return nil, err
		}
		gs.Validators[i] = ValidatorState{PubKey: pub, Stake: stake, Power: power, IsGreen: green}
	}

	nCustodians, err := d.readU64()
	if err != nil {
		return nil, err
	}
	gs.Custodians = make([]common.Address, nCustodians)
	for i := range gs.Custodians {
		b, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		gs.Custodians[i] = common.BytesToAddress(b)
	}

	nRWA, err := d.readU64()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < nRWA; i++ {
		symbol, err := d.readString()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		gs.RWAListings[symbol] = proof
	}

	nCircuits, err := d.readU64()
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < nCircuits; i++ {
		region, err := d.readString()
		if err != nil {
			return nil, err
		}
		circuit, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		gs.ComplianceCircuits[region] = circuit
	}

	if gs.CircuitBreakerActive, err = d.readBool(); err != nil {
		return nil, err
	}
	nQueue, err := d.readU64()
	if err != nil {
		return nil, err
	}
	gs.FairRedeemQueue = make([]RedemptionRequest, nQueue)
	for i := range gs.FairRedeemQueue {
		sender, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		ts, err := d.readU64()
		if err != nil {
			return nil, err
		}
		gs.FairRedeemQueue[i] = RedemptionRequest{Sender: common.BytesToAddress(sender), Amount: amount, Timestamp: ts}
	}

	if gs.CurrentEpoch, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.HealthIndex, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.NextYieldTokenID, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.PendingFlashMints, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.LastRebalanceHeight, err = d.readU64(); err != nil {
		return nil, err
	}
	if gs.LastReserveRotationHeight, err = d.readU64(); err != nil {
		return nil, err
	}

	if !d.done() {
		return nil, NewExecError(ErrMalformedInstruction, "trailing bytes after global state")
	}
	return gs, nil
}
