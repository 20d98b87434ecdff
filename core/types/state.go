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

// RedemptionRequest is a deferred RedeemSenior, queued while reserves are
// degraded and destroyed once FairRedeemQueue processes it.
type RedemptionRequest struct {
	Sender    common.Address
	Amount    uint64
	Timestamp uint64
}

// ValidatorState is appended by RegisterValidator and never removed.
type ValidatorState struct {
	PubKey  []byte
	Stake   uint64
	Power   uint64
	IsGreen bool
}

// GlobalState is the single replicated root entity. All mutation to it is
// confined to the executor's single-writer boundary.
type GlobalState struct {
	Accounts map[common.Address]*AccountState

	TotalLUSDSupply           uint64
	TotalLJUNSupply           uint64
	StabilizationPoolBalance  uint64
	InsuranceFundBalance      uint64
	VelocityRewardPool        uint64

	// ReserveRatio is a predicate scalar recomputed on senior mints and
	// redeems (junior-tranche mints and redeems leave it unchanged); it
	// never participates in supply arithmetic.
	ReserveRatio float64

	OraclePrices map[string]uint64

	Validators         []ValidatorState
	Custodians         []common.Address
	RWAListings        map[string][]byte
	ComplianceCircuits map[string][]byte

	CircuitBreakerActive bool
	FairRedeemQueue      []RedemptionRequest

	CurrentEpoch              uint64
	HealthIndex               uint64
	NextYieldTokenID          uint64
	PendingFlashMints         uint64
	LastRebalanceHeight       uint64
	LastReserveRotationHeight uint64
}

// NewGlobalState returns a zero-valued GlobalState with its maps and slices
// initialized, matching the bootstrap state two independent replicas start
// from.
func NewGlobalState() *GlobalState {
	return &GlobalState{
		Accounts:           make(map[common.Address]*AccountState),
		OraclePrices:       make(map[string]uint64),
		RWAListings:        make(map[string][]byte),
		ComplianceCircuits: make(map[string][]byte),
		ReserveRatio:       1.0,
	}
}

// TouchAccount returns the account at addr, materializing a zero-valued one
// on first reference. This replaces a scattered "or default" pattern with
// a single named helper used by every instruction handler.
func (gs *GlobalState) TouchAccount(addr common.Address) *AccountState {
	if acc, ok := gs.Accounts[addr]; ok {
		return acc
	}
	acc := &AccountState{}
	gs.Accounts[addr] = acc
	return acc
}

// SortedAddresses returns the account keys of gs in ascending order, the
// iteration order state-root computation requires.
func (gs *GlobalState) SortedAddresses() []common.Address {
	addrs := make([]common.Address, 0, len(gs.Accounts))
	for a := range gs.Accounts {
		addrs = append(addrs, a)
	}
	return common.SortAddresses(addrs)
}

// Clone returns a deep copy of gs, used by the executor to take a
// shadow-copy snapshot before speculatively applying a transaction.
func (gs *GlobalState) Clone() *GlobalState {
	cp := &GlobalState{
		Accounts:                 make(map[common.Address]*AccountState, len(gs.Accounts)),
		TotalLUSDSupply:          gs.TotalLUSDSupply,
		TotalLJUNSupply:          gs.TotalLJUNSupply,
		StabilizationPoolBalance: gs.StabilizationPoolBalance,
		InsuranceFundBalance:     gs.InsuranceFundBalance,
		VelocityRewardPool:       gs.VelocityRewardPool,
		ReserveRatio:             gs.ReserveRatio,
		OraclePrices:             make(map[string]uint64, len(gs.OraclePrices)),
		Validators:               append([]ValidatorState(nil), gs.Validators...),
		Custodians:               append([]common.Address(nil), gs.Custodians...),
		RWAListings:              make(map[string][]byte, len(gs.RWAListings)),
		ComplianceCircuits:       make(map[string][]byte, len(gs.ComplianceCircuits)),
		CircuitBreakerActive:     gs.CircuitBreakerActive,
		FairRedeemQueue:          append([]RedemptionRequest(nil), gs.FairRedeemQueue...),
		CurrentEpoch:              gs.CurrentEpoch,
		HealthIndex:               gs.HealthIndex,
		NextYieldTokenID:          gs.NextYieldTokenID,
		PendingFlashMints:         gs.PendingFlashMints,
		LastRebalanceHeight:       gs.LastRebalanceHeight,
		LastReserveRotationHeight: gs.LastReserveRotationHeight,
	}
	for addr, acc := range gs.Accounts {
		cp.Accounts[addr] = acc.Clone()
	}
	for k, v := range gs.OraclePrices {
		cp.OraclePrices[k] = v
	}
	for k, v := range gs.RWAListings {
		cp.RWAListings[k] = common.CopyBytes(v)
	}
	for k, v := range gs.ComplianceCircuits {
		cp.ComplianceCircuits[k] = common.CopyBytes(v)
	}
	return cp
}
