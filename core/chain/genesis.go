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

package chain

import "github.com/lumina-chain/lumina/core/types"

// GenesisValidator seeds one entry of Validators at chain start. Unlike
// every later validator addition, genesis entries never pass through a
// governance-quorum check: there is no quorum to check against until at
// least one validator already exists.
type GenesisValidator struct {
	PubKey  []byte
	Stake   uint64
	Power   uint64
	IsGreen bool
}

// NewGenesisState returns a GlobalState with validators seeded directly,
// bypassing RegisterValidator and the governance quorum it enforces. This
// is the only path that writes to Validators outside the executor's
// single-writer boundary, and it must run before Loop.Run starts: once the
// chain is live, every validator-set change goes through a transaction.
func NewGenesisState(validators []GenesisValidator) *types.GlobalState {
	gs := types.NewGlobalState()
	gs.Validators = make([]types.ValidatorState, len(validators))
	for i, v := range validators {
		gs.Validators[i] = types.ValidatorState{
			PubKey:  v.PubKey,
			Stake:   v.Stake,
			Power:   v.Power,
			IsGreen: v.IsGreen,
		}
	}
	return gs
}
