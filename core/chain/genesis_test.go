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

import "testing"

func TestNewGenesisStateSeedsValidatorsWithoutQuorum(t *testing.T) {
	gs := NewGenesisState([]GenesisValidator{
		{PubKey: []byte{1, 2, 3}, Stake: 1000, Power: 10, IsGreen: true},
		{PubKey: []byte{4, 5, 6}, Stake: 500, Power: 5, IsGreen: false},
	})

	if len(gs.Validators) != 2 {
		t.Fatalf("want 2 validators, got %d", len(gs.Validators))
	}
	if gs.Validators[0].Stake != 1000 || !gs.Validators[0].IsGreen {
		t.Fatalf("unexpected validator[0]: %+v", gs.Validators[0])
	}
	if gs.Validators[1].Power != 5 || gs.Validators[1].IsGreen {
		t.Fatalf("unexpected validator[1]: %+v", gs.Validators[1])
	}
}

func TestNewGenesisStateEmptyValidatorSet(t *testing.T) {
	gs := NewGenesisState(nil)
	if len(gs.Validators) != 0 {
		t.Fatalf("want 0 validators, got %d", len(gs.Validators))
	}
	if gs.Accounts == nil || gs.OraclePrices == nil {
		t.Fatalf("NewGenesisState must still initialize GlobalState's maps")
	}
}
