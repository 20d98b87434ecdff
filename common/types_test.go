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

package common

import "testing"

func TestBytesToAddressPadsAndTruncates(t *testing.T) {
	short := BytesToAddress([]byte{1, 2, 3})
	if short[AddressLength-1] != 3 || short[0] != 0 {
		t.Fatalf("expected left-padded address, got %x", short)
	}

	long := make([]byte, AddressLength+4)
	for i := range long {
		long[i] = byte(i)
	}
	truncated := BytesToAddress(long)
	if truncated[0] != long[4] {
		t.Fatalf("expected right-aligned truncation, got %x", truncated)
	}
}

func TestAddressHexRoundTrip(t *testing.T) {
	a := BytesToAddress([]byte{0xde, 0xad, 0xbe, 0xef})
	if got := HexToAddress(a.Hex()); got != a {
		t.Fatalf("hex round trip mismatch: got %x, want %x", got, a)
	}
}

func TestSortAddressesLeavesInputUntouched(t *testing.T) {
	a := BytesToAddress([]byte{3})
	b := BytesToAddress([]byte{1})
	c := BytesToAddress([]byte{2})
	in := []Address{a, b, c}

	out := SortAddresses(in)
	if in[0] != a || in[1] != b || in[2] != c {
		t.Fatalf("SortAddresses mutated its input")
	}
	if out[0] != b || out[1] != c || out[2] != a {
		t.Fatalf("unexpected order: %v", out)
	}
}

func TestIsZero(t *testing.T) {
	if !(Address{}).IsZero() {
		t.Fatalf("zero address reported non-zero")
	}
	if (BytesToAddress([]byte{1})).IsZero() {
		t.Fatalf("non-zero address reported zero")
	}
}
