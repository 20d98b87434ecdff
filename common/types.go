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

// Package common holds the primitive value types shared across the ledger
// core: 32-byte addresses (signature public keys) and 32-byte content
// hashes. They are distinct types so the compiler keeps "an account key"
// and "a digest" from being interchanged even though both are 32 bytes on
// the wire.
package common

import (
	"encoding/hex"
	"fmt"
	"sort"
)

const (
	AddressLength = 32
	HashLength    = 32
)

// Address is a 32-byte Edwards-curve public key identifying an account.
type Address [AddressLength]byte

// Hash is a 32-byte BLAKE3 digest.
type Hash [HashLength]byte

func BytesToAddress(b []byte) Address {
	var a Address
	copyRight(a[:], b)
	return a
}

func BytesToHash(b []byte) Hash {
	var h Hash
	copyRight(h[:], b)
	return h
}

// copyRight right-aligns src into dst, truncating or zero-padding on the left
// as needed.
func copyRight(dst, src []byte) {
	if len(src) > len(dst) {
		src = src[len(src)-len(dst):]
	}
	copy(dst[len(dst)-len(src):], src)
}

func (a Address) Bytes() []byte { return a[:] }
func (h Hash) Bytes() []byte    { return h[:] }

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }
func (h Hash) Hex() string    { return "0x" + hex.EncodeToString(h[:]) }

func (a Address) String() string { return a.Hex() }
func (h Hash) String() string    { return h.Hex() }

func (a Address) IsZero() bool { return a == Address{} }
func (h Hash) IsZero() bool    { return h == Hash{} }

// Cmp provides a total order over addresses so accounts can be iterated in
// ascending key order for state-root determinism.
func (a Address) Cmp(b Address) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (h Hash) Cmp(o Hash) int {
	for i := range h {
		if h[i] != o[i] {
			if h[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SortAddresses returns addrs sorted in ascending key order, leaving the
// input slice untouched.
func SortAddresses(addrs []Address) []Address {
	out := make([]Address, len(addrs))
	copy(out, addrs)
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

func HexToAddress(s string) Address { return BytesToAddress(fromHex(s)) }
func HexToHash(s string) Hash       { return BytesToHash(fromHex(s)) }

func fromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("common: invalid hex string %q: %v", s, err))
	}
	return b
}

// CopyBytes returns an independent copy of b.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
