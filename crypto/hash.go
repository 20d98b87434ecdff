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
	"github.com/zeebo/blake3"
)

// HashBytes returns the BLAKE3-256 digest of data, used uniformly for
// transaction signing pre-images, block headers, and MPT node hashing.
func HashBytes(data []byte) common.Hash {
	sum := blake3.Sum256(data)
	return common.Hash(sum)
}

// Hasher is an incremental BLAKE3 hasher for callers that build up a
// pre-image across several writes (e.g. MPT branch-node children) without
// an intermediate allocation.
type Hasher struct {
	h *blake3.Hasher
}

func NewHasher() *Hasher {
	return &Hasher{h: blake3.New()}
}

func (h *Hasher) Write(p []byte) { h.h.Write(p) }

func (h *Hasher) Sum() common.Hash {
	var out common.Hash
	copy(out[:], h.h.Sum(nil))
	return out
}
