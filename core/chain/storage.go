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

import "encoding/binary"

// KeyValueWriter is the on-disk collaborator the block loop commits
// through. Any backend satisfying it — a production key/value store, a
// bolt/pebble wrapper, or an in-memory map in tests — plugs in without the
// loop knowing the difference.
type KeyValueWriter interface {
	Put(key, value []byte) error
}

const (
	keyGlobalState  = "global_state"
	blockKeyPrefix  = "block:"
	blockHashPrefix = "block_by_hash:"
)

// blockKey returns the reserved key a block at height is persisted under:
// "block:" followed by the height as a big-endian u64.
func blockKey(height uint64) []byte {
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], height)
	return append([]byte(blockKeyPrefix), h[:]...)
}

func blockHashKey(hash []byte) []byte {
	return append([]byte(blockHashPrefix), hash...)
}

// MemoryStore is a minimal in-process KeyValueWriter, useful for tests and
// single-node deployments that have not wired a real backend.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Put(key, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[string(key)] = cp
	return nil
}

func (m *MemoryStore) Get(key []byte) ([]byte, bool) {
	v, ok := m.data[string(key)]
	return v, ok
}
