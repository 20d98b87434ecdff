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

// encoding.go is the canonical node serialization used only for hashing:
// each node's hash is BLAKE3 over this encoding of its tag, path, and
// child hashes. It is a narrower sibling of core/types' transaction codec,
// kept local to this package since a trie node's wire shape (tag, nibble
// path, 16 fixed child-hash slots) has nothing in common with a
// transaction's.
package trie

import "encoding/binary"

type nodeEncoder struct {
	buf []byte
}

func (e *nodeEncoder) bytes() []byte { return e.buf }

func (e *nodeEncoder) writeU8(v uint8) { e.buf = append(e.buf, v) }

func (e *nodeEncoder) writeBool(b bool) {
	if b {
		e.writeU8(1)
	} else {
		e.writeU8(0)
	}
}

func (e *nodeEncoder) writeBytes(v []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(v)))
	e.buf = append(e.buf, lenBuf[:]...)
	e.buf = append(e.buf, v...)
}

func (e *nodeEncoder) writeFixed(v []byte) { e.buf = append(e.buf, v...) }
