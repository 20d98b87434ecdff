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

package trie

import (
	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/crypto"
)

const (
	tagLeaf byte = iota
	tagExtension
	tagBranch
)

// Node is any of Leaf, Extension, or Branch. Hash is memoized at
// construction time since nodes are immutable once built.
type Node interface {
	Hash() common.Hash
}

// Leaf holds the remaining nibble path and the stored value.
type Leaf struct {
	Path  []byte
	Value []byte
	hash  common.Hash
}

func (n *Leaf) Hash() common.Hash { return n.hash }

func newLeaf(path, value []byte) *Leaf {
	e := &nodeEncoder{}
	e.writeU8(tagLeaf)
	e.writeBytes(path)
	e.writeBytes(value)
	return &Leaf{Path: path, Value: value, hash: crypto.HashBytes(e.bytes())}
}

// Extension compresses a run of single-child branches into one shared
// nibble path plus the hash of the node it leads to.
type Extension struct {
	Path  []byte
	Child Node
	hash  common.Hash
}

func (n *Extension) Hash() common.Hash { return n.hash }

func newExtension(path []byte, child Node) *Extension {
	e := &nodeEncoder{}
	e.writeU8(tagExtension)
	e.writeBytes(path)
	childHash := child.Hash()
	e.writeFixed(childHash[:])
	return &Extension{Path: path, Child: child, hash: crypto.HashBytes(e.bytes())}
}

// Branch has one slot per nibble plus an optional terminator value. The
// children array is always length 16; absent slots are nil.
type Branch struct {
	Children [16]Node
	HasValue bool
	Value    []byte
	hash     common.Hash
}

func (n *Branch) Hash() common.Hash { return n.hash }

func newBranch(children [16]Node, hasValue bool, value []byte) *Branch {
	e := &nodeEncoder{}
	e.writeU8(tagBranch)
	for _, c := range children {
		present := c != nil
		e.writeBool(present)
		if present {
			h := c.Hash()
			e.writeFixed(h[:])
		}
	}
	e.writeBool(hasValue)
	if hasValue {
		e.writeBytes(value)
	}
	return &Branch{Children: children, HasValue: hasValue, Value: value, hash: crypto.HashBytes(e.bytes())}
}
