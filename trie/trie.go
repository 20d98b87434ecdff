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

// Package trie implements the nibble-keyed Merkle Patricia Trie used to
// commit GlobalState and a block's transaction list to a 32-byte root. It
// is rebuilt from scratch on every commit rather than incrementally
// maintained, so the package's primary surface is the pure function
// Build/Root over a full key/value snapshot.
package trie

import (
	"bytes"
	"sort"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/types"
)

func init() {
	types.SetTrieRootFunc(Root)
}

// Trie is an immutable, already-hashed tree built from one snapshot of
// entries. Re-querying it (Prove) does not re-traverse the source map.
type Trie struct {
	root Node
}

type entry struct {
	key   []byte // nibble-expanded
	value []byte
}

// Build constructs a Trie from entries, a mapping of raw byte keys (any
// uniform or non-uniform length; 32 bytes for account/state keys, 8 bytes
// for the ordinal keys used in a block's transactions root) to values.
// Entries are sorted into ascending key order before construction so the
// result does not depend on map iteration order.
func Build(entries map[string][]byte) *Trie {
	if len(entries) == 0 {
		return &Trie{}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]entry, 0, len(entries))
	for _, k := range keys {
		items = append(items, entry{key: toNibbles([]byte(k)), value: entries[k]})
	}
	return &Trie{root: build(items)}
}

// Root returns the 32-byte commitment of entries. The empty trie's root is
// the all-zero hash.
func Root(entries map[string][]byte) common.Hash {
	t := Build(entries)
	return t.Root()
}

// Root returns t's commitment hash.
func (t *Trie) Root() common.Hash {
	if t.root == nil {
		return common.Hash{}
	}
	return t.root.Hash()
}

// build recursively partitions items into Leaf, Extension, and Branch
// nodes based on the shared nibble prefix remaining at each level.
func build(items []entry) Node {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return newLeaf(items[0].key, items[0].value)
	}

	for _, it := range items {
		if len(it.key) == 0 {
			return buildBranch(items, true, it.value)
		}
	}

	commonLen := commonNibblePrefixLen(items)
	if commonLen > 0 {
		path := append([]byte(nil), items[0].key[:commonLen]...)
		stripped := make([]entry, len(items))
		for i, it := range items {
			stripped[i] = entry{key: it.key[commonLen:], value: it.value}
		}
		return newExtension(path, build(stripped))
	}
	return buildBranch(items, false, nil)
}

// buildBranch partitions items whose key is non-empty into 16 buckets by
// their leading nibble and recurses into each.
func buildBranch(items []entry, hasValue bool, value []byte) Node {
	var buckets [16][]entry
	for _, it := range items {
		if len(it.key) == 0 {
			continue
		}
		nib := it.key[0]
		buckets[nib] = append(buckets[nib], entry{key: it.key[1:], value: it.value})
	}
	var children [16]Node
	for i := 0; i < 16; i++ {
		if len(buckets[i]) > 0 {
			children[i] = build(buckets[i])
		}
	}
	return newBranch(children, hasValue, value)
}

// commonNibblePrefixLen returns the length of the nibble prefix shared by
// every item's key. Callers only invoke this once every item's key is
// known to be non-empty.
func commonNibblePrefixLen(items []entry) int {
	minLen := len(items[0].key)
	for _, it := range items[1:] {
		if len(it.key) < minLen {
			minLen = len(it.key)
		}
	}
	for l := 0; l < minLen; l++ {
		nib := items[0].key[l]
		for _, it := range items[1:] {
			if it.key[l] != nib {
				return l
			}
		}
	}
	return minLen
}

// toNibbles expands key's bytes into a sequence twice as long, high nibble
// first per byte.
func toNibbles(key []byte) []byte {
	out := make([]byte, len(key)*2)
	for i, b := range key {
		out[2*i] = b >> 4
		out[2*i+1] = b & 0x0f
	}
	return out
}

// Proof is the ordered list of nodes from root to the leaf containing a
// queried key.
type Proof []Node

// Prove returns the traversal from t's root down to the leaf holding key,
// and the value stored there. ok is false if key is absent.
func (t *Trie) Prove(key []byte) (proof Proof, value []byte, ok bool) {
	if t.root == nil {
		return nil, nil, false
	}
	nibbles := toNibbles(key)
	node := t.root
	for {
		proof = append(proof, node)
		switch n := node.(type) {
		case *Leaf:
			if bytes.Equal(n.Path, nibbles) {
				return proof, n.Value, true
			}
			return nil, nil, false
		case *Extension:
			if len(nibbles) < len(n.Path) || !bytes.Equal(nibbles[:len(n.Path)], n.Path) {
				return nil, nil, false
			}
			nibbles = nibbles[len(n.Path):]
			node = n.Child
		case *Branch:
			if len(nibbles) == 0 {
				if !n.HasValue {
					return nil, nil, false
				}
				return proof, n.Value, true
			}
			child := n.Children[nibbles[0]]
			if child == nil {
				return nil, nil, false
			}
			nibbles = nibbles[1:]
			node = child
		default:
			return nil, nil, false
		}
	}
}

// VerifyProof re-walks proof against root and confirms it terminates in a
// Leaf (or Branch terminator) holding value for key.
func VerifyProof(root common.Hash, key, value []byte, proof Proof) bool {
	if len(proof) == 0 {
		return false
	}
	if proof[0].Hash() != root {
		return false
	}
	nibbles := toNibbles(key)
	for i, node := range proof {
		switch n := node.(type) {
		case *Leaf:
			if i != len(proof)-1 {
				return false
			}
			return bytes.Equal(n.Path, nibbles) && bytes.Equal(n.Value, value)
		case *Extension:
			if len(nibbles) < len(n.Path) || !bytes.Equal(nibbles[:len(n.Path)], n.Path) {
				return false
			}
			if i == len(proof)-1 {
				return false
			}
			if n.Child.Hash() != proof[i+1].Hash() {
				return false
			}
			nibbles = nibbles[len(n.Path):]
		case *Branch:
			if len(nibbles) == 0 {
				if i != len(proof)-1 {
					return false
				}
				return n.HasValue && bytes.Equal(n.Value, value)
			}
			child := n.Children[nibbles[0]]
			if child == nil {
				return false
			}
			if i == len(proof)-1 {
				return false
			}
			if child.Hash() != proof[i+1].Hash() {
				return false
			}
			nibbles = nibbles[1:]
		default:
			return false
		}
	}
	return false
}
