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

import (
	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/crypto"
)

// BlockHeader is the hashed commitment to a block. Hash is computed over
// the header alone; the transactions themselves are committed to via
// TransactionsRoot, not by including their bytes in the header pre-image.
type BlockHeader struct {
	Height           uint64
	ParentHash       common.Hash
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	Timestamp        uint64
	ProposerAddress  common.Address
}

// PreImage returns the canonical byte sequence hashed to produce the
// header's identity.
func (h *BlockHeader) PreImage() []byte {
	e := newEncoder()
	e.writeU64(h.Height)
	e.writeFixed(h.ParentHash[:])
	e.writeFixed(h.StateRoot[:])
	e.writeFixed(h.TransactionsRoot[:])
	e.writeU64(h.Timestamp)
	e.writeFixed(h.ProposerAddress[:])
	return e.bytes()
}

// Hash returns the BLAKE3 digest of the header's pre-image.
func (h *BlockHeader) Hash() common.Hash { return crypto.HashBytes(h.PreImage()) }

// Block pairs a header with the ordered list of transactions it committed
// to in TransactionsRoot.
type Block struct {
	Header       BlockHeader
	Transactions []*SignedTransaction
}

// TransactionsRoot computes the MPT root over the block's transactions,
// keyed by their index within the block so ordering is part of the
// committed root. This applies the same trie construction used for
// account state.
//
// trieRootFunc is supplied by package trie at init time to avoid core/types
// importing trie directly (trie imports core/types to call SetTrieRootFunc).
var trieRootFunc func(entries map[string][]byte) common.Hash

// SetTrieRootFunc wires the MPT root computation used by
// Block.ComputeTransactionsRoot. Called once from trie's init.
func SetTrieRootFunc(f func(entries map[string][]byte) common.Hash) { trieRootFunc = f }

// TrieRoot exposes the wired MPT root function to other core packages
// (core/state's state-root computation) without them importing package
// trie directly, avoiding a cycle back through core/types.
func TrieRoot(entries map[string][]byte) common.Hash {
	if trieRootFunc == nil {
		return common.Hash{}
	}
	return trieRootFunc(entries)
}

// ComputeTransactionsRoot derives TransactionsRoot from the block's current
// Transactions slice and stores it on the header.
func (b *Block) ComputeTransactionsRoot() (common.Hash, error) {
	if trieRootFunc == nil {
		return common.Hash{}, NewExecError(ErrMalformedInstruction, "trie root function not wired")
	}
	entries := make(map[string][]byte, len(b.Transactions))
	for i, tx := range b.Transactions {
		key := newEncoder()
		key.writeU64(uint64(i))
		val, err := tx.MarshalBinary()
		if err != nil {
			return common.Hash{}, err
		}
		entries[string(key.bytes())] = val
	}
	root := trieRootFunc(entries)
	b.Header.TransactionsRoot = root
	return root, nil
}

// MarshalBinary serializes the header followed by the length-prefixed,
// ordinally-indexed transaction list, using the same fixed little-endian
// length-prefixed encoding applied uniformly to every field.
func (b *Block) MarshalBinary() ([]byte, error) {
	e := newEncoder()
	e.writeFixed(b.Header.PreImage())
	e.writeU64(uint64(len(b.Transactions)))
	for _, tx := range b.Transactions {
		txBytes, err := tx.MarshalBinary()
		if err != nil {
			return nil, err
		}
		e.writeBytes(txBytes)
	}
	return e.bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (b *Block) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	height, err := d.readU64()
	if err != nil {
		return err
	}
	parent, err := d.readFixed(common.HashLength)
	if err != nil {
		return err
	}
	stateRoot, err := d.readFixed(common.HashLength)
	if err != nil {
		return err
	}
	txRoot, err := d.readFixed(common.HashLength)
	if err != nil {
		return err
	}
	timestamp, err := d.readU64()
	if err != nil {
		return err
	}
	proposer, err := d.readFixed(common.AddressLength)
	if err != nil {
		return err
	}
	n, err := d.readU64()
	if err != nil {
		return err
	}
	txs := make([]*SignedTransaction, n)
	for i := range txs {
		raw, err := d.readBytes()
		if err != nil {
			return err
		}
		tx := &SignedTransaction{}
		if err := tx.UnmarshalBinary(raw); err != nil {
			return err
		}
		txs[i] = tx
	}
	if !d.done() {
		return NewExecError(ErrMalformedInstruction, "trailing bytes after block")
	}
	b.Header = BlockHeader{
		Height:           height,
		ParentHash:       common.BytesToHash(parent),
		StateRoot:        common.BytesToHash(stateRoot),
		TransactionsRoot: common.BytesToHash(txRoot),
		Timestamp:        timestamp,
		ProposerAddress:  common.BytesToAddress(proposer),
	}
	b.Transactions = txs
	return nil
}
