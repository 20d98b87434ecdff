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

import (
	"testing"
	"time"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/crypto"

	_ "github.com/lumina-chain/lumina/trie"
)

type recordingSink struct {
	published [][]byte
}

func (s *recordingSink) Publish(block []byte) error {
	s.published = append(s.published, block)
	return nil
}

func signedMint(t *testing.T, nonce uint64, amount uint64) *types.SignedTransaction {
	t.Helper()
	pub, priv, err := crypto.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	unsigned := types.UnsignedTransaction{
		Sender:      common.BytesToAddress(pub),
		Nonce:       nonce,
		Instruction: types.MintSenior{Amount: amount, Collateral: amount, Proof: []byte{1}},
		GasLimit:    1,
		GasPrice:    1,
	}
	return types.Sign(unsigned, priv)
}

func newTestLoop() (*Loop, *MemoryStore, *recordingSink) {
	mempool := NewMempool(16)
	gs := types.NewGlobalState()
	storage := NewMemoryStore()
	sink := &recordingSink{}
	loop := NewLoop(mempool, gs, storage, sink, common.Address{}, time.Second)
	return loop, storage, sink
}

func TestLoopTickCommitsBlockOnAcceptedTransactions(t *testing.T) {
	loop, storage, sink := newTestLoop()
	tx := signedMint(t, 0, 1000)
	if err := loop.Mempool.Submit(tx); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := loop.Tick(1000); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if loop.height != 1 {
		t.Fatalf("expected height to advance to 1, got %d", loop.height)
	}
	if loop.prevHash == (common.Hash{}) {
		t.Fatalf("expected prevHash to be set after a committed block")
	}
	if len(sink.published) != 1 {
		t.Fatalf("expected exactly one published block, got %d", len(sink.published))
	}

	if _, ok := storage.Get(blockKey(0)); !ok {
		t.Fatalf("expected block at height 0 to be persisted")
	}
	if _, ok := storage.Get(blockHashKey(loop.prevHash[:])); !ok {
		t.Fatalf("expected block to be persisted under its hash key")
	}
	if _, ok := storage.Get([]byte(keyGlobalState)); !ok {
		t.Fatalf("expected global_state to be persisted")
	}
}

func TestLoopTickSkipsEmptyMempool(t *testing.T) {
	loop, storage, sink := newTestLoop()

	if err := loop.Tick(1000); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if loop.height != 0 || loop.prevHash != (common.Hash{}) {
		t.Fatalf("height/prevHash must not advance on an empty mempool")
	}
	if len(sink.published) != 0 {
		t.Fatalf("expected no block to be published for an empty mempool")
	}
	if _, ok := storage.Get(blockKey(0)); ok {
		t.Fatalf("expected no block to be persisted for an empty mempool")
	}
}

func TestLoopTickSkipsWhenAllTransactionsRejected(t *testing.T) {
	loop, storage, sink := newTestLoop()
	bad := signedMint(t, 0, 1000)
	bad.Signature[0] ^= 0xff
	if err := loop.Mempool.Submit(bad); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := loop.Tick(1000); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if loop.height != 0 || loop.prevHash != (common.Hash{}) {
		t.Fatalf("height/prevHash must not advance when every transaction is rejected")
	}
	if len(sink.published) != 0 {
		t.Fatalf("expected no block to be published when every transaction is rejected")
	}
	if _, ok := storage.Get(blockKey(0)); ok {
		t.Fatalf("expected no block to be persisted when every transaction is rejected")
	}
}

func TestLoopTickAdvancesHeightAcrossMultipleTicks(t *testing.T) {
	loop, _, _ := newTestLoop()

	if err := loop.Mempool.Submit(signedMint(t, 0, 1000)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := loop.Tick(1000); err != nil {
		t.Fatalf("Tick 1: %v", err)
	}
	firstHash := loop.prevHash

	if err := loop.Mempool.Submit(signedMint(t, 0, 500)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := loop.Tick(1001); err != nil {
		t.Fatalf("Tick 2: %v", err)
	}

	if loop.height != 2 {
		t.Fatalf("expected height 2 after two committed ticks, got %d", loop.height)
	}
	if loop.prevHash == firstHash {
		t.Fatalf("expected prevHash to change between blocks")
	}
}
