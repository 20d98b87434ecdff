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

// Package chain hosts the block-assembly loop: the bounded mempool, the
// single exclusive writer to GlobalState, and the persistence and
// network-egress collaborators the loop commits through.
package chain

import (
	"time"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/executor"
	"github.com/lumina-chain/lumina/core/state"
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/log"
)

// NetworkSink is the single-producer egress collaborator a committed
// block's serialized bytes are emitted to.
type NetworkSink interface {
	Publish(block []byte) error
}

// Loop is the single long-running block-assembly task. It holds the sole
// exclusive writer handle to GlobalState; readers elsewhere must go
// through a snapshot this package does not provide, keeping the write
// path single-threaded.
type Loop struct {
	Mempool  *Mempool
	State    *types.GlobalState
	Storage  KeyValueWriter
	Network  NetworkSink
	Proposer common.Address
	Interval time.Duration

	height   uint64
	prevHash common.Hash
}

// NewLoop constructs a Loop at genesis height 0 with a zero parent hash.
func NewLoop(mempool *Mempool, gs *types.GlobalState, storage KeyValueWriter, network NetworkSink, proposer common.Address, interval time.Duration) *Loop {
	return &Loop{
		Mempool:  mempool,
		State:    gs,
		Storage:  storage,
		Network:  network,
		Proposer: proposer,
		Interval: interval,
	}
}

// Run ticks at l.Interval until stop is closed, honoring an in-flight tick
// before exiting: partially assembled blocks that have not been persisted
// are discarded.
func (l *Loop) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if err := l.Tick(uint64(now.Unix())); err != nil {
				log.Crit("chain: fatal error in block assembly loop", "err", err)
			}
		}
	}
}

// Tick executes one full block-assembly iteration: drain, execute, build,
// persist, publish, advance. timestamp is injected by the caller rather
// than read from the wall clock directly, keeping Tick itself
// deterministic and testable.
func (l *Loop) Tick(timestamp uint64) error {
	// Snapshot the mempool's current drainable contents.
	txs := l.Mempool.Drain()

	// No empty blocks.
	if len(txs) == 0 {
		return nil
	}

	// Apply each tx against the live GlobalState, collecting accepted
	// transactions and discarding rejections.
	ctx := executor.Context{Height: l.height, Timestamp: timestamp}
	accepted := make([]*types.SignedTransaction, 0, len(txs))
	for _, tx := range txs {
		if err := executor.ExecuteTransaction(l.State, tx, ctx); err != nil {
			log.Warn("chain: rejected transaction", "hash", tx.Hash(), "err", err)
			continue
		}
		accepted = append(accepted, tx)
	}

	// Skip the block if nothing was accepted.
	if len(accepted) == 0 {
		return nil
	}

	// Compute transactions_root and state_root.
	block := &types.Block{Transactions: accepted}
	txRoot, err := block.ComputeTransactionsRoot()
	if err != nil {
		return err
	}
	stateRoot := state.Root(l.State)

	// Build the header.
	block.Header = types.BlockHeader{
		Height:           l.height,
		ParentHash:       l.prevHash,
		StateRoot:        stateRoot,
		TransactionsRoot: txRoot,
		Timestamp:        timestamp,
		ProposerAddress:  l.Proposer,
	}

	// Persist block and GlobalState as three separate Put calls, which are
	// not atomic as a group. Block bytes are written first (by height, then
	// by hash), then the state snapshot, so a crash between them leaves the
	// block durable without a dangling state reference to it.
	blockBytes, err := block.MarshalBinary()
	if err != nil {
		return err
	}
	if err := l.Storage.Put(blockKey(block.Header.Height), blockBytes); err != nil {
		return err
	}
	headerHash := block.Header.Hash()
	if err := l.Storage.Put(blockHashKey(headerHash[:]), blockBytes); err != nil {
		return err
	}
	if err := l.Storage.Put([]byte(keyGlobalState), l.State.MarshalBinary()); err != nil {
		return err
	}

	// Emit the committed block.
	if err := l.Network.Publish(blockBytes); err != nil {
		return err
	}

	// Advance prev_hash and height.
	l.prevHash = headerHash
	l.height++
	return nil
}
