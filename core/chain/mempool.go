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
	"errors"
	"sync"

	mapset "github.com/deckarep/golang-set"

	"github.com/lumina-chain/lumina/core/types"
)

// ErrChannelFull is returned by Submit when the mempool is at capacity,
// surfaced to the submitter without any state effect.
var ErrChannelFull = errors.New("chain: mempool at capacity")

// Mempool is the bounded, multi-producer/single-consumer transaction-
// ingress collaborator. Dedup is kept outside the channel itself: a
// golang-set of already-seen hashes guards the bounded channel that
// actually buffers pending transactions.
type Mempool struct {
	ch   chan *types.SignedTransaction
	seen mapset.Set

	mu sync.Mutex
}

func NewMempool(capacity int) *Mempool {
	return &Mempool{
		ch:   make(chan *types.SignedTransaction, capacity),
		seen: mapset.NewSet(),
	}
}

// Submit enqueues tx unless it is a duplicate of one already pending or the
// channel is at capacity.
func (m *Mempool) Submit(tx *types.SignedTransaction) error {
	hash := tx.Hash()

	m.mu.Lock()
	if m.seen.Contains(hash) {
		m.mu.Unlock()
		return nil
	}
	m.seen.Add(hash)
	m.mu.Unlock()

	select {
	case m.ch <- tx:
		return nil
	default:
		m.mu.Lock()
		m.seen.Remove(hash)
		m.mu.Unlock()
		return ErrChannelFull
	}
}

// Drain snapshots every transaction currently buffered, in FIFO arrival
// order, and clears the dedup set for the ones it took. The mempool is
// purged of drained transactions regardless of whether execution later
// accepts or rejects them.
func (m *Mempool) Drain() []*types.SignedTransaction {
	var txs []*types.SignedTransaction
	for {
		select {
		case tx := <-m.ch:
			txs = append(txs, tx)
		default:
			if len(txs) > 0 {
				m.mu.Lock()
				for _, tx := range txs {
					m.seen.Remove(tx.Hash())
				}
				m.mu.Unlock()
			}
			return txs
		}
	}
}
