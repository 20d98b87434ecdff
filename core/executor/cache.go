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

// Package executor implements ExecuteTransaction: the single dispatch
// point that authenticates, gates, and applies a signed transaction
// against GlobalState under a clone-and-swap rollback discipline.
package executor

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/lumina-chain/lumina/common"
)

// signatureCacheSize bounds the verified-signature cache the same way
// geth's sigCache bounds its recovered-sender cache: large enough to cover
// a few blocks' worth of mempool replay, small enough to stay off the heap
// in steady state.
const signatureCacheSize = 8192

// sigCache memoizes ed25519 verification results keyed by the
// transaction's identity hash, so a transaction re-seen across mempool
// ticks (e.g. resubmitted after a ChannelFull rejection) is not
// re-verified from scratch.
var sigCache, _ = lru.New(signatureCacheSize)

func cachedVerifySignature(hash common.Hash, verify func() bool) bool {
	if v, ok := sigCache.Get(hash); ok {
		return v.(bool)
	}
	ok := verify()
	sigCache.Add(hash, ok)
	return ok
}
