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
	"testing"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/types"
)

func TestRootOfEmptyTrieIsZeroHash(t *testing.T) {
	if got := Root(nil); got != (common.Hash{}) {
		t.Fatalf("expected the zero hash for an empty trie, got %x", got)
	}
}

func TestRootIsDeterministicRegardlessOfInsertionOrder(t *testing.T) {
	entries := map[string][]byte{
		"alpha":   []byte("1"),
		"beta":    []byte("2"),
		"gamma":   []byte("3"),
		"alphabet": []byte("4"),
	}
	reversed := make(map[string][]byte, len(entries))
	for _, k := range []string{"alphabet", "gamma", "beta", "alpha"} {
		reversed[k] = entries[k]
	}
	r1 := Root(entries)
	r2 := Root(reversed)
	if r1 != r2 {
		t.Fatalf("identical entry sets produced different roots: %x != %x", r1, r2)
	}
}

func TestRootChangesWithValue(t *testing.T) {
	a := map[string][]byte{"key": []byte("v1")}
	b := map[string][]byte{"key": []byte("v2")}
	if Root(a) == Root(b) {
		t.Fatalf("distinct values under the same key produced the same root")
	}
}

func TestSingleEntryTrieIsALeaf(t *testing.T) {
	tr := Build(map[string][]byte{"solo": []byte("value")})
	if _, ok := tr.root.(*Leaf); !ok {
		t.Fatalf("expected a single-entry trie to build a bare Leaf, got %T", tr.root)
	}
}

func TestProveAndVerifyRoundTrip(t *testing.T) {
	entries := map[string][]byte{
		"account:aa": []byte("balance-100"),
		"account:ab": []byte("balance-200"),
		"account:zz": []byte("balance-300"),
	}
	tr := Build(entries)
	root := tr.Root()

	for k, v := range entries {
		proof, value, ok := tr.Prove([]byte(k))
		if !ok {
			t.Fatalf("Prove failed to find existing key %q", k)
		}
		if string(value) != string(v) {
			t.Fatalf("Prove returned wrong value for %q: got %q want %q", k, value, v)
		}
		if !VerifyProof(root, []byte(k), v, proof) {
			t.Fatalf("VerifyProof rejected a valid proof for %q", k)
		}
	}
}

func TestProveMissingKeyFails(t *testing.T) {
	tr := Build(map[string][]byte{"account:aa": []byte("balance-100")})
	_, _, ok := tr.Prove([]byte("account:zz"))
	if ok {
		t.Fatalf("Prove succeeded for an absent key")
	}
}

func TestVerifyProofRejectsTamperedValue(t *testing.T) {
	entries := map[string][]byte{
		"account:aa": []byte("balance-100"),
		"account:ab": []byte("balance-200"),
	}
	tr := Build(entries)
	root := tr.Root()
	proof, _, ok := tr.Prove([]byte("account:aa"))
	if !ok {
		t.Fatalf("Prove failed for an existing key")
	}
	if VerifyProof(root, []byte("account:aa"), []byte("tampered"), proof) {
		t.Fatalf("VerifyProof accepted a tampered value")
	}
}

func TestVerifyProofRejectsWrongRoot(t *testing.T) {
	entries := map[string][]byte{"account:aa": []byte("balance-100")}
	tr := Build(entries)
	proof, value, ok := tr.Prove([]byte("account:aa"))
	if !ok {
		t.Fatalf("Prove failed for an existing key")
	}
	if VerifyProof(common.BytesToHash([]byte{1, 2, 3}), []byte("account:aa"), value, proof) {
		t.Fatalf("VerifyProof accepted a proof against the wrong root")
	}
}

func TestBuildProducesBranchForDivergingKeys(t *testing.T) {
	entries := map[string][]byte{
		"a": []byte("1"), // 0x61: leading nibble 6
		"q": []byte("2"), // 0x71: leading nibble 7
	}
	tr := Build(entries)
	if _, ok := tr.root.(*Branch); !ok {
		t.Fatalf("expected a Branch at the root for immediately-diverging keys, got %T", tr.root)
	}
}

func TestBuildProducesExtensionForSharedPrefix(t *testing.T) {
	entries := map[string][]byte{
		"aaaa1": []byte("1"),
		"aaaa2": []byte("2"),
	}
	tr := Build(entries)
	if _, ok := tr.root.(*Extension); !ok {
		t.Fatalf("expected an Extension at the root for a long shared prefix, got %T", tr.root)
	}
}

func TestTrieWiredIntoTypesTrieRoot(t *testing.T) {
	entries := map[string][]byte{"k": []byte("v")}
	if got, want := types.TrieRoot(entries), Build(entries).Root(); got != want {
		t.Fatalf("types.TrieRoot diverges from Trie.Root: %x != %x", got, want)
	}
}
