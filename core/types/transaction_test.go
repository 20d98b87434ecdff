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
	"testing"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/crypto"
)

func newTestTx(t *testing.T) (*SignedTransaction, crypto.PublicKey) {
	t.Helper()
	pub, priv, err := crypto.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	unsigned := UnsignedTransaction{
		Sender:      common.BytesToAddress(pub),
		Nonce:       0,
		Instruction: MintSenior{Amount: 100, Collateral: 150, Proof: []byte{1}},
		GasLimit:    21000,
		GasPrice:    1,
	}
	return Sign(unsigned, priv), pub
}

func TestSignVerifySignature(t *testing.T) {
	tx, _ := newTestTx(t)
	if !tx.VerifySignature() {
		t.Fatalf("freshly signed transaction failed to verify")
	}
}

func TestVerifySignatureRejectsMutatedNonce(t *testing.T) {
	tx, _ := newTestTx(t)
	tx.Unsigned.Nonce++
	if tx.VerifySignature() {
		t.Fatalf("signature verified after nonce was mutated")
	}
}

func TestTransactionMarshalUnmarshalRoundTrip(t *testing.T) {
	tx, _ := newTestTx(t)
	data, err := tx.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var decoded SignedTransaction
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if decoded.Hash() != tx.Hash() {
		t.Fatalf("round-tripped transaction hash mismatch")
	}
	if !decoded.VerifySignature() {
		t.Fatalf("round-tripped transaction failed to verify")
	}
	mint, ok := decoded.Unsigned.Instruction.(MintSenior)
	if !ok {
		t.Fatalf("expected MintSenior, got %T", decoded.Unsigned.Instruction)
	}
	if mint.Amount != 100 || mint.Collateral != 150 {
		t.Fatalf("unexpected decoded instruction fields: %+v", mint)
	}
}

func TestPreImageExcludesSignature(t *testing.T) {
	tx, _ := newTestTx(t)
	before := tx.Unsigned.PreImage()
	tx.Signature = append([]byte(nil), tx.Signature...)
	tx.Signature[0] ^= 0xff
	after := tx.Unsigned.PreImage()
	if string(before) != string(after) {
		t.Fatalf("mutating the signature changed the unsigned pre-image")
	}
}

func TestUnmarshalBinaryRejectsTrailingBytes(t *testing.T) {
	tx, _ := newTestTx(t)
	data, err := tx.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	data = append(data, 0xff)
	var decoded SignedTransaction
	if err := decoded.UnmarshalBinary(data); err == nil {
		t.Fatalf("expected an error decoding a transaction with trailing bytes")
	}
}
