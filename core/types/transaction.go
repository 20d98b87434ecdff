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

// codecVersion is written as the first byte of every encoded transaction so
// a future wire revision can be told apart from this one.
const codecVersion uint8 = 1

// UnsignedTransaction is everything a sender commits to when signing: the
// signature field itself is never part of its own pre-image. Splitting the
// signed and unsigned shapes keeps that invariant structural rather than
// conventional.
type UnsignedTransaction struct {
	Sender      common.Address
	Nonce       uint64
	Instruction Instruction
	GasLimit    uint64
	GasPrice    uint64
}

// SignedTransaction is an UnsignedTransaction plus the sender's signature
// over PreImage().
type SignedTransaction struct {
	Unsigned  UnsignedTransaction
	Signature []byte
}

// PreImage returns the canonical byte sequence that gets BLAKE3-hashed and
// signed: the codec version, sender, nonce, gas fields, and instruction
// tag/body, in that order, with the signature field excluded entirely.
func (tx *UnsignedTransaction) PreImage() []byte {
	e := newEncoder()
	e.writeU8(codecVersion)
	e.writeFixed(tx.Sender[:])
	e.writeU64(tx.Nonce)
	e.writeU64(tx.GasLimit)
	e.writeU64(tx.GasPrice)
	e.writeU8(tx.Instruction.Tag())
	tx.Instruction.encodeBody(e)
	return e.bytes()
}

// Hash returns the BLAKE3 digest of the transaction's pre-image, used as
// its identity in the mempool and in blocks.
func (tx *UnsignedTransaction) Hash() common.Hash {
	return crypto.HashBytes(tx.PreImage())
}

// MarshalBinary encodes the signed transaction as the unsigned pre-image
// (which begins with the codec-version byte) followed by the
// length-prefixed signature.
func (tx *SignedTransaction) MarshalBinary() ([]byte, error) {
	e := newEncoder()
	e.writeFixed(tx.Unsigned.PreImage())
	e.writeBytes(tx.Signature)
	return e.bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary. It re-derives the
// pre-image fields by decoding them in the same order PreImage wrote them.
func (tx *SignedTransaction) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	version, err := d.readU8()
	if err != nil {
		return err
	}
	if version != codecVersion {
		return NewExecError(ErrMalformedInstruction, "unsupported transaction codec version")
	}
	senderBytes, err := d.readFixed(common.AddressLength)
	if err != nil {
		return err
	}
	nonce, err := d.readU64()
	if err != nil {
		return err
	}
	gasLimit, err := d.readU64()
	if err != nil {
		return err
	}
	gasPrice, err := d.readU64()
	if err != nil {
		return err
	}
	instr, err := decodeInstruction(d)
	if err != nil {
		return NewExecError(ErrMalformedInstruction, err.Error())
	}
	sig, err := d.readBytes()
	if err != nil {
		return err
	}
	if !d.done() {
		return NewExecError(ErrMalformedInstruction, "trailing bytes after transaction")
	}
	tx.Unsigned = UnsignedTransaction{
		Sender:      common.BytesToAddress(senderBytes),
		Nonce:       nonce,
		Instruction: instr,
		GasLimit:    gasLimit,
		GasPrice:    gasPrice,
	}
	tx.Signature = sig
	return nil
}

// Hash returns the identity hash of the underlying unsigned transaction.
func (tx *SignedTransaction) Hash() common.Hash { return tx.Unsigned.Hash() }

// Sign produces a SignedTransaction by signing unsigned's pre-image with
// priv. Callers are responsible for priv matching unsigned.Sender.
func Sign(unsigned UnsignedTransaction, priv crypto.PrivateKey) *SignedTransaction {
	sig := crypto.Sign(priv, unsigned.PreImage())
	return &SignedTransaction{Unsigned: unsigned, Signature: sig}
}

// VerifySignature checks the transaction's signature against its sender
// address.
func (tx *SignedTransaction) VerifySignature() bool {
	return crypto.Verify(tx.Unsigned.Sender, tx.Unsigned.PreImage(), tx.Signature)
}
