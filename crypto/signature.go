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

// Package crypto collects the pure-function cryptographic capabilities the
// executor consumes: Edwards-curve (ed25519) account signatures, BLAKE3
// digests, boolean ZK/oracle verifier oracles, and the governance and
// account-recovery quorum checks.
package crypto

import (
	stded25519 "crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"

	"github.com/lumina-chain/lumina/common"
)

const (
	PublicKeySize  = stded25519.PublicKeySize
	PrivateKeySize = stded25519.PrivateKeySize
	SignatureSize  = stded25519.SignatureSize
	SeedSize       = stded25519.SeedSize
)

type (
	PublicKey  = stded25519.PublicKey
	PrivateKey = stded25519.PrivateKey
)

var ErrInvalidPublicKey = errors.New("crypto: invalid ed25519 public key length")

// GenerateKey produces a new Edwards-curve keypair.
func GenerateKey(r io.Reader) (PublicKey, PrivateKey, error) {
	if r == nil {
		r = rand.Reader
	}
	return stded25519.GenerateKey(r)
}

// Sign produces a detached signature over message.
func Sign(priv PrivateKey, message []byte) []byte {
	return stded25519.Sign(priv, message)
}

// Verify checks sig over message for the given account address, which is
// the raw ed25519 public key bytes.
func Verify(addr common.Address, message, sig []byte) bool {
	return stded25519.Verify(PublicKey(addr[:]), message, sig)
}

// VerifyPublicKey validates that pub has the length of an ed25519 public
// key. The transaction decoder and Verify do not call it.
func VerifyPublicKey(pub []byte) error {
	if len(pub) != PublicKeySize {
		return ErrInvalidPublicKey
	}
	return nil
}
