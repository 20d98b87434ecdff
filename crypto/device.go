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

package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// AccountState.passkey_device_key holds a secp256k1 public key registered
// by CreatePasskeyAccount — a second-factor device key distinct from the
// account's primary Edwards-curve address.
//
// VerifyDeviceKey checks a compressed-or-uncompressed secp256k1 public key
// and a DER-encoded ECDSA signature over message, used by
// RecoverAccountKey as the device-possession factor accompanying the
// guardian quorum.
func VerifyDeviceKey(deviceKey []byte, message, sigDER []byte) bool {
	pub, err := btcec.ParsePubKey(deviceKey)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(sigDER)
	if err != nil {
		return false
	}
	return sig.Verify(HashBytes(message).Bytes(), pub)
}
