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

package executor

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/lumina-chain/lumina/common"
	"github.com/lumina-chain/lumina/core/types"
	"github.com/lumina-chain/lumina/crypto"
)

func TestExecConfidentialTransferRequiresProof(t *testing.T) {
	acc := &types.AccountState{}
	if err := execConfidentialTransfer(acc, types.ConfidentialTransfer{Commitment: []byte{1}, Proof: []byte{1}}); err != nil {
		t.Fatalf("execConfidentialTransfer: %v", err)
	}
	err := execConfidentialTransfer(acc, types.ConfidentialTransfer{Commitment: nil, Proof: []byte{1}})
	if !types.IsKind(err, types.ErrInvalidProof) {
		t.Fatalf("expected ErrInvalidProof, got %v", err)
	}
}

func TestExecCreatePasskeyAccount(t *testing.T) {
	acc := &types.AccountState{}
	guardian := common.BytesToAddress([]byte{1})
	ins := types.CreatePasskeyAccount{DeviceKey: []byte{9, 9}, Guardians: []common.Address{guardian}}
	if err := execCreatePasskeyAccount(acc, ins); err != nil {
		t.Fatalf("execCreatePasskeyAccount: %v", err)
	}
	if string(acc.PasskeyDeviceKey) != "\x09\x09" || len(acc.Guardians) != 1 || acc.Guardians[0] != guardian {
		t.Fatalf("unexpected account state: %+v", acc)
	}

	err := execCreatePasskeyAccount(acc, types.CreatePasskeyAccount{})
	if !types.IsKind(err, types.ErrMalformedInstruction) {
		t.Fatalf("expected ErrMalformedInstruction for an empty device key, got %v", err)
	}
}

func TestExecInstantFiatBridgeCreditsBalance(t *testing.T) {
	gs := types.NewGlobalState()
	acc := &types.AccountState{}
	if err := execInstantFiatBridge(gs, acc, types.InstantFiatBridge{Amount: 100}); err != nil {
		t.Fatalf("execInstantFiatBridge: %v", err)
	}
	if acc.LUSDBalance != 100 || gs.TotalLUSDSupply != 100 {
		t.Fatalf("unexpected state: balance=%d supply=%d", acc.LUSDBalance, gs.TotalLUSDSupply)
	}
}

func TestExecRegisterAssetRequiresGovernanceAndProof(t *testing.T) {
	validators := newBFTValidators(t, 3)
	gs := stateWithValidators(validators, []uint64{10, 10, 10})

	ins := types.RegisterAsset{Symbol: "US-TBILL-3M", IsSenior: true, Proof: []byte{1}}
	err := execRegisterAsset(gs, ins)
	if !types.IsKind(err, types.ErrInvalidProof) {
		t.Fatalf("expected a missing-governance error, got %v", err)
	}

	indices := []uint32{0, 1, 2}
	ins.Governance = &types.GovernanceProofWire{
		SignerIndices: indices,
		AggregateSig:  bftAggregateSign(t, validators, indices, ins.GovernanceMessage()),
	}
	if err := execRegisterAsset(gs, ins); err != nil {
		t.Fatalf("execRegisterAsset: %v", err)
	}
	if string(gs.RWAListings["US-TBILL-3M"]) != "\x01" {
		t.Fatalf("listing not recorded: %+v", gs.RWAListings)
	}
}

func TestExecComplianceCheckRecordsCircuit(t *testing.T) {
	gs := types.NewGlobalState()
	ins := types.MultiJurisdictionalCheck{Region: "EU", CircuitID: []byte{1}, Proof: []byte{1}}
	if err := execComplianceCheck(gs, ins); err != nil {
		t.Fatalf("execComplianceCheck: %v", err)
	}
	if string(gs.ComplianceCircuits["EU"]) != "\x01" {
		t.Fatalf("compliance circuit not recorded: %+v", gs.ComplianceCircuits)
	}

	err := execComplianceCheck(gs, types.MultiJurisdictionalCheck{Region: "EU", CircuitID: nil, Proof: []byte{1}})
	if !types.IsKind(err, types.ErrInvalidProof) {
		t.Fatalf("expected ErrInvalidProof, got %v", err)
	}
}

func TestExecRecoverAccountKeyRequiresGuardianQuorumAndDeviceProof(t *testing.T) {
	g1Pub, g1Priv, _ := crypto.GenerateKey(nil)
	g2Pub, g2Priv, _ := crypto.GenerateKey(nil)
	g3Pub, _, _ := crypto.GenerateKey(nil)
	g1, g2, g3 := common.BytesToAddress(g1Pub), common.BytesToAddress(g2Pub), common.BytesToAddress(g3Pub)
	acc := &types.AccountState{Guardians: []common.Address{g1, g2, g3}}

	devicePriv, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	deviceKey := devicePriv.PubKey().SerializeCompressed()
	deviceSig := ecdsa.Sign(devicePriv, crypto.HashBytes(deviceKey).Bytes())

	sig1 := crypto.Sign(g1Priv, deviceKey)

	ins := types.RecoverAccountKey{
		NewDeviceKey:   deviceKey,
		NewDeviceProof: deviceSig.Serialize(),
		GuardianSigs:   []types.GuardianSigWire{{Guardian: g1, Signature: sig1}},
	}
	err = execRecoverAccountKey(acc, ins)
	if err != nil {
		t.Fatalf("a missing quorum should no-op rather than reject, got %v", err)
	}
	if len(acc.PasskeyDeviceKey) != 0 {
		t.Fatalf("device key must not rotate before quorum is met")
	}

	sig2 := crypto.Sign(g2Priv, deviceKey)
	ins.GuardianSigs = append(ins.GuardianSigs, types.GuardianSigWire{Guardian: g2, Signature: sig2})
	if err := execRecoverAccountKey(acc, ins); err != nil {
		t.Fatalf("execRecoverAccountKey: %v", err)
	}
	if string(acc.PasskeyDeviceKey) != string(deviceKey) {
		t.Fatalf("device key was not rotated")
	}
}

func TestExecStreamPaymentAppendsStream(t *testing.T) {
	acc := &types.AccountState{}
	recipient := common.BytesToAddress([]byte{5})
	ins := types.StreamPayment{Recipient: recipient, RatePerBlock: 10, DurationBlocks: 50}
	if err := execStreamPayment(acc, ins, Context{Height: 100}); err != nil {
		t.Fatalf("execStreamPayment: %v", err)
	}
	if len(acc.ActiveStreams) != 1 {
		t.Fatalf("expected a stream to be recorded")
	}
	s := acc.ActiveStreams[0]
	if s.Recipient != recipient || s.StartHeight != 100 || s.EndHeight != 150 {
		t.Fatalf("unexpected stream state: %+v", s)
	}
}

func TestExecStreamPaymentRejectsZeroRateOrDuration(t *testing.T) {
	acc := &types.AccountState{}
	err := execStreamPayment(acc, types.StreamPayment{RatePerBlock: 0, DurationBlocks: 1}, Context{})
	if !types.IsKind(err, types.ErrMalformedInstruction) {
		t.Fatalf("expected ErrMalformedInstruction, got %v", err)
	}
}
