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
	"fmt"

	"github.com/lumina-chain/lumina/common"
)

// Asset identifies which balance an instruction operates on.
type Asset uint8

const (
	AssetLUSD Asset = iota
	AssetLJUN
	AssetLumina
)

// Instruction is the dispatched sum type. Variant tags are assigned by
// declaration order starting at 0 and are stable wire identifiers; new
// variants are only ever appended, never inserted.
type Instruction interface {
	Tag() byte
	encodeBody(*encoder)
}

const (
	TagMintSenior byte = iota
	TagRedeemSenior
	TagMintJunior
	TagRedeemJunior
	TagTransfer
	TagTriggerStabilizer
	TagRunCircuitBreaker
	TagFairRedeemQueue
	TagUpdateOracle
	TagRegisterValidator
	TagConfidentialTransfer
	TagWrapToYieldToken
	TagUnwrapYieldToken
	TagComputeHealthIndex
	TagCreatePasskeyAccount
	TagInstantFiatBridge
	TagDistributeYield
	TagRegisterAsset
	TagMultiJurisdictional
	TagZkTaxAttest // NOP
	TagZeroSlipBatchMatch // NOP
	TagGeoRebalance       // NOP
	TagVelocityIncentive  // NOP
	TagStreamPayment
	TagRecoverAccountKey
	TagDynamicHedge // NOP
)

// --- core tranche & transfer instructions ---

type MintSenior struct {
	Amount     uint64
	Collateral uint64
	Proof      []byte
}

func (MintSenior) Tag() byte { return TagMintSenior }
func (i MintSenior) encodeBody(e *encoder) {
	e.writeU64(i.Amount)
	e.writeU64(i.Collateral)
	e.writeBytes(i.Proof)
}

type RedeemSenior struct {
	Amount uint64
}

func (RedeemSenior) Tag() byte { return TagRedeemSenior }
func (i RedeemSenior) encodeBody(e *encoder) { e.writeU64(i.Amount) }

type MintJunior struct {
	Amount     uint64
	Collateral uint64
}

func (MintJunior) Tag() byte { return TagMintJunior }
func (i MintJunior) encodeBody(e *encoder) {
	e.writeU64(i.Amount)
	e.writeU64(i.Collateral)
}

type RedeemJunior struct {
	Amount uint64
}

func (RedeemJunior) Tag() byte { return TagRedeemJunior }
func (i RedeemJunior) encodeBody(e *encoder) { e.writeU64(i.Amount) }

type Transfer struct {
	To     common.Address
	Amount uint64
	Asset  Asset
}

func (Transfer) Tag() byte { return TagTransfer }
func (i Transfer) encodeBody(e *encoder) {
	e.writeFixed(i.To[:])
	e.writeU64(i.Amount)
	e.writeU8(uint8(i.Asset))
}

// --- stability subsystem instructions ---

type TriggerStabilizer struct{}

func (TriggerStabilizer) Tag() byte          { return TagTriggerStabilizer }
func (TriggerStabilizer) encodeBody(*encoder) {}

type RunCircuitBreaker struct {
	Active bool
	// Governance is required to re-open a tripped breaker (Active == false);
	// a manual trip (Active == true) may be submitted without it.
	Governance *GovernanceProofWire
}

func (RunCircuitBreaker) Tag() byte { return TagRunCircuitBreaker }
func (i RunCircuitBreaker) encodeBody(e *encoder) {
	e.writeBool(i.Active)
	encodeGovernanceProof(e, i.Governance)
}

// GovernanceMessage returns the bytes a validator quorum signs over to
// authorize this instruction, excluding the proof itself.
func (i RunCircuitBreaker) GovernanceMessage() []byte {
	e := newEncoder()
	e.writeU8(i.Tag())
	e.writeBool(i.Active)
	return e.bytes()
}

type FairRedeemQueue struct {
	BatchSize uint64
}

func (FairRedeemQueue) Tag() byte { return TagFairRedeemQueue }
func (i FairRedeemQueue) encodeBody(e *encoder) { e.writeU64(i.BatchSize) }

type UpdateOracle struct {
	AssetTicker string
	Price       uint64
	Governance  *GovernanceProofWire // required: a nil proof is rejected with InvalidProof
}

func (UpdateOracle) Tag() byte { return TagUpdateOracle }
func (i UpdateOracle) encodeBody(e *encoder) {
	e.writeString(i.AssetTicker)
	e.writeU64(i.Price)
	encodeGovernanceProof(e, i.Governance)
}

// GovernanceMessage returns the bytes a validator quorum signs over to
// authorize this instruction, excluding the proof itself.
func (i UpdateOracle) GovernanceMessage() []byte {
	e := newEncoder()
	e.writeU8(i.Tag())
	e.writeString(i.AssetTicker)
	e.writeU64(i.Price)
	return e.bytes()
}

type RegisterValidator struct {
	PubKey     []byte
	Stake      uint64
	Governance *GovernanceProofWire
}

func (RegisterValidator) Tag() byte { return TagRegisterValidator }
func (i RegisterValidator) encodeBody(e *encoder) {
	e.writeBytes(i.PubKey)
	e.writeU64(i.Stake)
	encodeGovernanceProof(e, i.Governance)
}

// GovernanceMessage returns the bytes a validator quorum signs over to
// authorize this instruction, excluding the proof itself.
func (i RegisterValidator) GovernanceMessage() []byte {
	e := newEncoder()
	e.writeU8(i.Tag())
	e.writeBytes(i.PubKey)
	e.writeU64(i.Stake)
	return e.bytes()
}

// --- privacy / compliance instructions ---

type ConfidentialTransfer struct {
	Commitment []byte
	Proof      []byte
}

func (ConfidentialTransfer) Tag() byte { return TagConfidentialTransfer }
func (i ConfidentialTransfer) encodeBody(e *encoder) {
	e.writeBytes(i.Commitment)
	e.writeBytes(i.Proof)
}

// --- yield instructions ---

type WrapToYieldToken struct {
	Amount         uint64
	MaturityBlocks uint64
}

func (WrapToYieldToken) Tag() byte { return TagWrapToYieldToken }
func (i WrapToYieldToken) encodeBody(e *encoder) {
	e.writeU64(i.Amount)
	e.writeU64(i.MaturityBlocks)
}

type UnwrapYieldToken struct {
	TokenID uint64
}

func (UnwrapYieldToken) Tag() byte { return TagUnwrapYieldToken }
func (i UnwrapYieldToken) encodeBody(e *encoder) { e.writeU64(i.TokenID) }

// --- health / accounts / fiat ---

type ComputeHealthIndex struct{}

func (ComputeHealthIndex) Tag() byte          { return TagComputeHealthIndex }
func (ComputeHealthIndex) encodeBody(*encoder) {}

type CreatePasskeyAccount struct {
	DeviceKey []byte
	Guardians []common.Address
}

func (CreatePasskeyAccount) Tag() byte { return TagCreatePasskeyAccount }
func (i CreatePasskeyAccount) encodeBody(e *encoder) {
	e.writeBytes(i.DeviceKey)
	e.writeU64(uint64(len(i.Guardians)))
	for _, g := range i.Guardians {
		e.writeFixed(g[:])
	}
}

type InstantFiatBridge struct {
	Amount uint64
}

func (InstantFiatBridge) Tag() byte { return TagInstantFiatBridge }
func (i InstantFiatBridge) encodeBody(e *encoder) { e.writeU64(i.Amount) }

type DistributeYield struct {
	TotalYield uint64
}

func (DistributeYield) Tag() byte { return TagDistributeYield }
func (i DistributeYield) encodeBody(e *encoder) { e.writeU64(i.TotalYield) }

// --- governance and compliance instructions ---

type RegisterAsset struct {
	Symbol     string
	IsSenior   bool
	Proof      []byte
	Governance *GovernanceProofWire
}

func (RegisterAsset) Tag() byte { return TagRegisterAsset }
func (i RegisterAsset) encodeBody(e *encoder) {
	e.writeString(i.Symbol)
	e.writeBool(i.IsSenior)
	e.writeBytes(i.Proof)
	encodeGovernanceProof(e, i.Governance)
}

// GovernanceMessage returns the bytes a validator quorum signs over to
// authorize this instruction, excluding the proof itself.
func (i RegisterAsset) GovernanceMessage() []byte {
	e := newEncoder()
	e.writeU8(i.Tag())
	e.writeString(i.Symbol)
	e.writeBool(i.IsSenior)
	e.writeBytes(i.Proof)
	return e.bytes()
}

type MultiJurisdictionalCheck struct {
	Region    string
	CircuitID []byte
	Proof     []byte
}

func (MultiJurisdictionalCheck) Tag() byte { return TagMultiJurisdictional }
func (i MultiJurisdictionalCheck) encodeBody(e *encoder) {
	e.writeString(i.Region)
	e.writeBytes(i.CircuitID)
	e.writeBytes(i.Proof)
}

// ZkTaxAttest, ZeroSlipBatchMatch, GeoRebalance, VelocityIncentive, and
// DynamicHedge are reserved NOP-tier instructions: they advance the nonce
// and otherwise do nothing. Their wire shape is kept minimal but stable.

type ZkTaxAttest struct {
	TaxProof []byte
}

func (ZkTaxAttest) Tag() byte { return TagZkTaxAttest }
func (i ZkTaxAttest) encodeBody(e *encoder) { e.writeBytes(i.TaxProof) }

type ZeroSlipBatchMatch struct {
	BatchID uint64
}

func (ZeroSlipBatchMatch) Tag() byte { return TagZeroSlipBatchMatch }
func (i ZeroSlipBatchMatch) encodeBody(e *encoder) { e.writeU64(i.BatchID) }

type GeoRebalance struct {
	Region string
	Amount uint64
}

func (GeoRebalance) Tag() byte { return TagGeoRebalance }
func (i GeoRebalance) encodeBody(e *encoder) {
	e.writeString(i.Region)
	e.writeU64(i.Amount)
}

type VelocityIncentive struct {
	VelocityScore uint64
}

func (VelocityIncentive) Tag() byte { return TagVelocityIncentive }
func (i VelocityIncentive) encodeBody(e *encoder) { e.writeU64(i.VelocityScore) }

type StreamPayment struct {
	Recipient    common.Address
	RatePerBlock uint64
	DurationBlocks uint64
}

func (StreamPayment) Tag() byte { return TagStreamPayment }
func (i StreamPayment) encodeBody(e *encoder) {
	e.writeFixed(i.Recipient[:])
	e.writeU64(i.RatePerBlock)
	e.writeU64(i.DurationBlocks)
}

type DynamicHedge struct {
	Strategy string
}

func (DynamicHedge) Tag() byte { return TagDynamicHedge }
func (i DynamicHedge) encodeBody(e *encoder) { e.writeString(i.Strategy) }

// RecoverAccountKey rotates an account's passkey device key once a
// guardian quorum and the proposed device's own signature both check out.
type RecoverAccountKey struct {
	NewDeviceKey   []byte
	NewDeviceProof []byte // secp256k1 DER signature by NewDeviceKey over NewDeviceKey itself
	GuardianSigs   []GuardianSigWire
}

func (RecoverAccountKey) Tag() byte { return TagRecoverAccountKey }
func (i RecoverAccountKey) encodeBody(e *encoder) {
	e.writeBytes(i.NewDeviceKey)
	e.writeBytes(i.NewDeviceProof)
	e.writeU64(uint64(len(i.GuardianSigs)))
	for _, g := range i.GuardianSigs {
		e.writeFixed(g.Guardian[:])
		e.writeBytes(g.Signature)
	}
}

// GuardianSigWire is the wire form of crypto.GuardianSignature.
type GuardianSigWire struct {
	Guardian  common.Address
	Signature []byte
}

// GovernanceProofWire is the wire form of crypto.GovernanceProof.
type GovernanceProofWire struct {
	SignerIndices []uint32
	AggregateSig  []byte
}

func encodeGovernanceProof(e *encoder, g *GovernanceProofWire) {
	if g == nil {
		e.writeBool(false)
		return
	}
	e.writeBool(true)
	e.writeU64(uint64(len(g.SignerIndices)))
	for _, idx := range g.SignerIndices {
		var b [4]byte
		b[0] = byte(idx)
		b[1] = byte(idx >> 8)
		b[2] = byte(idx >> 16)
		b[3] = byte(idx >> 24)
		e.writeFixed(b[:])
	}
	e.writeBytes(g.AggregateSig)
}

func decodeGovernanceProof(d *decoder) (*GovernanceProofWire, error) {
	present, err := d.readBool()
	if err != nil || !present {
		return nil, err
	}
	n, err := d.readU64()
	if err != nil {
		return nil, err
	}
	indices := make([]uint32, n)
	for i := range indices {
		b, err := d.readFixed(4)
		if err != nil {
			return nil, err
		}
		indices[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	sig, err := d.readBytes()
	if err != nil {
		return nil, err
	}
	return &GovernanceProofWire{SignerIndices: indices, AggregateSig: sig}, nil
}

// decodeInstruction reads a tag byte and dispatches to the matching
// variant decoder. Unknown tags are a MalformedInstruction at the
// transaction-decode boundary.
func decodeInstruction(d *decoder) (Instruction, error) {
	tag, err := d.readU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagMintSenior:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		collateral, err := d.readU64()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		return MintSenior{Amount: amount, Collateral: collateral, Proof: proof}, nil
	case TagRedeemSenior:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return RedeemSenior{Amount: amount}, nil
	case TagMintJunior:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		collateral, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return MintJunior{Amount: amount, Collateral: collateral}, nil
	case TagRedeemJunior:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return RedeemJunior{Amount: amount}, nil
	case TagTransfer:
		to, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		asset, err := d.readU8()
		if err != nil {
			return nil, err
		}
		return Transfer{To: common.BytesToAddress(to), Amount: amount, Asset: Asset(asset)}, nil
	case TagTriggerStabilizer:
		return TriggerStabilizer{}, nil
	case TagRunCircuitBreaker:
		active, err := d.readBool()
		if err != nil {
			return nil, err
		}
		gov, err := decodeGovernanceProof(d)
		if err != nil {
			return nil, err
		}
		return RunCircuitBreaker{Active: active, Governance: gov}, nil
	case TagFairRedeemQueue:
		n, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return FairRedeemQueue{BatchSize: n}, nil
	case TagUpdateOracle:
		ticker, err := d.readString()
		if err != nil {
			return nil, err
		}
		price, err := d.readU64()
		if err != nil {
			return nil, err
		}
		gov, err := decodeGovernanceProof(d)
		if err != nil {
			return nil, err
		}
		return UpdateOracle{AssetTicker: ticker, Price: price, Governance: gov}, nil
	case TagRegisterValidator:
		pub, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		stake, err := d.readU64()
		if err != nil {
			return nil, err
		}
		gov, err := decodeGovernanceProof(d)
		if err != nil {
			return nil, err
		}
		return RegisterValidator{PubKey: pub, Stake: stake, Governance: gov}, nil
	case TagConfidentialTransfer:
		commitment, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		return ConfidentialTransfer{Commitment: commitment, Proof: proof}, nil
	case TagWrapToYieldToken:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		maturity, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return WrapToYieldToken{Amount: amount, MaturityBlocks: maturity}, nil
	case TagUnwrapYieldToken:
		id, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return UnwrapYieldToken{TokenID: id}, nil
	case TagComputeHealthIndex:
		return ComputeHealthIndex{}, nil
	case TagCreatePasskeyAccount:
		deviceKey, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		n, err := d.readU64()
		if err != nil {
			return nil, err
		}
		guardians := make([]common.Address, n)
		for i := range guardians {
			b, err := d.readFixed(common.AddressLength)
			if err != nil {
				return nil, err
			}
			guardians[i] = common.BytesToAddress(b)
		}
		return CreatePasskeyAccount{DeviceKey: deviceKey, Guardians: guardians}, nil
	case TagInstantFiatBridge:
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return InstantFiatBridge{Amount: amount}, nil
	case TagDistributeYield:
		total, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return DistributeYield{TotalYield: total}, nil
	case TagRegisterAsset:
		symbol, err := d.readString()
		if err != nil {
			return nil, err
		}
		isSenior, err := d.readBool()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		gov, err := decodeGovernanceProof(d)
		if err != nil {
			return nil, err
		}
		return RegisterAsset{Symbol: symbol, IsSenior: isSenior, Proof: proof, Governance: gov}, nil
	case TagMultiJurisdictional:
		region, err := d.readString()
		if err != nil {
			return nil, err
		}
		circuitID, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		return MultiJurisdictionalCheck{Region: region, CircuitID: circuitID, Proof: proof}, nil
	case TagZkTaxAttest:
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		return ZkTaxAttest{TaxProof: proof}, nil
	case TagZeroSlipBatchMatch:
		id, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return ZeroSlipBatchMatch{BatchID: id}, nil
	case TagGeoRebalance:
		region, err := d.readString()
		if err != nil {
			return nil, err
		}
		amount, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return GeoRebalance{Region: region, Amount: amount}, nil
	case TagVelocityIncentive:
		score, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return VelocityIncentive{VelocityScore: score}, nil
	case TagStreamPayment:
		recipient, err := d.readFixed(common.AddressLength)
		if err != nil {
			return nil, err
		}
		rate, err := d.readU64()
		if err != nil {
			return nil, err
		}
		duration, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return StreamPayment{Recipient: common.BytesToAddress(recipient), RatePerBlock: rate, DurationBlocks: duration}, nil
	case TagRecoverAccountKey:
		deviceKey, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		proof, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		n, err := d.readU64()
		if err != nil {
			return nil, err
		}
		sigs := make([]GuardianSigWire, n)
		for i := range sigs {
			g, err := d.readFixed(common.AddressLength)
			if err != nil {
				return nil, err
			}
			sig, err := d.readBytes()
			if err != nil {
				return nil, err
			}
			sigs[i] = GuardianSigWire{Guardian: common.BytesToAddress(g), Signature: sig}
		}
		return RecoverAccountKey{NewDeviceKey: deviceKey, NewDeviceProof: proof, GuardianSigs: sigs}, nil
	case TagDynamicHedge:
		strategy, err := d.readString()
		if err != nil {
			return nil, err
		}
		return DynamicHedge{Strategy: strategy}, nil
	default:
		return nil, fmt.Errorf("types: unknown instruction tag %d", tag)
	}
}
