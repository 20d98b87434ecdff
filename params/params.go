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

// Package params holds the protocol-level constants governing the
// stability subsystem. None of these are environment- or flag-configured;
// a genesis/chain-config layer outside the core may override them per
// deployment.
package params

// MintFeeBPS is the senior-mint fee, taken in basis points of the minted
// amount.
const MintFeeBPS = 500 // 5.00%

const BPSDenominator = 10_000

// BreakerTripRatio: reserve_ratio below this value auto-trips the circuit
// breaker.
const BreakerTripRatio = 0.85

// FairQueueRatio: reserve_ratio below this value routes RedeemSenior into
// the fair redeem queue instead of an immediate burn.
const FairQueueRatio = 0.95

// PegScale is the fixed-point scale oracle prices are reported at.
const PegScale = 1_000_000

// ReservePriceTicker is the oracle ticker consumed by reserve-ratio
// recomputation.
const ReservePriceTicker = "ETH-USD"

// Health index weights: 0.4*peg + 0.3*coverage + 0.2*(1-breaker) +
// 0.1*green, expressed as integer basis points of the [0, 10000] health
// index so the computation stays integer end to end.
const (
	HealthWeightPegBPS      = 4000
	HealthWeightCoverageBPS = 3000
	HealthWeightBreakerBPS  = 2000
	HealthWeightGreenBPS    = 1000
	HealthIndexMax          = 10_000
)

// GovernanceQuorumNumerator/Denominator: the fraction of total validator
// stake whose BLS signatures must co-sign a governance-gated instruction.
const (
	GovernanceQuorumNumerator   = 2
	GovernanceQuorumDenominator = 3
)

// GuardianQuorumNumerator/Denominator: more than this fraction of an
// account's registered guardians must co-sign a RecoverAccountKey
// instruction with their ed25519 keys (guardians are ordinary accounts).
const (
	GuardianQuorumNumerator   = 1
	GuardianQuorumDenominator = 2
)

// DefaultMempoolCapacity bounds the transaction-ingress channel.
const DefaultMempoolCapacity = 4096

// DefaultProposalIntervalSeconds is the block-assembly tick interval, in
// seconds.
const DefaultProposalIntervalSeconds = 5

// YieldAccrualBPSPerBlock and YieldAccrualCapBPS govern UnwrapYieldToken's
// yield computation: yield = principal * accrual_bps(elapsed) / 10_000,
// accrued linearly and capped at 20%.
const (
	YieldAccrualBPSPerBlock = 1
	YieldAccrualCapBPS      = 2000
)
