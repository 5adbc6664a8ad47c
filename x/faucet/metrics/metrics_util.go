package metrics

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
)

// Counts accepted mints
// Metric Name:
//
//	faucet_mint_count
func IncrMintCounter() {
	telemetry.IncrCounter(1, "faucet", "mint", "count")
}

// Counts rejected mints by reason
// Metric Name:
//
//	faucet_mint_rejected_count
func IncrMintRejectedCounter(reason string) {
	metrics.IncrCounterWithLabels(
		[]string{"faucet", "mint", "rejected", "count"},
		1,
		[]metrics.Label{{Name: "reason", Value: reason}},
	)
}

// Amount credited by the last accepted mint, in base units of denom.
// Lossy above float32 range; only meant for dashboards.
// Metric Name:
//
//	faucet_minted_amount
func SetMintedAmountGauge(denom string, amount float32) {
	metrics.SetGaugeWithLabels(
		[]string{"faucet", "minted", "amount"},
		amount,
		[]metrics.Label{{Name: "denom", Value: denom}},
	)
}
