package domain

// Heuristic spread multipliers over the lowest listed price. These are
// not derived from sales data.
const (
	EstimateMidMultiplier  = 1.3
	EstimateHighMultiplier = 1.8
)

// ValueEstimate is a statistical extrapolation of collection value from
// a sampled subset of marketplace lowest prices. Not a correctness
// guarantee.
type ValueEstimate struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`

	SampledItems int `json:"sampled_items"`
	PricedItems  int `json:"priced_items"`
	TotalItems   int `json:"total_items"`
}

// ExtrapolateValue spreads the average known lowest price over the full
// collection size. pricedItems must be > 0.
func ExtrapolateValue(totalLow float64, pricedItems, sampledItems, totalItems int) ValueEstimate {
	averageLow := totalLow / float64(pricedItems)
	low := averageLow * float64(totalItems)
	return ValueEstimate{
		Low:          low,
		Mid:          low * EstimateMidMultiplier,
		High:         low * EstimateHighMultiplier,
		SampledItems: sampledItems,
		PricedItems:  pricedItems,
		TotalItems:   totalItems,
	}
}
