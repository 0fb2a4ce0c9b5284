package core

// Tier is the drift level reached by the running total score
// Ordered: promotion only moves forward
type Tier int

const (
	TierBronze Tier = iota
	TierSilver
	TierGolden
	TierDiamond
	TierCount
)

var tierNames = [TierCount]string{"Bronze", "Silver", "Golden", "Diamond"}

var tierColors = [TierCount]RGB{
	RGBFromUnit(0.8, 0.5, 0.2),
	RGBFromUnit(0.75, 0.75, 0.75),
	RGBFromUnit(1, 0.84, 0),
	RGBFromUnit(0.5, 0.8, 1),
}

func (t Tier) Valid() bool {
	return t >= TierBronze && t < TierCount
}

func (t Tier) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return tierNames[t]
}

// DisplayName is the label shown by the HUD
func (t Tier) DisplayName() string {
	if !t.Valid() {
		return tierNames[TierBronze] + " Drift"
	}
	return tierNames[t] + " Drift"
}

// Color returns the tier's particle and label color, Bronze for invalid tiers
func (t Tier) Color() RGB {
	if !t.Valid() {
		return tierColors[TierBronze]
	}
	return tierColors[t]
}
