package progression

// Tier is a cosmetic transformation stage derived from the power level.
type Tier int

const (
	TierBase Tier = iota
	TierSuperSaiyan
	TierSuperSaiyan2
	TierSuperSaiyan3
	TierSuperSaiyanGod
)

// thresholds[i] is the power level at which Tier(i+1) begins.
var thresholds = [...]int{1000, 5000, 15000, 50000}

var tierLabels = [...]string{
	TierBase:           "Base Form",
	TierSuperSaiyan:    "Super Saiyan",
	TierSuperSaiyan2:   "Super Saiyan 2",
	TierSuperSaiyan3:   "Super Saiyan 3",
	TierSuperSaiyanGod: "Super Saiyan God",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierLabels) {
		return "Unknown"
	}
	return tierLabels[t]
}

// MaxTier reports whether t is the last tier.
func (t Tier) MaxTier() bool {
	return t == TierSuperSaiyanGod
}

// Thresholds returns a copy of the ascending tier thresholds.
func Thresholds() []int {
	out := make([]int, len(thresholds))
	copy(out, thresholds[:])
	return out
}

// Transformation is the classification of a power level.
type Transformation struct {
	Tier          Tier   `json:"tier"`
	Label         string `json:"label"`
	NextThreshold *int   `json:"nextThreshold,omitempty"` // nil at the max tier
}

// TierOf classifies powerLevel. A level equal to a threshold belongs to the tier above it.
func TierOf(powerLevel int) Transformation {
	for i, threshold := range thresholds {
		if powerLevel < threshold {
			next := threshold
			return Transformation{
				Tier:          Tier(i),
				Label:         Tier(i).String(),
				NextThreshold: &next,
			}
		}
	}
	return Transformation{
		Tier:  TierSuperSaiyanGod,
		Label: TierSuperSaiyanGod.String(),
	}
}

// Progress describes how far the trainee is towards the next tier.
type Progress struct {
	Transformation
	PowerLevel   int     `json:"powerLevel"`
	PointsToNext int     `json:"pointsToNext"`
	Fraction     float64 `json:"fraction"` // powerLevel / next threshold, capped at 1
}

// ProgressOf returns the tier of powerLevel along with the distance to the next one.
func ProgressOf(powerLevel int) Progress {
	t := TierOf(powerLevel)
	p := Progress{Transformation: t, PowerLevel: powerLevel, Fraction: 1}
	if t.NextThreshold == nil {
		return p
	}
	next := *t.NextThreshold
	p.PointsToNext = next - powerLevel
	p.Fraction = float64(powerLevel) / float64(next)
	if p.Fraction > 1 {
		p.Fraction = 1
	}
	if p.Fraction < 0 {
		p.Fraction = 0
	}
	return p
}
