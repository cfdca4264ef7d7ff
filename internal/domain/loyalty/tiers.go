package loyalty

// Tier is one loyalty-points bracket. The table is fixed at build time and
// confers display state only.
type Tier struct {
	Level     int
	Titulo    string
	MinPoints int
	MaxPoints int // -1 means unbounded (top tier)
}

func (t Tier) Unbounded() bool {
	return t.MaxPoints < 0
}

// Tiers are ordered by ascending MinPoints, contiguous, no gaps.
var Tiers = []Tier{
	{Level: 1, Titulo: "Rookie Gamer", MinPoints: 0, MaxPoints: 99},
	{Level: 2, Titulo: "Casual Player", MinPoints: 100, MaxPoints: 249},
	{Level: 3, Titulo: "Gaming Enthusiast", MinPoints: 250, MaxPoints: 499},
	{Level: 4, Titulo: "Dedicated Gamer", MinPoints: 500, MaxPoints: 999},
	{Level: 5, Titulo: "Pro Gamer", MinPoints: 1000, MaxPoints: 1999},
	{Level: 6, Titulo: "Elite Player", MinPoints: 2000, MaxPoints: 3999},
	{Level: 7, Titulo: "Gaming Legend", MinPoints: 4000, MaxPoints: 7999},
	{Level: 8, Titulo: "Master Gamer", MinPoints: 8000, MaxPoints: -1},
}

// Progress is the resolved loyalty state for a points balance.
type Progress struct {
	Tier            Tier
	NextTier        *Tier
	PointsToNext    int
	ProgressPercent float64
}

// Resolve maps a cumulative points balance to its tier and progress toward
// the next one. Scans from the highest tier down, returning the first whose
// MinPoints is covered; falls back to the lowest tier defensively. Callers
// guarantee points >= 0.
func Resolve(points int) Progress {
	current := Tiers[0]
	for i := len(Tiers) - 1; i >= 0; i-- {
		if points >= Tiers[i].MinPoints {
			current = Tiers[i]
			break
		}
	}

	var next *Tier
	for i := range Tiers {
		if Tiers[i].Level == current.Level+1 {
			next = &Tiers[i]
			break
		}
	}

	if next == nil {
		return Progress{Tier: current, ProgressPercent: 100}
	}

	toNext := next.MinPoints - points
	if toNext < 0 {
		toNext = 0
	}

	span := next.MinPoints - current.MinPoints
	percent := 100.0
	if span > 0 {
		percent = float64(points-current.MinPoints) / float64(span) * 100
		if percent > 100 {
			percent = 100
		}
	}

	return Progress{
		Tier:            current,
		NextTier:        next,
		PointsToNext:    toNext,
		ProgressPercent: percent,
	}
}

// pointsPerUnit converts spend into loyalty points: 1 point per 1000
// currency units of the sale total, floor.
const pointsPerUnit = 1000

func PointsForPurchase(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(total / pointsPerUnit)
}
