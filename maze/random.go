package maze

// LCG constants; with state in [0, lcgModulus) every product fits easily in int64
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Random is the seeded linear congruential stream used for maze layout
// Same seed yields the same sequence on every platform
type Random struct {
	state int64
}

// NewRandom creates a stream seeded with seed
// The seed is reduced modulo lcgModulus first, which leaves the sequence unchanged
func NewRandom(seed int64) *Random {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &Random{state: state}
}

// Float64 advances the stream and returns a value in [0, 1)
func (r *Random) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// Intn returns floor(Float64()*n), 0 when n <= 0 without advancing
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}
