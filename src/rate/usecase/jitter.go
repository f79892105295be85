package usecase

import (
	"math/rand/v2"

	"github.com/MMN3003/tokenrates/src/rate/domain"
)

// DefaultJitterSpread bounds market noise to ±1%.
const DefaultJitterSpread = 0.01

// UniformJitter draws a factor uniformly from [1-spread, 1+spread].
func UniformJitter(spread float64) domain.JitterFunc {
	return func() float64 {
		return 1 - spread + rand.Float64()*2*spread
	}
}

// FixedJitter always returns v. Tests use FixedJitter(1).
func FixedJitter(v float64) domain.JitterFunc {
	return func() float64 { return v }
}
