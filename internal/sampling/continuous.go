package sampling

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"
)

// Uniform draws from [low, high)
func Uniform(rng *rand.Rand, low, high float64) float64 {
	return low + (high-low)*rng.Float64()
}

// Normal draws from a normal distribution with the given mean and standard deviation
func Normal(rng *rand.Rand, mean, sd float64) float64 {
	return mean + sd*rng.NormFloat64()
}

// LogNormal draws exp(X) where X is normal(mu, sigma)
func LogNormal(rng *rand.Rand, mu, sigma float64) float64 {
	return math.Exp(Normal(rng, mu, sigma))
}

// IntRange draws an integer uniformly from [low, high] inclusive
func IntRange(rng *rand.Rand, low, high int) int {
	return low + rng.Intn(high-low+1)
}

// Round rounds v to the given number of decimal places, half away from zero.
// Negative places round to powers of ten: -2 is the nearest 100.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Clamp limits v to [low, high]
func Clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
