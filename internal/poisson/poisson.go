// Package poisson implements the scoreline probability model: independent
// Poisson scoreline distributions, the low-score dependence correction, and
// exact aggregation of outcome probabilities.
package poisson

import "math"

// PMF calculates the Poisson probability P(X = k) for rate lambda.
func PMF(lambda float64, k int) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1.0
		}
		return 0
	}

	// Log space avoids overflow in lambda^k and k!.
	logProb := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logProb)
}

func logFactorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	result := 0.0
	for i := 2; i <= n; i++ {
		result += math.Log(float64(i))
	}
	return result
}
