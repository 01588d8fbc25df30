package gamma

// DoubleFactorial returns n!! = n·(n−2)·(n−4)…, ending at 1 or 2.
// By convention 0!! = (−1)!! = 1; other negative n also return 1 since the
// Lanczos terms only ever ask for (2l−1)!! with l ≥ 0.
func DoubleFactorial(n int) float64 {
	product := 1.0
	for k := n; k > 1; k -= 2 {
		product *= float64(k)
	}

	return product
}

// factorial returns n! as a float64 (n ≥ 0).
func factorial(n int) float64 {
	product := 1.0
	for k := 2; k <= n; k++ {
		product *= float64(k)
	}

	return product
}
