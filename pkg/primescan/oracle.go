package primescan

// IsPrime reports whether n is prime.
//
// It uses trial division: after ruling out n < 2, n == 2, and even n,
// it tests odd divisors d = 3, 5, 7, ... while d*d <= n. Deterministic,
// no allocation, O(sqrt n) worst case.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
