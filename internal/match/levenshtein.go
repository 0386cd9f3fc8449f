package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep the row as short as possible.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			sub := prev[i-1]
			if a[i-1] != b[j-1] {
				sub++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, sub)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity is 1 - distance/max(len(a), len(b)); 1 means identical.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
