package utils

import "sort"

// PointTable maps a finishing position (1-based) in an n-player match to the
// points it is worth. Injected into the standings fold so the default can be
// swapped without touching the aggregation.
type PointTable func(position, players int) float64

// DefaultPointTable awards 2*(n-position) points: in a 2-player match the
// winner takes 2 and the loser 0, so a drawn match splits to 1 apiece.
func DefaultPointTable(position, players int) float64 {
	return float64(2 * (players - position))
}

// OrdinalPoints converts the rank values of one match into points per entry
// using the given table. Tied ranks jointly occupy consecutive positions and
// each tied player receives the average of those positions' points, so the
// total paid out is independent of how ties fall.
//
// Rank values only need to order the entrants; gaps are fine ([1,5,5,9] is
// the same as [1,2,2,4]).
func OrdinalPoints(ranks []int, table PointTable) []float64 {
	n := len(ranks)
	points := make([]float64, n)
	if n == 0 {
		return points
	}

	distinct := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			distinct = append(distinct, r)
		}
	}
	sort.Ints(distinct)

	position := 1
	for _, r := range distinct {
		count := 0
		for _, rr := range ranks {
			if rr == r {
				count++
			}
		}

		// Average the points of the positions this tie group occupies.
		var sum float64
		for p := position; p < position+count; p++ {
			sum += table(p, n)
		}
		share := sum / float64(count)

		for i, rr := range ranks {
			if rr == r {
				points[i] = share
			}
		}
		position += count
	}

	return points
}
