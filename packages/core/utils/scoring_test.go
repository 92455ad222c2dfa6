package utils

import (
	"reflect"
	"testing"
)

func TestDefaultPointTable(t *testing.T) {
	tests := []struct {
		position int
		players  int
		want     float64
	}{
		{position: 1, players: 2, want: 2},
		{position: 2, players: 2, want: 0},
		{position: 1, players: 4, want: 6},
		{position: 2, players: 4, want: 4},
		{position: 4, players: 4, want: 0},
	}

	for _, tt := range tests {
		if got := DefaultPointTable(tt.position, tt.players); got != tt.want {
			t.Errorf("position %d of %d: expected %v, got %v", tt.position, tt.players, tt.want, got)
		}
	}
}

func TestOrdinalPoints(t *testing.T) {
	tests := []struct {
		name  string
		ranks []int
		want  []float64
	}{
		{name: "two player decisive", ranks: []int{1, 2}, want: []float64{2, 0}},
		{name: "two player draw", ranks: []int{1, 1}, want: []float64{1, 1}},
		{name: "four player no ties", ranks: []int{1, 2, 3, 4}, want: []float64{6, 4, 2, 0}},
		{name: "tie for first splits positions one and two", ranks: []int{1, 1, 3, 4}, want: []float64{5, 5, 2, 0}},
		{name: "rank values with gaps", ranks: []int{1, 5, 5, 9}, want: []float64{6, 3, 3, 0}},
		{name: "everyone tied", ranks: []int{2, 2, 2}, want: []float64{2, 2, 2}},
		{name: "single entrant", ranks: []int{1}, want: []float64{0}},
		{name: "empty", ranks: []int{}, want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrdinalPoints(tt.ranks, DefaultPointTable)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOrdinalPointsOrderIndependentTotal(t *testing.T) {
	// The paid-out total must not depend on how ties fall across ranks.
	total := func(ranks []int) float64 {
		var sum float64
		for _, p := range OrdinalPoints(ranks, DefaultPointTable) {
			sum += p
		}
		return sum
	}

	base := total([]int{1, 2, 3, 4})
	for _, ranks := range [][]int{
		{1, 1, 3, 4},
		{1, 2, 2, 4},
		{1, 1, 1, 1},
		{4, 3, 2, 1},
	} {
		if got := total(ranks); got != base {
			t.Errorf("ranks %v: expected total %v, got %v", ranks, base, got)
		}
	}
}

func TestOrdinalPointsCustomTable(t *testing.T) {
	// Winner-takes-one table, everyone else zero.
	table := func(position, players int) float64 {
		if position == 1 {
			return 1
		}
		return 0
	}

	got := OrdinalPoints([]int{1, 1, 2}, table)
	want := []float64{0.5, 0.5, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
