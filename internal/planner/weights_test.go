package planner

import (
	"testing"

	"github.com/studivo/studivo-backend/internal/types"
)

func weightsOf(assessments []types.Assessment) []int {
	out := make([]int, len(assessments))
	for i, a := range assessments {
		out[i] = a.Weight
	}
	return out
}

func assessmentsWith(weights ...int) []types.Assessment {
	out := make([]types.Assessment, len(weights))
	for i, w := range weights {
		out[i] = types.Assessment{Type: "Schriftliche Prüfung", Weight: w}
	}
	return out
}

func TestNormalizeWeights(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{
			name: "already_exact_unchanged",
			in:   []int{60, 40},
			want: []int{60, 40},
		},
		{
			name: "single_item_gets_100",
			in:   []int{70},
			want: []int{100},
		},
		{
			name: "rounding_drift_up",
			in:   []int{33, 33, 33},
			want: []int{34, 33, 33},
		},
		{
			name: "rounding_drift_down",
			in:   []int{34, 34, 34},
			want: []int{34, 33, 33},
		},
		{
			name: "zero_sum_even_split",
			in:   []int{0, 0, 0},
			want: []int{34, 33, 33},
		},
		{
			name: "zero_sum_four_items",
			in:   []int{0, 0, 0, 0},
			want: []int{25, 25, 25, 25},
		},
		{
			name: "large_remainder_wins_extra_point",
			in:   []int{50, 25, 24},
			want: []int{51, 25, 24},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := weightsOf(NormalizeWeights(assessmentsWith(tc.in...)))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d weights, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("NormalizeWeights(%v)=%v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}

func TestNormalizeWeightsAlwaysSums100(t *testing.T) {
	inputs := [][]int{
		{1},
		{1, 1, 1, 1, 1, 1, 1},
		{99},
		{7, 13, 29},
		{0, 50},
		{0, 0, 0, 0, 0},
		{200, 100, 50},
		{-10, 60, 60},
	}
	for _, in := range inputs {
		got := NormalizeWeights(assessmentsWith(in...))
		if len(got) != len(in) {
			t.Fatalf("length changed for %v", in)
		}
		sum := 0
		for _, a := range got {
			if a.Weight < 0 {
				t.Fatalf("negative weight %d for input %v", a.Weight, in)
			}
			sum += a.Weight
		}
		if sum != 100 {
			t.Fatalf("NormalizeWeights(%v) sums to %d, want 100", in, sum)
		}
	}
}

func TestNormalizeWeightsPreservesOtherFields(t *testing.T) {
	in := []types.Assessment{
		{Type: "Projektarbeit", Weight: 49, Format: types.AssessmentFormatGruppenarbeit},
		{Type: "Schriftliche Prüfung", Weight: 49, Format: types.AssessmentFormatEinzelarbeit},
	}
	out := NormalizeWeights(in)
	if out[0].Type != "Projektarbeit" || out[1].Format != types.AssessmentFormatEinzelarbeit {
		t.Fatalf("non-weight fields were rewritten: %+v", out)
	}
	if in[0].Weight != 49 {
		t.Fatalf("input slice was mutated")
	}
}
