package planner

import (
	"math"
	"sort"

	"github.com/studivo/studivo-backend/internal/types"
)

// NormalizeWeights repairs assessment weights so they sum to exactly
// 100, preserving order and count. Upstream extraction rounds each
// weight independently, so totals like 99 or 101 are common.
//
// Largest-remainder allocation: scale every weight by 100/sum, floor
// the results, then hand out the shortfall one point at a time to the
// items with the largest fractional remainders, ties broken by
// original position. A zero or negative total skips scaling and splits
// 100 as evenly as possible, first items getting the extra point.
func NormalizeWeights(assessments []types.Assessment) []types.Assessment {
	if len(assessments) == 0 {
		return assessments
	}

	out := make([]types.Assessment, len(assessments))
	copy(out, assessments)

	// Negative single weights have no meaning; treat them as zero before
	// summing so the scaled allocation stays non-negative.
	sum := 0
	for i := range out {
		if out[i].Weight < 0 {
			out[i].Weight = 0
		}
		sum += out[i].Weight
	}
	if sum == 100 {
		return out
	}

	if len(out) == 1 {
		out[0].Weight = 100
		return out
	}

	if sum <= 0 {
		base := 100 / len(out)
		extra := 100 % len(out)
		for i := range out {
			out[i].Weight = base
			if i < extra {
				out[i].Weight++
			}
		}
		return out
	}

	type share struct {
		index     int
		floor     int
		remainder float64
	}
	shares := make([]share, len(out))
	floorSum := 0
	for i, a := range out {
		ideal := float64(a.Weight) * 100 / float64(sum)
		fl := int(math.Floor(ideal))
		shares[i] = share{index: i, floor: fl, remainder: ideal - float64(fl)}
		floorSum += fl
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].remainder > shares[j].remainder
	})

	shortfall := 100 - floorSum
	for i := 0; i < shortfall && i < len(shares); i++ {
		shares[i].floor++
	}

	for _, s := range shares {
		out[s.index].Weight = s.floor
	}
	return out
}
