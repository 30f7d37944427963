// Package groupplan derives Reed-Solomon group parameters (group size,
// parity-per-group, number of groups) from a data-block count and a
// desired FEC ratio, splitting a file into multiple RS groups whenever
// a single codeword would exceed the 255-symbol RS(255,*) limit.
package groupplan

import "fmt"

// Plan is the output of Compute: GS data blocks per group, M parity
// blocks per group, G groups.
type Plan struct {
	GS int
	M  int
	G  int
}

// Ratio is a FEC ratio expressed as num/den, e.g. 25/100 for 25% parity.
type Ratio struct {
	Num int
	Den int
}

// Compute derives group parameters for k data blocks under ratio.
// Constraints enforced on the result: GS+M <= 255, 1 <= M <= 127,
// G >= 1, G*GS >= k.
func Compute(k int, ratio Ratio) (Plan, error) {
	if k < 1 {
		return Plan{}, fmt.Errorf("groupplan: k must be >= 1, got %d", k)
	}
	if ratio.Num <= 0 || ratio.Den <= 0 || ratio.Num > ratio.Den {
		return Plan{}, fmt.Errorf("groupplan: invalid ratio %d/%d", ratio.Num, ratio.Den)
	}

	mDesired := ceilDiv(k*ratio.Num, ratio.Den)
	if mDesired < 1 {
		mDesired = 1
	}

	if k+mDesired <= 255 {
		return Plan{GS: k, M: mDesired, G: 1}, nil
	}

	m := (ratio.Num*255 + (ratio.Num+ratio.Den)/2) / (ratio.Num + ratio.Den)
	if m < 1 {
		m = 1
	}
	if m > 127 {
		m = 127
	}
	gs := 255 - m
	g := ceilDiv(k, gs)

	return Plan{GS: gs, M: m, G: g}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Members returns, in ascending order, the data-block indices assigned
// to group g out of G groups over k total data blocks (block i belongs
// to group i mod G).
func Members(k, g, numGroups int) []int {
	var out []int
	for i := g; i < k; i += numGroups {
		out = append(out, i)
	}
	return out
}
