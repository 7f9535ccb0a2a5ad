package signature_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphvec/gen"
	"github.com/katalvlaran/graphvec/neighborhood"
	"github.com/katalvlaran/graphvec/signature"
)

// BenchmarkEncode measures refinement cost on neighborhoods of growing
// radius over a fixed random graph.
func BenchmarkEncode(b *testing.B) {
	g, err := gen.Random(200, 0.05, gen.WithSeed(42), gen.WithNodeLabels("C", "N", "O"))
	if err != nil {
		b.Fatalf("generate: %v", err)
	}

	for _, radius := range []int{1, 2, 3} {
		nb, nerr := neighborhood.Extract(g, 0, radius)
		if nerr != nil {
			b.Fatalf("extract: %v", nerr)
		}
		b.Run("r"+strconv.Itoa(radius), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = signature.Encode(nb)
			}
		})
	}
}
