package vectorize

// Test-only exports of internal hashing helpers, so black-box tests can
// predict exact feature indices.
var (
	PairFeature = pairFeature
	Fold        = fold
)
