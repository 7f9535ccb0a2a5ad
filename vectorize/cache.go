package vectorize

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/neighborhood"
	"github.com/katalvlaran/graphvec/signature"
)

// sigKey identifies one canonical signature: the graph instance, the
// root node, and the neighborhood radius. The graph identity component
// keeps structurally equal but distinct graphs from sharing entries.
type sigKey struct {
	graph  uint64
	root   core.NodeID
	radius int
}

// sigSource resolves canonical signatures for one Vectorize call.
// It always memoizes within the call (every node pair re-reads the same
// signatures), and optionally reads/writes the vectorizer's shared LRU.
type sigSource struct {
	g      *core.Graph
	local  map[sigKey]signature.Signature
	shared *lru.Cache[sigKey, signature.Signature] // nil when disabled
}

func newSigSource(g *core.Graph, shared *lru.Cache[sigKey, signature.Signature]) *sigSource {
	return &sigSource{
		g:      g,
		local:  make(map[sigKey]signature.Signature),
		shared: shared,
	}
}

// get returns the canonical signature of root's radius-r neighborhood,
// extracting and encoding it on first use.
func (s *sigSource) get(root core.NodeID, radius int) (signature.Signature, error) {
	key := sigKey{graph: s.g.ID(), root: root, radius: radius}
	if sig, ok := s.local[key]; ok {
		return sig, nil
	}
	if s.shared != nil {
		if sig, ok := s.shared.Get(key); ok {
			s.local[key] = sig
			return sig, nil
		}
	}

	nb, err := neighborhood.Extract(s.g, root, radius)
	if err != nil {
		return 0, err
	}
	sig := signature.Encode(nb)
	s.local[key] = sig
	if s.shared != nil {
		s.shared.Add(key, sig)
	}

	return sig, nil
}
