package signature

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/neighborhood"
)

// Signature is a renumbering-invariant 64-bit fingerprint of a rooted,
// labeled neighborhood subgraph.
type Signature uint64

// halfEdge is one adjacency entry inside a neighborhood: the member
// index of the far endpoint plus the hashed edge label.
type halfEdge struct {
	to        int
	edgeLabel uint64
}

// refinePair is one multiset entry folded into a node's next color.
type refinePair struct {
	color     uint64
	edgeLabel uint64
}

// Encode computes the canonical signature of nb. Pure and deterministic;
// nil yields the zero Signature.
// Complexity: O(R·(V log V + E)) for V members, E induced edges,
// R = radius+1 refinement rounds.
func Encode(nb *neighborhood.Neighborhood) Signature {
	if nb == nil {
		return 0
	}

	// Member index: neighborhood-local numbering. The final sort makes
	// the result independent of this numbering; it is plumbing only.
	index := make(map[core.NodeID]int, len(nb.Members))
	for i, m := range nb.Members {
		index[m.ID] = i
	}
	adj := make([][]halfEdge, len(nb.Members))
	for _, e := range nb.Edges {
		u, v := index[e.U], index[e.V]
		lh := hashString(e.Label)
		adj[u] = append(adj[u], halfEdge{to: v, edgeLabel: lh})
		adj[v] = append(adj[v], halfEdge{to: u, edgeLabel: lh})
	}

	// Round 0: seed colors from (label, distance-from-root).
	colors := make([]uint64, len(nb.Members))
	for i, m := range nb.Members {
		colors[i] = hashSeed(m.Label, m.Dist)
	}

	// Rounds 1..radius+1: fold in the sorted neighbor multiset.
	next := make([]uint64, len(colors))
	pairs := make([]refinePair, 0, 8)
	for round := 0; round <= nb.Radius; round++ {
		for i := range colors {
			pairs = pairs[:0]
			for _, he := range adj[i] {
				pairs = append(pairs, refinePair{color: colors[he.to], edgeLabel: he.edgeLabel})
			}
			sort.Slice(pairs, func(a, b int) bool {
				if pairs[a].color != pairs[b].color {
					return pairs[a].color < pairs[b].color
				}
				return pairs[a].edgeLabel < pairs[b].edgeLabel
			})
			next[i] = hashRefinement(colors[i], pairs)
		}
		colors, next = next, colors
	}

	// Order-independence: sort the final colors before combining.
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	d := xxhash.New()
	writeU64(d, uint64(nb.Radius))
	for _, c := range colors {
		writeU64(d, c)
	}

	return Signature(d.Sum64())
}

// hashString hashes a discrete label token.
func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// hashSeed produces the round-0 color from a node label and its
// distance-from-root tag.
func hashSeed(label string, dist int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(label)
	writeU64(d, uint64(dist))

	return d.Sum64()
}

// hashRefinement folds a node's current color and its sorted neighbor
// multiset into the next color.
func hashRefinement(color uint64, pairs []refinePair) uint64 {
	d := xxhash.New()
	writeU64(d, color)
	for _, p := range pairs {
		writeU64(d, p.color)
		writeU64(d, p.edgeLabel)
	}

	return d.Sum64()
}

// writeU64 appends one little-endian 64-bit word to a running digest.
func writeU64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}
