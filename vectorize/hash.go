package vectorize

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/graphvec/signature"
)

// pairFeature combines two neighborhood signatures with the radius and
// the pairwise distance into one 64-bit feature id. Signatures are
// ordered numerically first, so the id is symmetric in its endpoints:
// "these two r-neighborhoods co-occur at exactly this distance".
func pairFeature(a, b signature.Signature, radius, dist int) uint64 {
	if a > b {
		a, b = b, a
	}
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(a))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(b))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(radius))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(dist))

	return xxhash.Sum64(buf[:])
}

// fold maps a 64-bit feature id into [0, 2^bits) by masking the low
// bits. Masking (rather than modulo) keeps the fold a pure bit
// selection, preserving the hash's output distribution when the index
// space divides the hash width.
func fold(id uint64, bits uint) uint64 {
	return id & ((uint64(1) << bits) - 1)
}
