package expr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a hash of the tree's exact structure. Two trees
// with the same fingerprint are structurally identical for practical
// purposes; the solver uses this to skip the full equivalence scan for
// exact duplicates. It is not equivalence-aware: commuted or
// degenerate-equal trees hash differently.
func Fingerprint(e *Evaluated) uint64 {
	d := xxhash.New()
	var buf [1 + binary.MaxVarintLen64]byte
	writeFingerprint(d, e, buf[:])
	return d.Sum64()
}

func writeFingerprint(d *xxhash.Digest, e *Evaluated, buf []byte) {
	if e.IsLeaf() {
		buf[0] = 0xff
		n := binary.PutVarint(buf[1:], e.value)
		d.Write(buf[:n+1])
		return
	}
	buf[0] = byte(e.op)
	d.Write(buf[:1])
	writeFingerprint(d, e.left, buf)
	writeFingerprint(d, e.right, buf)
}
