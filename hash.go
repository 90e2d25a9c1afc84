package strvals

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit hash of the canonical sequence of v.  Values that
// are Equal hash identically whichever constructor produced them.
//
// The hashed bytes are the binary form minus its header, so elements are
// length-prefixed and ["a,b"] hashes differently from ["a","b"].
func (v Values) Hash() uint64 {
	d := xxhash.New()
	writeBody(d, v)
	return d.Sum64()
}
