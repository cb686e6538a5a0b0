// Package hash contains common hash functions for building countmap
// hashers with integer tokens.
//
// All functions use the DJB algorithm. It is not collision-resistant;
// a hasher built from it groups keys by token, so adversarial keys can
// be made to share a count.
package hash

// DJBInit is the initial accumulator value of the DJB algorithm.
const DJBInit uint32 = 5381

// DJBCombine folds one more value into a DJB accumulator.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines the given values with the DJB algorithm, for hashing
// composite keys from the hashes of their parts.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// String hashes a string byte by byte.
func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

// UInt32 hashes a uint32 to itself.
func UInt32(u uint32) uint32 {
	return u
}

// UInt64 folds a uint64 into a 32-bit hash.
func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
