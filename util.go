package dec96

type RandSource interface {
	Uint64() uint64
}

// RandBits generates a positive random magnitude of up to 96 bits with a
// scale of 0.
func RandBits(source RandSource) Bits {
	return Bits{mag: u96{hi: source.Uint64() & hiMask, lo: source.Uint64()}}
}

// orderByMagnitude returns a and b ordered by their unsigned magnitude. If the
// magnitudes are equal, a is returned first.
func orderByMagnitude(a, b Bits) (larger, smaller Bits) {
	if a.mag.cmp(b.mag) >= 0 {
		return a, b
	}
	return b, a
}
