package dec96

import (
	"math/big"
	"math/bits"
)

// u96 is the magnitude store shared by Bits and Decimal. It keeps the
// layout of a 128-bit pair of limbs, but the upper 32 bits of hi are always
// zero; every operation that could set them masks them off again and reports
// the spill to the caller instead.
type u96 struct {
	hi, lo uint64
}

func u96FromWords(w0, w1, w2 uint32) u96 {
	return u96{hi: uint64(w2), lo: uint64(w1)<<32 | uint64(w0)}
}

func u96From64(v uint64) u96 { return u96{lo: v} }

// words splits u into the three 32-bit words of the packed layout, least
// significant first.
func (u u96) words() (w0, w1, w2 uint32) {
	return uint32(u.lo), uint32(u.lo >> 32), uint32(u.hi)
}

func (u u96) isZero() bool { return u == zeroU96 }

func (u u96) isAllOnes() bool { return u == maxU96 }

// bit returns the bit at position i, counted from the least significant end.
func (u u96) bit(i uint) uint {
	if i >= 64 {
		return uint(u.hi>>(i-64)) & 1
	}
	return uint(u.lo>>i) & 1
}

// add is a ripple-carry addition over the two limbs. carry reports a bit
// carried out of position 95.
func (u u96) add(n u96) (v u96, carry bool) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi = u.hi + n.hi + c
	carry = v.hi > hiMask
	v.hi &= hiMask
	return v, carry
}

func (u u96) and(n u96) u96 { return u96{hi: u.hi & n.hi, lo: u.lo & n.lo} }

func (u u96) xor(n u96) u96 { return u96{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }

// lsh shifts u towards the most significant end. Bits pushed past position 95
// are dropped.
func (u u96) lsh(n uint) (v u96) {
	if n == 0 {
		return u
	} else if n >= bitsLen {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	v.hi &= hiMask
	return v
}

func (u u96) cmp(n u96) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

// leadingZeros counts zero bits from position 95 down.
func (u u96) leadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 32
	}
	return uint(bits.LeadingZeros64(u.hi)) - 32
}

func (u u96) bitLen() uint { return bitsLen - u.leadingZeros() }

// mul multiplies u by m by summing copies of u shifted left by the position
// of each set bit of m. lost reports whether any bit of the true product fell
// outside the 96-bit window; v is meaningless when it does.
func (u u96) mul(m u96) (v u96, lost bool) {
	if u.isZero() || m.isZero() {
		return v, false
	}

	ulen := u.bitLen()
	mlen := m.bitLen()

	for i := uint(0); i < mlen; i++ {
		if m.bit(i) == 0 {
			continue
		}
		if ulen+i > bitsLen {
			lost = true
		}
		var carry bool
		v, carry = v.add(u.lsh(i))
		if carry {
			lost = true
		}
	}
	return v, lost
}

// mulPow10 multiplies u by 10^exp, working through the pow10 table in steps
// of at most MaxScale.
func (u u96) mulPow10(exp uint) (v u96, lost bool) {
	v = u
	for exp > 0 {
		step := exp
		if step > MaxScale {
			step = MaxScale
		}
		var l bool
		v, l = v.mul(pow10[step])
		lost = lost || l
		exp -= step
	}
	return v, lost
}

// lowMask returns a u96 with the least significant width bits set.
func lowMask(width uint) (m u96) {
	if width >= bitsLen {
		return maxU96
	} else if width > 64 {
		return u96{hi: (1 << (width - 64)) - 1, lo: maxUint64}
	} else if width == 64 {
		return u96{lo: maxUint64}
	}
	return u96{lo: (1 << width) - 1}
}

func (u u96) intoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Add(b, &lo)
}

func (u u96) asBigInt() *big.Int {
	var v big.Int
	u.intoBigInt(&v)
	return &v
}
