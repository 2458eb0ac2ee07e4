package dec96

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Bits is a signed binary magnitude of exactly 96 bits with a base-10 scale.
// It is the arithmetic engine behind Decimal: parsing, scale alignment and
// addition are all carried out on Bits and packed back afterwards.
//
// Bits are indexed from the most significant end; index 0 is bit 95 of the
// magnitude.
//
// Lsh, Invert and MulPow10 modify the receiver; every other operation
// returns a new value.
type Bits struct {
	sign  Sign
	scale int
	mag   u96
}

// BitsFromInt converts any signed integer to Bits with a scale of 0.
func BitsFromInt[T constraints.Signed](v T) Bits {
	n := int64(v)
	if n < 0 {
		return Bits{sign: Negative, mag: u96From64(^uint64(n) + 1)}
	}
	return Bits{mag: u96From64(uint64(n))}
}

func BitsFromUint64(v uint64) Bits { return Bits{mag: u96From64(v)} }

// BitsFromWords builds Bits from the three magnitude words of the packed
// layout, least significant first. The scale is not validated.
func BitsFromWords(sign Sign, scale int, words [3]uint32) Bits {
	return Bits{
		sign:  sign,
		scale: scale,
		mag:   u96FromWords(words[0], words[1], words[2]),
	}
}

// ParseBits parses a literal in radix 2 or 10.
//
// Radix 2 literals are read bit by bit and left-padded with zeros. Radix 10
// literals are accumulated one digit at a time: the running value is
// multiplied by ten with MulPow10(1) and the digit is added. A leading '-'
// makes the result Negative, '_' is ignored, and the number of digits after
// a '.' becomes the scale.
//
// Values that need more than 96 bits fail with ErrOverflow, or ErrUnderflow
// when negative. More than MaxScale fractional digits fail with a ScaleError.
func ParseBits(s string, radix int) (out Bits, err error) {
	lit, err := scanLiteral(s, radix)
	if err != nil {
		return out, err
	}
	if lit.scale > MaxScale {
		return out, ScaleError.New("%q has %d fractional digits, max %d", s, lit.scale, MaxScale)
	}

	out.sign = lit.sign
	out.scale = lit.scale

	switch radix {
	case 2:
		sig := lit.significant()
		if len(sig) > bitsLen {
			return Bits{}, rangeError(lit.sign)
		}
		for _, d := range sig {
			out.mag = out.mag.lsh(1)
			out.mag.lo |= uint64(d)
		}

	case 10:
		for _, d := range lit.significant() {
			if out.MulPow10(1) {
				return Bits{}, rangeError(lit.sign)
			}
			var carry bool
			out.mag, carry = out.mag.add(u96From64(uint64(d)))
			if carry {
				return Bits{}, rangeError(lit.sign)
			}
		}
	}

	return out, nil
}

// MustParseBits is like ParseBits but panics if the literal cannot be parsed.
func MustParseBits(s string, radix int) Bits {
	b, err := ParseBits(s, radix)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bits) Sign() Sign { return b.sign }
func (b Bits) Scale() int { return b.scale }

// Word returns the i'th 32-bit word of the magnitude, 0 being the least
// significant. It panics if i is not 0, 1 or 2.
func (b Bits) Word(i int) uint32 {
	w0, w1, w2 := b.mag.words()
	switch i {
	case 0:
		return w0
	case 1:
		return w1
	case 2:
		return w2
	}
	panic("dec96: word index out of range")
}

// Bit returns the bit at index i, counted from the most significant end.
func (b Bits) Bit(i int) uint {
	return b.mag.bit(uint(bitsLen - 1 - i))
}

// IsZero reports whether every bit of the magnitude is 0. The sign and scale
// are ignored.
func (b Bits) IsZero() bool { return b.mag.isZero() }

// IsAllOnes reports whether every bit of the magnitude is 1.
func (b Bits) IsAllOnes() bool { return b.mag.isAllOnes() }

// Lsh drops the n most significant bits and appends n zero bits at the
// least significant end. Nothing reports the lost bits.
func (b *Bits) Lsh(n uint) {
	b.mag = b.mag.lsh(n)
}

// Invert flips the least significant width bits.
func (b *Bits) Invert(width uint) {
	b.mag = b.mag.xor(lowMask(width))
}

// MulPow10 multiplies the magnitude by 10^exp using shift-and-add. The scale
// is left alone. lost reports whether the product needed more than 96 bits,
// in which case the magnitude is left truncated.
func (b *Bits) MulPow10(exp int) (lost bool) {
	if exp <= 0 {
		return false
	}
	b.mag, lost = b.mag.mulPow10(uint(exp))
	return lost
}

// MostSignificant returns the index of the first 1 bit from the most
// significant end. ok is false if the magnitude is zero.
func (b Bits) MostSignificant() (idx int, ok bool) {
	if b.mag.isZero() {
		return 0, false
	}
	return int(b.mag.leadingZeros()), true
}

// CmpMagnitude compares the unsigned magnitudes of b and n, returning -1, 0
// or +1.
func (b Bits) CmpMagnitude(n Bits) int {
	return b.mag.cmp(n.mag)
}

// AddWidth adds n to b but only keeps the least significant width bits of
// the sum. The result has b's sign and scale.
func (b Bits) AddWidth(n Bits, width uint) Bits {
	sum, _ := b.mag.add(n.mag)
	return Bits{sign: b.sign, scale: b.scale, mag: sum.and(lowMask(width))}
}

// Add returns b+n. Both operands are expected to share a scale; the result
// takes b's. A carry out of the 96th bit is discarded, see AddCarry.
func (b Bits) Add(n Bits) Bits {
	out, _ := b.AddCarry(n)
	return out
}

// AddCarry returns b+n and whether the magnitude of the sum overflowed 96
// bits, which can only happen when the signs match.
//
// When the signs differ, the smaller magnitude is negated in two's
// complement over the significant width of the larger one and added to it;
// the result takes the larger operand's sign. A zero result is always
// Positive and keeps b's scale.
func (b Bits) AddCarry(n Bits) (out Bits, carry bool) {
	if b.sign == n.sign {
		out.sign = b.sign
		out.scale = b.scale
		out.mag, carry = b.mag.add(n.mag)
		if !carry && out.mag.isZero() {
			out.sign = Positive
		}
		return out, carry
	}

	larger, smaller := orderByMagnitude(b, n)

	idx, ok := larger.MostSignificant()
	if !ok || larger.mag == smaller.mag {
		return Bits{scale: b.scale}, false
	}
	width := uint(bitsLen - idx)

	smaller.Invert(width)
	smaller.mag, _ = smaller.mag.add(u96From64(1))

	out = larger.AddWidth(smaller, width)
	out.scale = b.scale
	return out, false
}

// BinaryString renders the magnitude as 96 '0' and '1' characters, most
// significant first.
func (b Bits) BinaryString() string {
	var sb strings.Builder
	sb.Grow(bitsLen)
	for i := 0; i < bitsLen; i++ {
		sb.WriteByte('0' + byte(b.Bit(i)))
	}
	return sb.String()
}

func (b Bits) String() string {
	return DigitsFromBits(b).String()
}
