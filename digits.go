package dec96

import (
	"strings"
)

// Digits is a signed decimal magnitude of exactly 64 digits, most
// significant first, with the decimal point sitting scale digits from the
// least significant end.
//
// Digits is an alternative to Bits that does all its work in base 10: it
// can hold values well beyond the range of a Decimal, and it is the engine
// used for rendering and rounding.
type Digits struct {
	sign  Sign
	scale int
	d     [digitsLen]uint8
}

// ParseDigits parses a base-10 literal: an optional leading '-', digits with
// optional '_' separators and at most one '.'. A literal with more than 64
// significant digits, or more than 64 fractional digits, fails with a
// LengthError.
func ParseDigits(s string) (out Digits, err error) {
	lit, err := scanLiteral(s, 10)
	if err != nil {
		return out, err
	}

	sig := lit.significant()
	if len(sig) > digitsLen || lit.scale > digitsLen {
		return out, LengthError.New("%q does not fit in %d digits", s, digitsLen)
	}

	out.sign = lit.sign
	out.scale = lit.scale
	copy(out.d[digitsLen-len(sig):], sig)
	return out, nil
}

// MustParseDigits is like ParseDigits but panics if the literal cannot be
// parsed.
func MustParseDigits(s string) Digits {
	d, err := ParseDigits(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DigitsFromBytes builds a positive, unscaled Digits from a buffer of ASCII
// digits. Buffers shorter than 64 bytes are right-aligned; longer ones fail
// with a LengthError.
func DigitsFromBytes(buf []byte) (out Digits, err error) {
	if len(buf) > digitsLen {
		return out, LengthError.New("expected at most %d digits, found %d", digitsLen, len(buf))
	}
	off := digitsLen - len(buf)
	for i, c := range buf {
		if c < '0' || c > '9' {
			return Digits{}, SyntaxError.New("byte %q at offset %d is not a digit", c, i)
		}
		out.d[off+i] = c - '0'
	}
	return out, nil
}

// DigitsFromBits converts a binary magnitude to decimal by summing the powers
// of two for each set bit. Sign and scale are carried across untouched.
func DigitsFromBits(b Bits) Digits {
	var out Digits
	pow := Digits{}
	pow.d[digitsLen-1] = 1

	for i := uint(0); i < b.mag.bitLen(); i++ {
		if b.mag.bit(i) == 1 {
			out.addMagnitude(pow)
		}
		pow.addMagnitude(pow)
	}

	out.sign = b.sign
	out.scale = b.scale
	return out
}

func (d Digits) Sign() Sign { return d.sign }
func (d Digits) Scale() int { return d.scale }

func (d Digits) IsZero() bool {
	for _, v := range d.d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of significant digits, ignoring leading zeros.
func (d Digits) Len() int {
	for i, v := range d.d {
		if v != 0 {
			return digitsLen - i
		}
	}
	return 0
}

// Bits converts d to a binary magnitude, failing with ErrOverflow or
// ErrUnderflow if it needs more than 96 bits and with a ScaleError if its
// scale is above MaxScale.
func (d Digits) Bits() (out Bits, err error) {
	if d.scale > MaxScale {
		return out, ScaleError.New("%d", d.scale)
	}
	out.sign = d.sign
	out.scale = d.scale

	for _, v := range d.d[digitsLen-d.Len():] {
		if out.MulPow10(1) {
			return Bits{}, rangeError(d.sign)
		}
		var carry bool
		out.mag, carry = out.mag.add(u96From64(uint64(v)))
		if carry {
			return Bits{}, rangeError(d.sign)
		}
	}
	return out, nil
}

// Rescale moves the digit window by delta positions. A positive delta
// multiplies by 10^delta and raises the scale; it fails with ErrOverflow or
// ErrUnderflow if a non-zero digit would be pushed out. A negative delta
// drops the |delta| least significant digits and lowers the scale; it fails
// with a ScaleError if the scale would go below zero.
func (d Digits) Rescale(delta int) (Digits, error) {
	out := d

	switch {
	case delta > 0:
		if d.scale+delta > digitsLen {
			return d, ScaleError.New("cannot rescale %d by %d", d.scale, delta)
		}
		if delta == digitsLen {
			if !d.IsZero() {
				return d, rangeError(d.sign)
			}
			out.scale += delta
			return out, nil
		}
		for _, v := range d.d[:delta] {
			if v != 0 {
				return d, rangeError(d.sign)
			}
		}
		copy(out.d[:], d.d[delta:])
		for i := digitsLen - delta; i < digitsLen; i++ {
			out.d[i] = 0
		}
		out.scale += delta

	case delta < 0:
		if d.scale+delta < 0 {
			return d, ScaleError.New("cannot rescale %d by %d", d.scale, delta)
		}
		n := -delta
		if n >= digitsLen {
			out.d = [digitsLen]uint8{}
		} else {
			copy(out.d[n:], d.d[:digitsLen-n])
			for i := 0; i < n; i++ {
				out.d[i] = 0
			}
		}
		out.scale += delta
	}

	return out, nil
}

// Add returns d+n, aligned to the larger of the two scales.
func (d Digits) Add(n Digits) (Digits, error) {
	out := d
	if err := out.Accumulate(n); err != nil {
		return d, err
	}
	return out, nil
}

// Accumulate adds n to d in place. On error, d is left unchanged.
//
// When the signs differ, the smaller magnitude is subtracted from the larger
// and the result takes the larger operand's sign. A zero result is Positive
// and keeps the aligned scale.
func (d *Digits) Accumulate(n Digits) (err error) {
	left, right := *d, n

	if left.scale < right.scale {
		if left, err = left.Rescale(right.scale - left.scale); err != nil {
			return err
		}
	} else if left.scale > right.scale {
		if right, err = right.Rescale(left.scale - right.scale); err != nil {
			return err
		}
	}

	if left.sign == right.sign {
		if left.addMagnitude(right) {
			return rangeError(left.sign)
		}
		if left.IsZero() {
			left.sign = Positive
		}
		*d = left
		return nil
	}

	switch left.cmpMagnitude(right) {
	case 0:
		*d = Digits{scale: left.scale}
		return nil
	case -1:
		left, right = right, left
	}

	var borrow int8
	for i := digitsLen - 1; i >= 0; i-- {
		v := int8(left.d[i]) - int8(right.d[i]) - borrow
		borrow = 0
		if v < 0 {
			v += 10
			borrow = 1
		}
		left.d[i] = uint8(v)
	}

	*d = left
	return nil
}

// addMagnitude is a digit-by-digit ripple-carry addition of n into d,
// ignoring sign and scale. It reports a carry out of the most significant
// digit.
func (d *Digits) addMagnitude(n Digits) (carry bool) {
	var c uint8
	for i := digitsLen - 1; i >= 0; i-- {
		v := d.d[i] + n.d[i] + c
		c = 0
		if v >= 10 {
			v -= 10
			c = 1
		}
		d.d[i] = v
	}
	return c != 0
}

func (d Digits) cmpMagnitude(n Digits) int {
	for i := 0; i < digitsLen; i++ {
		if d.d[i] > n.d[i] {
			return 1
		} else if d.d[i] < n.d[i] {
			return -1
		}
	}
	return 0
}

// Truncate drops every fractional digit, leaving an integer with a scale of
// zero.
func (d Digits) Truncate() Digits {
	out, _ := d.Rescale(-d.scale)
	if out.IsZero() {
		out.sign = Positive
	}
	return out
}

// RoundHalfEven rounds d to an integer. A discarded fraction of exactly one
// half rounds to the nearest even integer.
func (d Digits) RoundHalfEven() (Digits, error) {
	return d.RoundHalfEvenTo(0)
}

// RoundHalfEvenTo rounds d to the given scale using banker's rounding. It
// returns d unchanged if d already has no more than scale fractional digits.
func (d Digits) RoundHalfEvenTo(scale int) (Digits, error) {
	if scale < 0 {
		return d, ScaleError.New("%d", scale)
	}
	if d.scale <= scale {
		return d, nil
	}

	drop := d.scale - scale
	boundary := digitsLen - drop
	first := d.d[boundary]
	rest := false
	for _, v := range d.d[boundary+1:] {
		if v != 0 {
			rest = true
			break
		}
	}

	out, err := d.Rescale(-drop)
	if err != nil {
		return d, err
	}

	odd := out.d[digitsLen-1]%2 == 1
	if first > 5 || (first == 5 && (rest || odd)) {
		var unit Digits
		unit.d[digitsLen-1] = 1
		if out.addMagnitude(unit) {
			return d, rangeError(d.sign)
		}
	}

	if out.IsZero() {
		out.sign = Positive
	}
	return out, nil
}

func (d Digits) digitString() string {
	var sb strings.Builder
	sb.Grow(digitsLen)
	for _, v := range d.d {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}

// IntegerPart returns the digits left of the decimal point with leading
// zeros removed, or "0".
func (d Digits) IntegerPart() string {
	s := d.digitString()[:digitsLen-d.scale]
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// FractionPart returns exactly Scale() digits from the right of the decimal
// point.
func (d Digits) FractionPart() string {
	return d.digitString()[digitsLen-d.scale:]
}

// String renders d as [-]digits[.digits]. The fractional part is present
// only when the scale is above zero.
func (d Digits) String() string {
	var sb strings.Builder
	if d.sign == Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(d.IntegerPart())
	if d.scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(d.FractionPart())
	}
	return sb.String()
}
