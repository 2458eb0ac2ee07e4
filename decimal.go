package dec96

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Decimal is a fixed-point decimal number packed into four 32-bit words.
// words[0] to words[2] hold a 96-bit unsigned magnitude, least significant
// word first. words[3] holds the sign in bit 31 (set when negative) and the
// scale, 0 to MaxScale, in bits 16 to 23; every other bit is zero.
//
// The value is magnitude / 10^scale. Decimal is a comparable value type, but
// == compares representations: 1.0 and 1.00 are not equal.
type Decimal struct {
	words [4]uint32
}

// New creates a Decimal of v / 10^scale.
func New(v int32, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, ScaleError.New("%d", scale)
	}
	d := FromInt(v)
	d.setScale(scale)
	return d, nil
}

// FromInt converts any signed integer to a Decimal with a scale of 0. Every
// integer of 64 bits or less fits.
func FromInt[T constraints.Signed](v T) Decimal {
	d, _ := FromBits(BitsFromInt(v))
	return d
}

// FromWords builds a Decimal from its packed representation. It fails if any
// reserved bit of the flags word is set or the scale is above MaxScale.
func FromWords(words [4]uint32) (Decimal, error) {
	if words[3]&^flagsMask != 0 {
		return Decimal{}, Error.New("reserved bits set in flags word %#08x", words[3])
	}
	d := Decimal{words: words}
	if s := d.Scale(); s > MaxScale {
		return Decimal{}, ScaleError.New("%d", s)
	}
	return d, nil
}

// FromBits packs b into a Decimal. It fails with a ScaleError if the scale of
// b is outside 0 to MaxScale.
func FromBits(b Bits) (Decimal, error) {
	if b.scale < 0 || b.scale > MaxScale {
		return Decimal{}, ScaleError.New("%d", b.scale)
	}
	var d Decimal
	d.words[0], d.words[1], d.words[2] = b.mag.words()
	d.setSign(b.sign)
	d.setScale(b.scale)
	return d, nil
}

// Parse parses a literal in radix 2 or 10; see ParseBits for the accepted
// syntax.
func Parse(s string, radix int) (Decimal, error) {
	b, err := ParseBits(s, radix)
	if err != nil {
		return Decimal{}, err
	}
	return FromBits(b)
}

// MustParse parses a base-10 literal and panics if it is invalid.
func MustParse(s string) Decimal {
	d, err := Parse(s, 10)
	if err != nil {
		panic(err)
	}
	return d
}

// Words returns the packed representation; see FromWords.
func (d Decimal) Words() [4]uint32 { return d.words }

func (d Decimal) Sign() Sign {
	if d.words[3]&signFlag != 0 {
		return Negative
	}
	return Positive
}

func (d Decimal) Scale() int {
	return int((d.words[3] & scaleMask) >> scaleShift)
}

func (d *Decimal) setSign(s Sign) {
	if s == Negative {
		d.words[3] |= signFlag
	} else {
		d.words[3] &^= signFlag
	}
}

// setScale writes the scale field without touching the sign bit. The caller
// is responsible for the range.
func (d *Decimal) setScale(scale int) {
	d.words[3] = (d.words[3] &^ scaleMask) | (uint32(scale)<<scaleShift)&scaleMask
}

func (d Decimal) mag() u96 {
	return u96FromWords(d.words[0], d.words[1], d.words[2])
}

// Neg returns d with its sign flipped.
func (d Decimal) Neg() Decimal {
	d.words[3] ^= signFlag
	return d
}

// IsZero reports whether the magnitude is zero, regardless of sign or scale.
func (d Decimal) IsZero() bool { return d.mag().isZero() }

// IsMax reports whether d is positive with every magnitude bit set. The
// scale is ignored, so 7.9228162514264337593543950335 is also a maximum.
func (d Decimal) IsMax() bool {
	return d.Sign() == Positive && d.mag().isAllOnes()
}

// IsMin reports whether d is negative with every magnitude bit set.
func (d Decimal) IsMin() bool {
	return d.Sign() == Negative && d.mag().isAllOnes()
}

// Bits unpacks the magnitude, carrying sign and scale across.
func (d Decimal) Bits() Bits {
	return BitsFromWords(d.Sign(), d.Scale(), [3]uint32{d.words[0], d.words[1], d.words[2]})
}

func (d Decimal) Digits() Digits {
	return DigitsFromBits(d.Bits())
}

// Normalize raises the scale of d to target, multiplying the magnitude by
// 10^(target-scale) so the value is unchanged. It fails with a ScaleError if
// target is below the current scale or above MaxScale, and with ErrOverflow
// or ErrUnderflow if the scaled magnitude needs more than 96 bits.
func (d Decimal) Normalize(target int) (Decimal, error) {
	scale := d.Scale()
	if target < scale || target > MaxScale {
		return Decimal{}, ScaleError.New("cannot normalize scale %d to %d", scale, target)
	}
	b := d.Bits()
	if b.MulPow10(target - scale) {
		return Decimal{}, rangeError(b.sign)
	}
	b.scale = target
	return FromBits(b)
}

func (d Decimal) String() string {
	return d.Digits().String()
}

// Format implements fmt.Formatter. It supports 'v', 's' and 'q'.
func (d Decimal) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		fmt.Fprint(s, d.String())
	case 'q':
		fmt.Fprint(s, strconv.Quote(d.String()))
	default:
		fmt.Fprintf(s, "%%!%c(dec96.Decimal=%s)", c, d.String())
	}
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts), 10)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Decimal) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return SyntaxError.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse(string(bts), 10)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
