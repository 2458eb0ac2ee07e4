package dec96

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestParseDigits(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		out   string
		sign  Sign
		scale int
		ln    int
	}{
		{"0", "0", Positive, 0, 0},
		{"1", "1", Positive, 0, 1},
		{"-1", "-1", Negative, 0, 1},
		{"-0.1", "-0.1", Negative, 1, 1},
		{"00120", "120", Positive, 0, 3},
		{"-0.0000000000000000000000000001", "-0.0000000000000000000000000001", Negative, 28, 1},
		{"123_456_234", "123456234", Positive, 0, 9},
		{strings.Repeat("9", digitsLen), strings.Repeat("9", digitsLen), Positive, 0, digitsLen},
		{"0." + strings.Repeat("0", 63) + "1", "0." + strings.Repeat("0", 63) + "1", Positive, 64, 1},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d, err := ParseDigits(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, d.String())
			tt.MustEqual(tc.sign, d.Sign())
			tt.MustEqual(tc.scale, d.Scale())
			tt.MustEqual(tc.ln, d.Len())
		})
	}
}

func TestParseDigitsErrors(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		check func(err error) bool
	}{
		{"1" + strings.Repeat("0", digitsLen), LengthError.Has},
		{"0." + strings.Repeat("0", digitsLen+1), LengthError.Has},
		{"", SyntaxError.Has},
		{"1.2.3", SyntaxError.Has},
		{"1e5", SyntaxError.Has},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := ParseDigits(tc.in)
			tt.MustAssert(err != nil)
			tt.MustAssert(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func TestDigitsFromBytes(t *testing.T) {
	tt := assert.WrapTB(t)

	d, err := DigitsFromBytes([]byte("0123"))
	tt.MustOK(err)
	tt.MustEqual("123", d.String())
	tt.MustEqual(Positive, d.Sign())
	tt.MustEqual(0, d.Scale())

	d, err = DigitsFromBytes(nil)
	tt.MustOK(err)
	tt.MustAssert(d.IsZero())

	_, err = DigitsFromBytes([]byte(strings.Repeat("1", digitsLen+1)))
	tt.MustAssert(LengthError.Has(err))

	_, err = DigitsFromBytes([]byte("12x"))
	tt.MustAssert(SyntaxError.Has(err))
}

func TestDigitsFromBits(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("79228162514264337593543950335", DigitsFromBits(MaxDecimal.Bits()).String())
	tt.MustEqual("-79228162514264337593543950335", DigitsFromBits(MinDecimal.Bits()).String())
	tt.MustEqual("0", DigitsFromBits(Bits{}).String())
	tt.MustEqual("-4.5", DigitsFromBits(MustParseBits("-4.5", 10)).String())
	tt.MustEqual("45", DigitsFromBits(bitss("101101")).String())

	for i := 0; i < 1000; i++ {
		v := randBigU96(nil)
		tt.MustEqual(v.String(), DigitsFromBits(Bits{mag: u96FromBig(v)}).String())
	}
}

func TestDigitsBits(t *testing.T) {
	tt := assert.WrapTB(t)

	b, err := digs("-4.5").Bits()
	tt.MustOK(err)
	tt.MustEqual(MustParseBits("-4.5", 10), b)

	b, err = digs("79228162514264337593543950335").Bits()
	tt.MustOK(err)
	tt.MustAssert(b.IsAllOnes())

	_, err = digs("79228162514264337593543950336").Bits()
	tt.MustEqual(ErrOverflow, err)

	_, err = digs("-79228162514264337593543950336").Bits()
	tt.MustEqual(ErrUnderflow, err)

	_, err = digs("0." + strings.Repeat("0", 28) + "1").Bits()
	tt.MustAssert(ScaleError.Has(err))
}

func TestDigitsRescale(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		delta int
		out   string
	}{
		{"12", 0, "12"},
		{"12", 2, "12.00"},
		{"-1.5", 3, "-1.5000"},
		{"1.25", -1, "1.2"},
		{"1.29", -2, "1"},
		{"0.001", -3, "0"},
		{"0", digitsLen, "0." + strings.Repeat("0", digitsLen)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := digs(tc.in).Rescale(tc.delta)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out.String())
		})
	}

	t.Run("errors", func(t *testing.T) {
		tt := assert.WrapTB(t)

		_, err := digs("5").Rescale(-1)
		tt.MustAssert(ScaleError.Has(err))

		_, err = digs("5").Rescale(digitsLen + 1)
		tt.MustAssert(ScaleError.Has(err))

		full := strings.Repeat("9", digitsLen)
		_, err = digs(full).Rescale(1)
		tt.MustEqual(ErrOverflow, err)

		_, err = digs("-" + full).Rescale(1)
		tt.MustEqual(ErrUnderflow, err)

		_, err = digs("1").Rescale(digitsLen)
		tt.MustEqual(ErrOverflow, err)

		in := digs("1" + strings.Repeat("0", digitsLen-1))
		out, err := in.Rescale(1)
		tt.MustEqual(ErrOverflow, err)
		tt.MustEqual(in, out)
	})
}

func TestDigitsAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b string
		out  string
	}{
		{"1", "1", "2"},
		{"0", "0", "0"},
		{"4.5", "0.01", "4.51"},
		{"45", "-1", "44"},
		{"1", "-45", "-44"},
		{"-1", "45", "44"},
		{"-45", "1", "-44"},
		{"-10", "-5", "-15"},
		{"0.5", "-0.5", "0.0"},
		{"-0.5", "0.5", "0.0"},
		{"-0", "-0", "0"},
		{"999", "1", "1000"},
		{"1000", "-1", "999"},
		{"-0.005", "5", "4.995"},
		{"0.00005", "0.00005", "0.00010"},
		{
			"79228162514264337593543950335", "0.9228162514264337593543950335",
			"79228162514264337593543950335.9228162514264337593543950335",
		},
		{
			"79228162514264337593543950335", "79228162514264337593543950335",
			"158456325028528675187087900670",
		},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := digs(tc.a).Add(digs(tc.b))
			tt.MustOK(err)
			tt.MustEqual(tc.out, out.String())

			rev, err := digs(tc.b).Add(digs(tc.a))
			tt.MustOK(err)
			tt.MustEqual(out, rev)
		})
	}
}

func TestDigitsAddErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	full := strings.Repeat("9", digitsLen)

	_, err := digs(full).Add(digs("1"))
	tt.MustEqual(ErrOverflow, err)

	_, err = digs("-" + full).Add(digs("-1"))
	tt.MustEqual(ErrUnderflow, err)

	// Aligning the integer to one fractional digit pushes a 9 out.
	_, err = digs(full).Add(digs("0.1"))
	tt.MustEqual(ErrOverflow, err)

	acc := digs(full)
	tt.MustEqual(ErrOverflow, acc.Accumulate(digs("1")))
	tt.MustEqual(digs(full), acc)
}

func TestDigitsAccumulate(t *testing.T) {
	tt := assert.WrapTB(t)

	var acc Digits
	for _, v := range []string{"1.5", "2.25", "-0.75", "100", "-3"} {
		tt.MustOK(acc.Accumulate(digs(v)))
	}
	tt.MustEqual("100.00", acc.String())
	tt.MustEqual(2, acc.Scale())
}

func TestDigitsTruncate(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("12", digs("12.99").Truncate().String())
	tt.MustEqual("-12", digs("-12.99").Truncate().String())
	tt.MustEqual("7", digs("7").Truncate().String())

	z := digs("-0.9").Truncate()
	tt.MustEqual("0", z.String())
	tt.MustEqual(Positive, z.Sign())
	tt.MustEqual(0, z.Scale())
}

func TestDigitsRoundHalfEven(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		scale int
		out   string
	}{
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"-2.5", 0, "-2"},
		{"-3.5", 0, "-4"},
		{"2.51", 0, "3"},
		{"2.49", 0, "2"},
		{"2.500", 0, "2"},
		{"0.5", 0, "0"},
		{"-0.4", 0, "0"},
		{"9.5", 0, "10"},
		{"-9.9", 0, "-10"},
		{"7", 0, "7"},
		{"1.25", 1, "1.2"},
		{"1.35", 1, "1.4"},
		{"1.2500001", 1, "1.3"},
		{"1.24999", 1, "1.2"},
		{"1.5", 3, "1.5"},
		{"79228162514264337593543950335.9228162514264337593543950335", 0, "79228162514264337593543950336"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := digs(tc.in).RoundHalfEvenTo(tc.scale)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out.String())
			if out.IsZero() {
				tt.MustEqual(Positive, out.Sign())
			}
		})
	}

	t.Run("default", func(t *testing.T) {
		tt := assert.WrapTB(t)
		out, err := digs("4.5").RoundHalfEven()
		tt.MustOK(err)
		tt.MustEqual("4", out.String())
		tt.MustEqual(0, out.Scale())
	})

	t.Run("edges", func(t *testing.T) {
		tt := assert.WrapTB(t)
		_, err := digs("1.5").RoundHalfEvenTo(-1)
		tt.MustAssert(ScaleError.Has(err))


		out, err := digs("-" + strings.Repeat("9", digitsLen-1) + ".9").RoundHalfEven()
		tt.MustOK(err)
		tt.MustEqual("-1"+strings.Repeat("0", digitsLen-1), out.String())
	})
}

func TestDigitsParts(t *testing.T) {
	tt := assert.WrapTB(t)

	d := digs("-123.0045")
	tt.MustEqual("123", d.IntegerPart())
	tt.MustEqual("0045", d.FractionPart())

	d = digs("0.5")
	tt.MustEqual("0", d.IntegerPart())
	tt.MustEqual("5", d.FractionPart())

	d = digs("42")
	tt.MustEqual("42", d.IntegerPart())
	tt.MustEqual("", d.FractionPart())
}
