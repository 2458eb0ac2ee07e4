/*
Package dec96 provides a fixed-point decimal type with a 96-bit unsigned
magnitude, an explicit sign and a base-10 scale of 0 to 28, packed the same
way as the widely used 128-bit decimal layout.

Decimal is a value type; all operations return new values.

Simple example:

	a := dec96.MustParse("-0.005")
	b := dec96.FromInt(5)
	sum, err := a.Add(b)
	fmt.Println(sum, err)
	// Output: 4.995 <nil>

Arithmetic never uses a native arbitrary-precision integer. There are two
engines:

	Bits    96-bit binary magnitude: ripple-carry addition, two's complement
	        negation, shift-and-add scaling by powers of ten.
	Digits  64-digit decimal magnitude: digit-wise carry/borrow addition,
	        rescaling, truncation and banker's rounding.

Decimal packs and unpacks Bits and delegates addition to it; Digits is used
for rendering and is a standalone base-10 path of its own.

Decimal can be created from a variety of sources:

	New(v int32, scale int) (Decimal, error)
	FromInt[T constraints.Signed](v T) Decimal
	FromWords(words [4]uint32) (Decimal, error)
	FromBits(b Bits) (Decimal, error)
	Parse(s string, radix int) (Decimal, error)

Literals are accepted in radix 2 and 10, with an optional leading '-', '_'
separators and, in radix 10, one '.' separator.

Decimal supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Errors belong to the Error class or one of RadixError, LengthError,
SyntaxError and ScaleError. Results that do not fit are reported as
ErrOverflow or ErrUnderflow.

*/
package dec96
