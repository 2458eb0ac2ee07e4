package dec96

// literal is the scanned form of a numeric string: its sign, its digit
// values in the requested radix (most significant first, leading zeros
// kept) and the number of digits that followed the fractional separator.
type literal struct {
	sign   Sign
	digits []uint8
	scale  int
}

// scanLiteral accepts an optional leading '-', '_' group separators anywhere
// after it, and at most one '.' separator. Radix 2 literals may not carry a
// fractional part.
func scanLiteral(s string, radix int) (lit literal, err error) {
	if radix != 2 && radix != 10 {
		return lit, RadixError.New("%d", radix)
	}

	str := s
	if len(str) > 0 && str[0] == '-' {
		lit.sign = Negative
		str = str[1:]
	}

	point := false
	lit.digits = make([]uint8, 0, len(str))

	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case c == '_':
			continue

		case c == '.':
			if point {
				return lit, SyntaxError.New("%q: more than one fractional separator", s)
			}
			if radix == 2 {
				return lit, SyntaxError.New("%q: fractional separator in binary literal", s)
			}
			point = true

		case c >= '0' && c <= '9' && int(c-'0') < radix:
			lit.digits = append(lit.digits, c-'0')
			if point {
				lit.scale++
			}

		default:
			return lit, SyntaxError.New("%q: unexpected character %q at offset %d", s, c, i)
		}
	}

	if len(lit.digits) == 0 {
		return lit, SyntaxError.New("%q: no digits", s)
	}
	return lit, nil
}

// significant returns the digits with leading zeros removed. The result may
// be empty.
func (lit literal) significant() []uint8 {
	i := 0
	for i < len(lit.digits) && lit.digits[i] == 0 {
		i++
	}
	return lit.digits[i:]
}
