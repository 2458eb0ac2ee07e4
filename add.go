package dec96

// Add returns d+n. The operand with the smaller scale is first normalized
// to the larger scale, then both are added as Bits and packed back; the
// result carries the larger scale.
//
// Add fails before doing any work with ErrOverflow if neither operand is
// negative and one of them is MaxDecimal-sized, or with ErrUnderflow if both
// are negative and one is MinDecimal-sized; the scale is not taken into
// account. It also fails if aligning the scales, or the sum itself, needs
// more than 96 bits. No partial result is returned on failure.
func (d Decimal) Add(n Decimal) (Decimal, error) {
	if err := checkAddBounds(d, n); err != nil {
		return Decimal{}, err
	}

	left, right := d, n
	var err error
	if ls, rs := left.Scale(), right.Scale(); ls < rs {
		left, err = left.Normalize(rs)
	} else if ls > rs {
		right, err = right.Normalize(ls)
	}
	if err != nil {
		return Decimal{}, err
	}

	sum, carry := left.Bits().AddCarry(right.Bits())
	if carry {
		return Decimal{}, rangeError(sum.sign)
	}
	return FromBits(sum)
}

// Sub returns d-n; it is d.Add(n.Neg()).
func (d Decimal) Sub(n Decimal) (Decimal, error) {
	return d.Add(n.Neg())
}

func checkAddBounds(l, r Decimal) error {
	lneg, rneg := l.Sign() == Negative, r.Sign() == Negative

	if !lneg && !rneg && (l.IsMax() || r.IsMax()) {
		return ErrOverflow
	}
	if lneg && rneg && (l.IsMin() || r.IsMin()) {
		return ErrUnderflow
	}
	return nil
}
