package dec96

// Sign is the polarity of a Bits, Digits or Decimal value. The zero value is
// Positive.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

func (s Sign) Neg() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}
