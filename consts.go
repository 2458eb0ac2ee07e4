package dec96

const (
	// MaxScale is the largest number of fractional digits a Decimal can carry.
	MaxScale = 28

	bitsLen   = 96
	digitsLen = 64

	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1
	hiMask    = maxUint32

	// Layout of the flags word, Decimal.words[3]:
	signFlag   = 1 << 31
	scaleMask  = 0x00FF0000
	scaleShift = 16
	flagsMask  = signFlag | scaleMask
)

var (
	// MaxDecimal is 79228162514264337593543950335, the largest magnitude with
	// a positive sign.
	MaxDecimal = Decimal{words: [4]uint32{maxUint32, maxUint32, maxUint32, 0}}

	// MinDecimal is -79228162514264337593543950335.
	MinDecimal = Decimal{words: [4]uint32{maxUint32, maxUint32, maxUint32, signFlag}}

	maxU96  = u96{hi: hiMask, lo: maxUint64}
	zeroU96 u96

	// pow10[n] is 10^n. Entries are built by repeated shift-and-add
	// multiplication starting from ten, so the table never depends on a
	// native 96-bit multiply.
	pow10 [MaxScale + 1]u96
)

func init() {
	ten := u96From64(0b1010)
	pow10[0] = u96From64(1)
	pow10[1] = ten
	for i := 2; i <= MaxScale; i++ {
		v, lost := pow10[i-1].mul(ten)
		if lost {
			panic("dec96: pow10 table overflow")
		}
		pow10[i] = v
	}
}
