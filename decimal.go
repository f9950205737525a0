package floatconv

// Kind distinguishes finite decimals from the non-finite sentinels.
type Kind uint8

const (
	KindFinite Kind = iota
	KindInf
	KindNaN
)

// Decimal is the shortest decimal representation of a floating point value:
// (-1)^Neg × Mant × 10^Exp.
//
// For finite non-zero values Mant has no trailing decimal zero.
// Zero is represented by Mant == 0 and Exp == 0.
// Mant and Exp are meaningless when Kind is not KindFinite.
type Decimal struct {
	Mant uint64
	Exp  int
	Neg  bool
	Kind Kind
}

// Digits returns the number of decimal digits in d.Mant.
// Zero has one digit.
func (d Decimal) Digits() int {
	n := 1
	for m := d.Mant; m >= 10; m /= 10 {
		n++
	}
	return n
}

// String formats d with the Shortest layout.
func (d Decimal) String() string {
	var buf [MaxLen64]byte
	return string(Shortest.AppendDecimal(buf[:0], d))
}
