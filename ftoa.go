// convert float32 and float64 to shortest decimals

package floatconv

// Formatter converts floating point values to their shortest round-trip
// decimal representation using a fixed set of tables.
// A Formatter is safe for concurrent use.
type Formatter struct {
	tables *Tables
}

// NewFormatter returns a Formatter that uses t.
// A nil t selects DefaultTables.
func NewFormatter(t *Tables) *Formatter {
	return &Formatter{tables: orDefault(t)}
}

var defaultFormatter = NewFormatter(nil)

// Shortest returns the shortest decimal that parses back to v.
// Among the shortest decimals it picks the one nearest to v, ties to even.
// NaN and infinities are returned as KindNaN and KindInf sentinels;
// zero keeps its sign.
func (f *Formatter) Shortest(v Value) Decimal {
	w := v.Width()
	flt := w.info()
	neg, exp, mant := v.split()

	switch {
	case exp == 1<<flt.expbits-1:
		if mant != 0 {
			return Decimal{Kind: KindNaN}
		}
		return Decimal{Neg: neg, Kind: KindInf}
	case exp == 0 && mant == 0:
		return Decimal{Neg: neg}
	}

	denorm := exp == 0
	if denorm {
		exp++
	} else {
		mant |= 1 << flt.mantbits
	}
	exp += flt.bias - int(flt.mantbits)

	d := Decimal{Neg: neg}
	if w == Width32 {
		m, e := f.tables.dragonboxShortest32(uint32(mant), exp, denorm)
		d.Mant, d.Exp = uint64(m), e
	} else {
		d.Mant, d.Exp = f.tables.dragonboxShortest64(mant, exp, denorm)
	}
	return d
}

// Append appends the text of v rendered with l to dst.
func (f *Formatter) Append(dst []byte, v Value, l Layout) []byte {
	return l.AppendDecimal(dst, f.Shortest(v))
}
