package floatconv

var defaultParser = NewParser(nil)

// Parse converts s to the nearest value of width w.
// See Parser.Parse for the details.
func Parse[T ~string | ~[]byte](s T, w Width) (Value, int, error) {
	return parse(defaultParser.tables, "Parse", s, w)
}

// ParseFloat32 converts s to the nearest float32, rounding half to even.
//
// It returns the number of bytes consumed. If s is not entirely a number,
// the value of its longest valid prefix is returned along with a *ParseError
// whose Consumed field is the length of that prefix (zero if none).
// Values out of range saturate to ±Inf or ±0 without error.
func ParseFloat32[T ~string | ~[]byte](s T) (float32, int, error) {
	v, n, err := parse(defaultParser.tables, "ParseFloat32", s, Width32)
	return v.Float32(), n, err
}

// ParseFloat64 converts s to the nearest float64, rounding half to even.
// See ParseFloat32 for the details.
func ParseFloat64[T ~string | ~[]byte](s T) (float64, int, error) {
	v, n, err := parse(defaultParser.tables, "ParseFloat64", s, Width64)
	return v.Float64(), n, err
}

// String returns the shortest decimal of v the way strconv.FormatFloat(f, 'g', -1, bitSize) does.
func (v Value) String() string {
	return v.Text(GoStyle)
}

// Text returns the shortest decimal of v rendered with l.
func (v Value) Text(l Layout) string {
	return string(v.Append(make([]byte, 0, MaxLen64), l))
}

// Append appends the shortest decimal of v rendered with l to buf.
func (v Value) Append(buf []byte, l Layout) []byte {
	return defaultFormatter.Append(buf, v, l)
}

// Decimal returns the shortest decimal that parses back to v.
func (v Value) Decimal() Decimal {
	return defaultFormatter.Shortest(v)
}

// AppendFloat32 appends the shortest decimal of f rendered with l to dst.
func AppendFloat32(dst []byte, f float32, l Layout) []byte {
	return defaultFormatter.Append(dst, FromFloat32(f), l)
}

// AppendFloat64 appends the shortest decimal of f rendered with l to dst.
func AppendFloat64(dst []byte, f float64, l Layout) []byte {
	return defaultFormatter.Append(dst, FromFloat64(f), l)
}

// FormatFloat32 returns the shortest decimal of f in the Shortest layout.
func FormatFloat32(f float32) string {
	var buf [MaxLen32]byte
	return string(AppendFloat32(buf[:0], f, Shortest))
}

// FormatFloat64 returns the shortest decimal of f in the Shortest layout.
func FormatFloat64(f float64) string {
	var buf [MaxLen64]byte
	return string(AppendFloat64(buf[:0], f, Shortest))
}

// PutFloat32 writes the shortest decimal of f in the Shortest layout
// into buf and returns the number of bytes written.
// It panics if buf is too small; MaxLen32 bytes are always enough.
func PutFloat32(buf []byte, f float32) int {
	var tmp [MaxLen32]byte
	return put(buf, AppendFloat32(tmp[:0], f, Shortest))
}

// PutFloat64 writes the shortest decimal of f in the Shortest layout
// into buf and returns the number of bytes written.
// It panics if buf is too small; MaxLen64 bytes are always enough.
func PutFloat64(buf []byte, f float64) int {
	var tmp [MaxLen64]byte
	return put(buf, AppendFloat64(tmp[:0], f, Shortest))
}

func put(buf, text []byte) int {
	if len(buf) < len(text) {
		panic("floatconv: buffer too small")
	}
	return copy(buf, text)
}
