package pck

// Sign is the result of a predicate.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) Neg() Sign {
	return -s
}

// Int returns -1, 0 or +1.
func (s Sign) Int() int {
	return int(s)
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "NEGATIVE"
	case Zero:
		return "ZERO"
	case Positive:
		return "POSITIVE"
	}
	return "INVALID"
}

// GeoSgn returns the sign of x. Only an exact zero (of either sign) is
// Zero.
func GeoSgn(x float64) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	}
	return Zero
}

func signOfInt(s int) Sign {
	return Sign(s)
}
