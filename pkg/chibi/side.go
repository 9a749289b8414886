package chibi

// Side selects the left or right copy of a paired part
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Sides lists both sides, left first
var Sides = []Side{Left, Right}

// Sign returns -1 for left and +1 for right; it multiplies horizontal offsets
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// suffixed returns name_<side>
func (s Side) suffixed(name string) string {
	return name + "_" + string(s)
}
