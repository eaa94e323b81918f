//go:build !amd64

package vcxml

// indexOpenAngle returns the index of the first '<' in b, or -1.
func indexOpenAngle(b []byte) int {
	return indexOpenAngleGeneric(b)
}
