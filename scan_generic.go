package vcxml

import "bytes"

// indexOpenAngleGeneric returns the index of the first '<' in b, or -1.
func indexOpenAngleGeneric(b []byte) int {
	return bytes.IndexByte(b, '<')
}
