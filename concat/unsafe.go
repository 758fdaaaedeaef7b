package concat

import "unsafe"

// bytesView returns a read-only byte view of s without copying. The result
// aliases the string's storage and must never be written to.
func bytesView(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// stringView returns a string over b without copying. b must not be
// mutated for as long as the result is reachable.
func stringView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
