package utils

import "runtime"

// Stack returns the calling goroutine's stack trace. skip is kept for call
// sites that trim wrapper frames themselves; the raw trace is returned as-is.
func Stack(skip int) []byte {
	buf := make([]byte, 1<<10)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}
