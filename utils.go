package flatecs

import "unsafe"

// extendSlice extends a slice by n zeroed elements, reallocating if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	ns := make([]T, newLen)
	copy(ns, s)
	return ns
}

// extendByteSlice extends a byte slice by n zeroed bytes, reallocating if
// necessary.
func extendByteSlice(s []byte, n uintptr) []byte {
	newLen := uintptr(len(s)) + n
	if uintptr(cap(s)) >= newLen {
		return s[:newLen]
	}
	ns := make([]byte, newLen)
	copy(ns, s)
	return ns
}

// memCopy copies size bytes from src to dst.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	dstBytes := unsafe.Slice((*byte)(dst), size)
	srcBytes := unsafe.Slice((*byte)(src), size)
	copy(dstBytes, srcBytes)
}
