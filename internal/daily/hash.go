package daily

// Hasher maps a day key to a stable non-negative integer. Determinism across
// runs and platforms is the only required property; implementations are not
// expected to be cryptographic.
type Hasher interface {
	Sum(key string) uint32
}

// PolyHasher is the classic 31x polynomial string hash over signed 32-bit
// arithmetic. Its values are frozen: changing them would change which dye
// every past and future day key selects.
type PolyHasher struct{}

func (PolyHasher) Sum(key string) uint32 {
	var h int32
	for _, r := range key {
		h = h*31 + int32(r)
	}
	if h < 0 {
		// Widen instead of negating so the int32 minimum stays in range.
		return uint32(-int64(h))
	}
	return uint32(h)
}
