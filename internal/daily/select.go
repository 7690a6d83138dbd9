package daily

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"dyele/internal/catalog"
)

var defaultHasher Hasher = PolyHasher{}

// SelectDaily returns the deterministic target for dayKey: same key and same
// catalog always select the same dye. Panics on an empty catalog; the loader
// guarantees at least one entry.
func SelectDaily(c *catalog.Catalog, dayKey string) catalog.Dye {
	return SelectDailyWith(defaultHasher, c, dayKey)
}

// SelectDailyWith is SelectDaily with an explicit hasher.
func SelectDailyWith(h Hasher, c *catalog.Catalog, dayKey string) catalog.Dye {
	if c.Len() == 0 {
		panic("daily: empty catalog")
	}
	return c.At(int(h.Sum(dayKey) % uint32(c.Len())))
}

// SelectRandom returns a uniformly random dye for practice sessions. It
// prefers the crypto source and falls back to math/rand if that fails.
func SelectRandom(c *catalog.Catalog) catalog.Dye {
	if c.Len() == 0 {
		panic("daily: empty catalog")
	}
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return c.At(mathrand.IntN(c.Len()))
	}
	return c.At(int(binary.BigEndian.Uint32(buf[:]) % uint32(c.Len())))
}
