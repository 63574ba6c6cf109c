package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key derives a stable cache key from request parts, e.g.
// Key("https://api.carbonhub.app", "/emission/annual/7").
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
