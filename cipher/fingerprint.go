package cipher

import (
	"crypto/sha256"
	"fmt"

	"github.com/taigrr/colorhash"
)

// Fingerprint returns a short identifier for key that is safe to log.
// The result is in the format "bucket-prefix" (e.g., "742-1f0c3a9b"): the
// bucket is a color hash of the key mod 1000 and the prefix is the first
// eight hex digits of the key's SHA-256.
func Fingerprint(key string) string {
	bucket := colorhash.HashString(key) % 1000
	if bucket < 0 {
		bucket = -bucket
	}
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%03d-%x", bucket, sum[:4])
}
