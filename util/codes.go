package util

import (
	"fmt"
	"math/rand/v2"
)

// GenerateUserCode builds a human-readable identifier: role prefix plus six
// random digits, e.g. P123456. Collision handling is the caller's job (retry
// against the store's uniqueness check).
func GenerateUserCode(prefix string) string {
	return fmt.Sprintf("%s%06d", prefix, 100000+rand.IntN(900000))
}
