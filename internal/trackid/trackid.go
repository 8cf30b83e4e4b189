// Package trackid generates human-scannable parcel tracking identifiers.
package trackid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const prefix = "PRCL"

// suffix entropy: 3 bytes = 24 bits, enough to avoid collisions at the
// system's parcel-creation rate within one day bucket.
const suffixBytes = 3

// New returns a fresh tracking id of the form PRCL-20250102-A1B2C3.
// crypto/rand never fails on supported platforms; an unreadable entropy
// source is a fatal startup condition, not a per-call error.
func New() string {
	return newAt(time.Now().UTC())
}

func newAt(now time.Time) string {
	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("trackid: entropy source unavailable: %v", err))
	}
	return fmt.Sprintf("%s-%s-%s",
		prefix,
		now.Format("20060102"),
		strings.ToUpper(hex.EncodeToString(buf)),
	)
}
