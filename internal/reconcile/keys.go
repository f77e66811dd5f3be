package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const certificateKeyPrefix = "orders"

// safeFilename reduces a filename to a safe character set for use in a
// storage key. Letters, digits, '.', '_', and '-' pass through; anything
// else becomes '_'.
func safeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// certificateKey builds a collision-free storage key for an uploaded
// certificate, prefixed by order id and timestamped per upload.
func certificateKey(orderID uuid.UUID, received time.Time, position int, filename string) string {
	return fmt.Sprintf(
		"%s/%s/%d_%d_%s",
		certificateKeyPrefix,
		orderID,
		received.Unix(),
		position,
		safeFilename(filename),
	)
}
