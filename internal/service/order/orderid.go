package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderID builds a human-readable unique order identifier:
// ORD-<epoch-millis>-<12 uppercase hex chars>. The 48-bit random suffix makes
// collisions within one millisecond negligible without a central sequence;
// the unique index on orderId turns the residual case into a 409.
func NewOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
