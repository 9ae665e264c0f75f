package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{13,}-[0-9A-F]{12}$`)

func TestNewOrderIDFormat(t *testing.T) {
	id := NewOrderID()
	assert.Regexp(t, orderIDPattern, id)
}

func TestNewOrderIDUnique(t *testing.T) {
	const n = 100000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewOrderID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate order id %s", id)
		seen[id] = struct{}{}
	}
}
