// internal/domain/checkout/service_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayCodeSequence(t *testing.T) {
	assert.Equal(t, "ER-001", FormatDisplayCode("ER", 3, 1))
	assert.Equal(t, "ER-002", FormatDisplayCode("ER", 3, 2))
	assert.Equal(t, "ER-003", FormatDisplayCode("ER", 3, 3))
}

func TestFormatDisplayCodeWidthOverflow(t *testing.T) {
	// Values beyond the padding width keep all their digits.
	assert.Equal(t, "ER-1000", FormatDisplayCode("ER", 3, 1000))
}

func TestFormatDisplayCodeCustomPrefix(t *testing.T) {
	assert.Equal(t, "PED-00042", FormatDisplayCode("PED", 5, 42))
}
