// internal/domain/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitTotal(t *testing.T) {
	options := []SelectedOption{
		{GroupID: 1, OptionID: 10, Name: "Cheddar extra", ExtraPrice: 500},
		{GroupID: 2, OptionID: 20, Name: "Bacon", ExtraPrice: 400},
	}

	assert.Equal(t, int64(4190), UnitTotal(3290, options))
}

func TestUnitTotalNoOptions(t *testing.T) {
	assert.Equal(t, int64(3290), UnitTotal(3290, nil))
	assert.Equal(t, int64(3290), UnitTotal(3290, []SelectedOption{}))
}

func TestUnitTotalZeroPriceOption(t *testing.T) {
	options := []SelectedOption{
		{GroupID: 1, OptionID: 11, Name: "Ponto da carne", ExtraPrice: 0},
	}

	assert.Equal(t, int64(2500), UnitTotal(2500, options))
}

func TestUnitTotalDuplicateOptionsAreSummed(t *testing.T) {
	// Duplicates are honored as given; validation owns deduplication.
	options := []SelectedOption{
		{GroupID: 1, OptionID: 10, Name: "Cheddar extra", ExtraPrice: 500},
		{GroupID: 1, OptionID: 10, Name: "Cheddar extra", ExtraPrice: 500},
	}

	assert.Equal(t, int64(4290), UnitTotal(3290, options))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(8380), LineTotal(4190, 2))
	assert.Equal(t, int64(4190), LineTotal(4190, 1))
}

func TestLineTotalLargeValues(t *testing.T) {
	// Prices below 10^7 cents and quantities below 100 must not overflow.
	assert.Equal(t, int64(989999901), LineTotal(9999999, 99))
}

func TestTotals(t *testing.T) {
	subtotal, total := Totals([]int64{8380}, 599)

	assert.Equal(t, int64(8380), subtotal)
	assert.Equal(t, int64(8979), total)
}

func TestTotalsEmptyCart(t *testing.T) {
	subtotal, total := Totals(nil, 599)

	assert.Equal(t, int64(0), subtotal)
	assert.Equal(t, int64(599), total)
}

func TestTotalsMultipleLines(t *testing.T) {
	subtotal, total := Totals([]int64{1000, 2500, 499}, 599)

	assert.Equal(t, int64(3999), subtotal)
	assert.Equal(t, int64(4598), total)
}
