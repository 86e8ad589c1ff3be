package cart

import (
	"testing"

	"github.com/goldcrust/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, name string, price float64) models.Product {
	return models.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.NewFromFloat(price),
		Available:     true,
		PrepTimeHours: 24,
	}
}

func TestAddItem_MergesByProductID(t *testing.T) {
	c := New()
	cookies := product("prod_001", "Chocolate Chip Cookies", 18.99)

	require.NoError(t, c.AddItem(cookies, 1))
	require.NoError(t, c.AddItem(cookies, 2))

	require.Equal(t, 1, c.Len(), "same product must never produce two lines")
	assert.Equal(t, 3, c.ItemCount())
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	p := product("prod_001", "Cookies", 18.99)

	assert.ErrorIs(t, c.AddItem(p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(p, -3), ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := New()
	a := product("prod_001", "Cookies", 18.99)
	b := product("prod_002", "Cupcakes", 24.99)
	d := product("prod_003", "Sourdough", 8.99)

	require.NoError(t, c.AddItem(a, 1))
	require.NoError(t, c.AddItem(b, 1))
	require.NoError(t, c.AddItem(d, 1))
	require.NoError(t, c.AddItem(a, 1)) // merge must not reorder

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "prod_001", lines[0].Product.ID)
	assert.Equal(t, "prod_002", lines[1].Product.ID)
	assert.Equal(t, "prod_003", lines[2].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantCount int
	}{
		{name: "replace quantity", quantity: 5, wantLines: 2, wantCount: 6},
		{name: "zero removes line", quantity: 0, wantLines: 1, wantCount: 1},
		{name: "negative removes line", quantity: -1, wantLines: 1, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			require.NoError(t, c.AddItem(product("prod_001", "Cookies", 18.99), 2))
			require.NoError(t, c.AddItem(product("prod_002", "Cupcakes", 24.99), 1))

			c.SetQuantity("prod_001", tt.quantity)

			assert.Equal(t, tt.wantLines, c.Len())
			assert.Equal(t, tt.wantCount, c.ItemCount())
		})
	}
}

func TestSetQuantity_AbsentProductIsNoOp(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product("prod_001", "Cookies", 18.99), 2))

	c.SetQuantity("prod_999", 4)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.ItemCount())
}

func TestRemoveItem_EquivalentAndIdempotent(t *testing.T) {
	c1 := New()
	c2 := New()
	for _, c := range []*Cart{c1, c2} {
		require.NoError(t, c.AddItem(product("prod_001", "Cookies", 18.99), 2))
		require.NoError(t, c.AddItem(product("prod_002", "Cupcakes", 24.99), 1))
	}

	c1.RemoveItem("prod_001")
	c1.RemoveItem("prod_001") // second call changes nothing
	c2.SetQuantity("prod_001", 0)

	assert.Equal(t, c2.Lines(), c1.Lines())
	assert.Equal(t, 1, c1.Len())
}

func TestTotal_RecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	a := product("prod_001", "Cookies", 18.99)
	b := product("prod_002", "Cupcakes", 24.99)

	require.NoError(t, c.AddItem(a, 2))
	assert.True(t, c.Total().Equal(decimal.NewFromFloat(37.98)), "total = %s", c.Total())

	require.NoError(t, c.AddItem(b, 1))
	assert.True(t, c.Total().Equal(decimal.NewFromFloat(62.97)), "total = %s", c.Total())

	c.SetQuantity("prod_001", 1)
	assert.True(t, c.Total().Equal(decimal.NewFromFloat(43.98)), "total = %s", c.Total())

	c.Clear()
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.ItemCount())
}

func TestEndToEndScenario(t *testing.T) {
	c := New()
	a := product("prod_001", "Cookies", 18.99)
	b := product("prod_003", "Sourdough", 8.99)

	require.NoError(t, c.AddItem(a, 2))
	require.NoError(t, c.AddItem(b, 1))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.ItemCount())
	want := a.Price.Mul(decimal.NewFromInt(2)).Add(b.Price)
	assert.True(t, c.Total().Equal(want))

	c.SetQuantity(a.ID, 0)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.ItemCount())
	assert.True(t, c.Total().Equal(b.Price))
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product("prod_001", "Cookies", 18.99), 1))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.ItemCount())
}
