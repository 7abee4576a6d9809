package service

import (
	"errors"
	"testing"

	"github.com/marcenaria-picapau/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftProduct(id uint, name string, price int64) *models.Product {
	return &models.Product{
		ID:    id,
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
	}
}

func TestOrderDraftTotalsSubtotals(t *testing.T) {
	draft := NewOrderDraft("Ana")
	require.NoError(t, draft.Add(draftProduct(1, "Table", 150), 2))
	require.NoError(t, draft.Add(draftProduct(2, "Chair", 80), 4))

	items := draft.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "300.00", items[0].Subtotal().String())
	assert.Equal(t, "320.00", items[1].Subtotal().String())
	assert.Equal(t, "620.00", draft.Total().String())
	assert.Equal(t, 2, draft.Len())
}

func TestOrderDraftKeepsDuplicateLines(t *testing.T) {
	draft := NewOrderDraft("Ana")
	table := draftProduct(1, "Table", 150)
	require.NoError(t, draft.Add(table, 1))
	require.NoError(t, draft.Add(table, 3))

	items := draft.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, "600.00", draft.Total().String())
}

func TestOrderDraftSnapshotsProduct(t *testing.T) {
	draft := NewOrderDraft("Ana")
	table := draftProduct(1, "Table", 150)
	require.NoError(t, draft.Add(table, 1))

	table.Name = "Round table"
	table.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(999))

	items := draft.Items()
	assert.Equal(t, "Table", items[0].ProductName)
	assert.Equal(t, "150.00", items[0].UnitPrice.String())
}

func TestOrderDraftRejectsInvalidQuantity(t *testing.T) {
	draft := NewOrderDraft("Ana")
	for _, qty := range []int{0, -1} {
		err := draft.Add(draftProduct(1, "Table", 150), qty)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation), "qty=%d err=%v", qty, err)
	}
	assert.Equal(t, 0, draft.Len())
	assert.True(t, draft.Total().IsZero())
}

func TestOrderDraftItemsReturnsCopy(t *testing.T) {
	draft := NewOrderDraft("Ana")
	require.NoError(t, draft.Add(draftProduct(1, "Table", 150), 2))

	items := draft.Items()
	items[0].Quantity = 50

	assert.Equal(t, 2, draft.Items()[0].Quantity)
	assert.Equal(t, "300.00", draft.Total().String())
}

func TestOrderDraftClear(t *testing.T) {
	draft := NewOrderDraft("Ana")
	require.NoError(t, draft.Add(draftProduct(1, "Table", 150), 2))

	draft.Clear()
	assert.Equal(t, "", draft.ClientName)
	assert.Equal(t, 0, draft.Len())
	assert.True(t, draft.Total().IsZero())
}

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	for _, raw := range []string{"", "abc", "1.5", "0", "-2"} {
		_, err := ParseQuantity(raw)
		assert.True(t, errors.Is(err, ErrValidation), "raw=%q err=%v", raw, err)
	}
}
