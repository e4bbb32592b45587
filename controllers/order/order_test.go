package orderControllers

import (
	"testing"

	"github.com/sharvill10/TechCart/models"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutStepNamesIncompleteStage(t *testing.T) {
	assert.Equal(t, "shipping", checkoutStep(models.ErrShippingRequired))
	assert.Equal(t, "payment", checkoutStep(models.ErrPaymentRequired))
	assert.Equal(t, "cart", checkoutStep(models.ErrCartEmpty))
}

// Order refs contain a dash and a uuid, so they must never be matched
// against the numeric primary key column.
func TestOrderLookupPicksColumn(t *testing.T) {
	cond, val := orderLookup("42")
	assert.Equal(t, "id = ?", cond)
	assert.Equal(t, 42, val)

	ref := models.NewOrderRef()
	cond, val = orderLookup(ref)
	assert.Equal(t, "order_ref = ?", cond)
	assert.Equal(t, ref, val)
}
