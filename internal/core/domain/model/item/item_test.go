package item_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReceivingDate() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func newTestItem(t *testing.T) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "TMP-0001", testReceivingDate(), nil)
	require.NoError(t, err)
	return it
}

func newTestRates(t *testing.T) pricing.Rates {
	t.Helper()
	rates, err := pricing.NewRates(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(5),
		decimal.NewFromInt(15),
	)
	require.NoError(t, err)
	return rates
}

func seaDimensions(t *testing.T) *pricing.Dimensions {
	t.Helper()
	dims, err := pricing.NewDimensions(100, 50, 40, pricing.Centimeters)
	require.NoError(t, err)
	return &dims
}

func airWeight(t *testing.T) *pricing.Weight {
	t.Helper()
	weight, err := pricing.NewWeight(10, pricing.Kilograms)
	require.NoError(t, err)
	return &weight
}

func TestNewItem(t *testing.T) {
	t.Run("should create intake item in china warehouse", func(t *testing.T) {
		photo, err := item.NewPhoto("https://blobs/abc.jpg", 0)
		require.NoError(t, err)

		it, err := item.NewItem(kernel.NewUUID(), "TMP-0001", testReceivingDate(), []item.Photo{photo})
		require.NoError(t, err)

		assert.Equal(t, item.ChinaWarehouse, it.Status())
		assert.Equal(t, "TMP-0001", it.TrackingNumber())
		assert.Nil(t, it.CustomerID())
		assert.Empty(t, it.ContainerNumber())
		assert.False(t, it.IsTagged())
		assert.Zero(t, it.CBM())
		assert.True(t, it.Cost().IsZero())
		assert.Len(t, it.Photos(), 1)
	})

	t.Run("should require a tracking number", func(t *testing.T) {
		_, err := item.NewItem(kernel.NewUUID(), "", testReceivingDate(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require a receiving date", func(t *testing.T) {
		_, err := item.NewItem(kernel.NewUUID(), "TMP-0001", time.Time{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value struct", func(t *testing.T) {
		var it item.Item
		require.ErrorIs(t, it.Validate(), item.ErrItemIsNotConstructed)
	})
}

func TestItem_Tag(t *testing.T) {
	t.Run("should tag sea freight with dimensions", func(t *testing.T) {
		it := newTestItem(t)
		customerID := kernel.NewUUID()

		err := it.Tag(customerID, pricing.Sea, seaDimensions(t), nil)
		require.NoError(t, err)

		assert.True(t, it.IsTagged())
		assert.True(t, customerID.IsEqual(*it.CustomerID()))
		assert.Equal(t, pricing.Sea, it.ShippingMethod())
	})

	t.Run("should tag air freight with weight", func(t *testing.T) {
		it := newTestItem(t)

		err := it.Tag(kernel.NewUUID(), pricing.Air, nil, airWeight(t))
		require.NoError(t, err)
		assert.Equal(t, pricing.Air, it.ShippingMethod())
	})

	t.Run("should reject sea freight without measured dimensions", func(t *testing.T) {
		it := newTestItem(t)
		before := it.ShippingMethod()

		// missing entirely
		err := it.Tag(kernel.NewUUID(), pricing.Sea, nil, nil)
		require.ErrorIs(t, err, item.ErrDimensionsAreRequired)

		// present but one side unmeasured
		dims, dimsErr := pricing.NewDimensions(100, 0, 40, pricing.Centimeters)
		require.NoError(t, dimsErr)
		err = it.Tag(kernel.NewUUID(), pricing.Sea, &dims, nil)
		require.ErrorIs(t, err, item.ErrDimensionsAreRequired)

		// the item is unchanged
		assert.False(t, it.IsTagged())
		assert.Equal(t, before, it.ShippingMethod())
	})

	t.Run("should reject air freight without measured weight", func(t *testing.T) {
		it := newTestItem(t)

		err := it.Tag(kernel.NewUUID(), pricing.Air, nil, nil)
		require.ErrorIs(t, err, item.ErrWeightIsRequired)

		weight, weightErr := pricing.NewWeight(0, pricing.Kilograms)
		require.NoError(t, weightErr)
		err = it.Tag(kernel.NewUUID(), pricing.Air, nil, &weight)
		require.ErrorIs(t, err, item.ErrWeightIsRequired)

		assert.False(t, it.IsTagged())
	})

	t.Run("should reject missing customer", func(t *testing.T) {
		it := newTestItem(t)

		err := it.Tag(kernel.UUID{}, pricing.Sea, seaDimensions(t), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_Reprice(t *testing.T) {
	t.Run("should derive cbm and cost for sea freight", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.Tag(kernel.NewUUID(), pricing.Sea, seaDimensions(t), nil))

		require.NoError(t, it.Reprice(newTestRates(t)))

		assert.Equal(t, 0.2, it.CBM())
		assert.True(t, it.Cost().USD().Equal(decimal.NewFromInt(200)), "usd = %s", it.Cost().USD())
		assert.True(t, it.Cost().Cedis().Equal(decimal.NewFromInt(3000)), "cedis = %s", it.Cost().Cedis())
	})

	t.Run("should keep cbm at zero for air freight", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.Tag(kernel.NewUUID(), pricing.Air, nil, airWeight(t)))

		require.NoError(t, it.Reprice(newTestRates(t)))

		assert.Zero(t, it.CBM())
		assert.True(t, it.Cost().USD().Equal(decimal.NewFromInt(50)), "usd = %s", it.Cost().USD())
	})

	t.Run("should price untagged items at zero", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.Reprice(newTestRates(t)))
		assert.True(t, it.Cost().IsZero())
	})
}

func TestItem_ContainerLifecycle(t *testing.T) {
	t.Run("should load into container and move to in transit", func(t *testing.T) {
		it := newTestItem(t)

		require.NoError(t, it.LoadIntoContainer("CONT-1"))

		assert.Equal(t, "CONT-1", it.ContainerNumber())
		assert.Equal(t, item.InTransit, it.Status())
	})

	t.Run("should require a container number", func(t *testing.T) {
		it := newTestItem(t)
		require.ErrorIs(t, it.LoadIntoContainer(""), item.ErrContainerNumberIsRequired)
	})

	t.Run("should restore pre-load state on unload", func(t *testing.T) {
		it := newTestItem(t)

		require.NoError(t, it.LoadIntoContainer("CONT-1"))
		require.NoError(t, it.UnloadFromContainer())

		assert.Empty(t, it.ContainerNumber())
		assert.Equal(t, item.ChinaWarehouse, it.Status())
	})

	t.Run("should reject unloading an item that is not in a container", func(t *testing.T) {
		it := newTestItem(t)
		require.ErrorIs(t, it.UnloadFromContainer(), item.ErrItemNotInContainer)
	})

	t.Run("should allow container reassignment", func(t *testing.T) {
		it := newTestItem(t)

		require.NoError(t, it.LoadIntoContainer("CONT-1"))
		require.NoError(t, it.LoadIntoContainer("CONT-2"))

		assert.Equal(t, "CONT-2", it.ContainerNumber())
		assert.Equal(t, item.InTransit, it.Status())
	})
}

func TestItem_ChangeStatus(t *testing.T) {
	t.Run("should allow forward jumps for containered items", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.LoadIntoContainer("CONT-1"))

		require.NoError(t, it.ChangeStatus(item.ReadyForPickup))
		assert.Equal(t, item.ReadyForPickup, it.Status())
	})

	t.Run("should reject leaving the origin without a container", func(t *testing.T) {
		it := newTestItem(t)

		err := it.ChangeStatus(item.ArrivedGhana)
		require.ErrorIs(t, err, item.ErrContainerNumberIsRequired)
		assert.Equal(t, item.ChinaWarehouse, it.Status())
	})

	t.Run("should reject backward moves", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.LoadIntoContainer("CONT-1"))
		require.NoError(t, it.ChangeStatus(item.Delivered))

		err := it.ChangeStatus(item.ArrivedGhana)
		require.Error(t, err)
		assert.Equal(t, item.Delivered, it.Status())
	})
}

func TestItem_MarkArrived(t *testing.T) {
	t.Run("should report change only once", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.LoadIntoContainer("CONT-1"))

		assert.True(t, it.MarkArrived())
		assert.Equal(t, item.ArrivedGhana, it.Status())

		assert.False(t, it.MarkArrived())
		assert.Equal(t, item.ArrivedGhana, it.Status())
	})

	t.Run("should pull items past arrival back to arrived_ghana", func(t *testing.T) {
		it := newTestItem(t)
		require.NoError(t, it.LoadIntoContainer("CONT-1"))
		require.NoError(t, it.ChangeStatus(item.Delivered))

		assert.True(t, it.MarkArrived())
		assert.Equal(t, item.ArrivedGhana, it.Status())
	})
}

func TestItem_Flags(t *testing.T) {
	t.Run("should toggle flags independently of status", func(t *testing.T) {
		it := newTestItem(t)

		it.SetDamaged(true)
		it.SetMissing(true)
		assert.True(t, it.IsDamaged())
		assert.True(t, it.IsMissing())
		assert.Equal(t, item.ChinaWarehouse, it.Status())

		it.SetDamaged(false)
		assert.False(t, it.IsDamaged())
		assert.True(t, it.IsMissing())
	})
}

func TestItem_Photos(t *testing.T) {
	t.Run("should order photos by explicit order value", func(t *testing.T) {
		second, err := item.NewPhoto("https://blobs/b.jpg", 2)
		require.NoError(t, err)
		first, err := item.NewPhoto("https://blobs/a.jpg", 1)
		require.NoError(t, err)

		// stored out of order on purpose: the store does not guarantee
		// array order
		it, err := item.NewItem(kernel.NewUUID(), "TMP-0001", testReceivingDate(), []item.Photo{second, first})
		require.NoError(t, err)

		photos := it.Photos()
		require.Len(t, photos, 2)
		assert.Equal(t, "https://blobs/a.jpg", photos[0].URL())
		assert.Equal(t, "https://blobs/a.jpg", it.FirstPhoto().URL())
	})

	t.Run("should return nil first photo without photos", func(t *testing.T) {
		it := newTestItem(t)
		assert.Nil(t, it.FirstPhoto())
	})
}
