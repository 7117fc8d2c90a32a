package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerAggregator_Derive(t *testing.T) {
	aggregator := services.NewContainerAggregator()
	baseDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("should group members by container number", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CBM: 0.2, CostUSD: decimal.NewFromInt(200), ReceivingDate: baseDate, Status: item.InTransit},
			{ContainerNumber: "GH-001", CBM: 0.1, CostUSD: decimal.NewFromInt(100), ReceivingDate: baseDate.AddDate(0, 0, 2), Status: item.InTransit},
			{ContainerNumber: "GH-002", CBM: 0.5, CostUSD: decimal.NewFromInt(500), ReceivingDate: baseDate.AddDate(0, 0, 1), Status: item.InTransit},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 2)

		// Descending container number ordering
		assert.Equal(t, "GH-002", containers[0].ContainerNumber)
		assert.Equal(t, "GH-001", containers[1].ContainerNumber)

		first := containers[1]
		assert.Equal(t, 2, first.ItemCount)
		assert.InDelta(t, 0.3, first.TotalCBM, 1e-9)
		assert.True(t, first.TotalValueUSD.Equal(decimal.NewFromInt(300)))
	})

	t.Run("should skip members without a container number", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "", CBM: 0.2, CostUSD: decimal.NewFromInt(200), ReceivingDate: baseDate, Status: item.ChinaWarehouse},
			{ContainerNumber: "GH-001", CBM: 0.1, CostUSD: decimal.NewFromInt(100), ReceivingDate: baseDate, Status: item.InTransit},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.Equal(t, "GH-001", containers[0].ContainerNumber)
		assert.Equal(t, 1, containers[0].ItemCount)
	})

	t.Run("should use earliest receiving date for a container", func(t *testing.T) {
		earliest := baseDate.AddDate(0, 0, -5)
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.InTransit},
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: earliest, Status: item.InTransit},
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate.AddDate(0, 0, 3), Status: item.InTransit},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.True(t, containers[0].ReceivingDate.Equal(earliest))
	})

	t.Run("should report shared status for homogeneous container", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.ArrivedGhana},
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.ArrivedGhana},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.False(t, containers[0].Mixed)
		assert.Equal(t, item.ArrivedGhana, containers[0].Status)
		assert.Equal(t, map[item.Status]int{item.ArrivedGhana: 2}, containers[0].StatusCounts)
	})

	t.Run("should mark heterogeneous container as mixed", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.InTransit},
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.ArrivedGhana},
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.InTransit},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.True(t, containers[0].Mixed)
		assert.Equal(t, item.StatusUnknown, containers[0].Status)
		assert.Equal(t, 2, containers[0].StatusCounts[item.InTransit])
		assert.Equal(t, 1, containers[0].StatusCounts[item.ArrivedGhana])
	})

	t.Run("should return error for invalid member status", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CostUSD: decimal.Zero, ReceivingDate: baseDate, Status: item.Status(42)},
		}

		containers, err := aggregator.Derive(members)

		require.Error(t, err)
		assert.Nil(t, containers)
	})

	t.Run("should return empty result for no members", func(t *testing.T) {
		containers, err := aggregator.Derive(nil)

		require.NoError(t, err)
		assert.Empty(t, containers)
	})

	t.Run("should sum declared values with decimal precision", func(t *testing.T) {
		members := []services.ContainerMember{
			{ContainerNumber: "GH-001", CostUSD: decimal.RequireFromString("0.10"), ReceivingDate: baseDate, Status: item.InTransit},
			{ContainerNumber: "GH-001", CostUSD: decimal.RequireFromString("0.20"), ReceivingDate: baseDate, Status: item.InTransit},
		}

		containers, err := aggregator.Derive(members)

		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.True(t, containers[0].TotalValueUSD.Equal(decimal.RequireFromString("0.30")))
	})
}
