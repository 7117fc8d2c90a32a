package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receivedItemWithTracking(t *testing.T, trackingNumber string) *item.Item {
	t.Helper()
	aggregate, err := item.NewItem(
		kernel.NewUUID(),
		trackingNumber,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)
	return aggregate
}

func TestApplyBatchCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()

	loaded := receivedItemWithTracking(t, "SF001")
	flagged := receivedItemWithTracking(t, "SF002")

	container := "GH-001"
	damaged := true
	rows := []commands.BatchRow{
		{TrackingNumber: "SF001", Patch: commands.ItemPatch{ContainerNumber: &container}},
		{TrackingNumber: "SF002", Patch: commands.ItemPatch{Damaged: &damaged}},
		{TrackingNumber: "SF404", Patch: commands.ItemPatch{Damaged: &damaged}},
	}
	cmd, err := commands.NewApplyBatchCommand(rows)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("GetByTrackingNumber", mock.Anything, "SF001").Return(loaded, nil).Once()
	repo.On("GetByTrackingNumber", mock.Anything, "SF002").Return(flagged, nil).Once()
	repo.On("GetByTrackingNumber", mock.Anything, "SF404").
		Return(nil, errs.NewObjectNotFoundError("trackingNumber", "SF404")).Once()
	repo.On("Update", mock.Anything, loaded).Return(nil).Once()
	repo.On("Update", mock.Anything, flagged).Return(nil).Once()

	uow := new(MockItemUoW)
	uow.On("Begin", mock.Anything).Return(nil).Times(3)
	uow.On("ItemRepository").Return(repo).Times(3)
	uow.On("Commit", mock.Anything).Return(nil).Times(2)
	uow.On("Rollback", mock.Anything).Return(nil).Times(3)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	// One snapshot read covers every row of the batch
	rateProvider := new(MockRateProvider)
	rateProvider.On("Get", ctx).Return(testRates(t), nil).Once()

	h := commands.NewApplyBatchCommandHandler(factory, rateProvider)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Rows, 3)

	// Results keep submission order even though rows run concurrently
	assert.Equal(t, "SF001", result.Rows[0].TrackingNumber)
	assert.True(t, result.Rows[0].Success)
	assert.Equal(t, "SF002", result.Rows[1].TrackingNumber)
	assert.True(t, result.Rows[1].Success)
	assert.Equal(t, "SF404", result.Rows[2].TrackingNumber)
	assert.False(t, result.Rows[2].Success)
	assert.NotEmpty(t, result.Rows[2].Message)

	// Successful rows really applied their patches
	assert.Equal(t, "GH-001", loaded.ContainerNumber())
	assert.Equal(t, item.InTransit, loaded.Status())
	assert.True(t, flagged.IsDamaged())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	rateProvider.AssertExpectations(t)
}

func TestApplyBatchCommandHandler_Handle_RowFailureLeavesItemUnchanged(t *testing.T) {
	ctx := t.Context()

	// Still in the warehouse without a container: cannot jump to delivered
	stuck := receivedItemWithTracking(t, "SF003")
	delivered := item.Delivered
	rows := []commands.BatchRow{
		{TrackingNumber: "SF003", Patch: commands.ItemPatch{Status: &delivered}},
	}
	cmd, err := commands.NewApplyBatchCommand(rows)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("GetByTrackingNumber", mock.Anything, "SF003").Return(stuck, nil).Once()

	uow := new(MockItemUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("ItemRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	rateProvider := new(MockRateProvider)
	rateProvider.On("Get", ctx).Return(testRates(t), nil).Once()

	h := commands.NewApplyBatchCommandHandler(factory, rateProvider)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Rows[0].Success)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApplyBatchCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApplyBatchCommand{} // not constructed properly
	h := commands.NewApplyBatchCommandHandler(new(MockItemUoWFactory), new(MockRateProvider))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
