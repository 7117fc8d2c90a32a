package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadItemsIntoContainerCommand(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewLoadItemsIntoContainerCommand("GH-001", ids)
	require.NoError(t, err)
	assert.Equal(t, "GH-001", cmd.ContainerNumber())
	assert.Equal(t, ids, cmd.ItemIDs())

	_, err = commands.NewLoadItemsIntoContainerCommand("", ids)
	require.ErrorIs(t, err, commands.ErrContainerNumberIsRequired)

	_, err = commands.NewLoadItemsIntoContainerCommand("GH-001", nil)
	require.ErrorIs(t, err, commands.ErrItemIDsAreRequired)

	_, err = commands.NewLoadItemsIntoContainerCommand("GH-001", []kernel.UUID{{}})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestLoadItemsIntoContainerCommandHandler_Handle_PerItemResults(t *testing.T) {
	ctx := t.Context()

	first := receivedItemWithTracking(t, "SF001")
	missingID := kernel.NewUUID()
	cmd, err := commands.NewLoadItemsIntoContainerCommand("GH-001", []kernel.UUID{first.ID(), missingID})
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("Get", ctx, first.ID()).Return(first, nil).Once()
	repo.On("Get", ctx, missingID).
		Return(nil, errs.NewObjectNotFoundError("itemId", missingID.String())).Once()
	repo.On("Update", ctx, first).Return(nil).Once()

	uow := new(MockItemUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ItemRepository").Return(repo).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	// One snapshot read covers the whole load
	rateProvider := new(MockRateProvider)
	rateProvider.On("Get", ctx).Return(testRates(t), nil).Once()

	h := commands.NewLoadItemsIntoContainerCommandHandler(factory, rateProvider)
	results, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Message)

	// Loading couples container assignment with the status change
	assert.Equal(t, "GH-001", first.ContainerNumber())
	assert.Equal(t, item.InTransit, first.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	rateProvider.AssertExpectations(t)
}
