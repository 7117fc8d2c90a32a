package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyBatchCommand_ValidInput(t *testing.T) {
	status := item.ArrivedGhana
	rows := []commands.BatchRow{
		{TrackingNumber: "SF001", Patch: commands.ItemPatch{Status: &status}},
	}

	cmd, err := commands.NewApplyBatchCommand(rows)
	require.NoError(t, err)
	assert.Len(t, cmd.Rows(), 1)
}

func TestNewApplyBatchCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewApplyBatchCommand(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBatchRowsAreRequired)
}

func TestNewApplyBatchCommand_RowWithoutTrackingNumber(t *testing.T) {
	damaged := true
	rows := []commands.BatchRow{
		{TrackingNumber: "", Patch: commands.ItemPatch{Damaged: &damaged}},
	}

	_, err := commands.NewApplyBatchCommand(rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
}

func TestNewApplyBatchCommand_RowWithoutChanges(t *testing.T) {
	rows := []commands.BatchRow{
		{TrackingNumber: "SF001", Patch: commands.ItemPatch{}},
	}

	_, err := commands.NewApplyBatchCommand(rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBatchRowHasNoChanges)
}

func TestNewApplyBatchCommand_RowWithUnknownStatus(t *testing.T) {
	unknown := item.Status(42)
	rows := []commands.BatchRow{
		{TrackingNumber: "SF001", Patch: commands.ItemPatch{Status: &unknown}},
	}

	_, err := commands.NewApplyBatchCommand(rows)
	require.Error(t, err)
}
