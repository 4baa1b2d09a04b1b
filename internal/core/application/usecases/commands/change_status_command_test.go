package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewChangeStatusCommand("ORD-1001", delivery.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", cmd.OrderID())
	assert.Equal(t, delivery.StatusCompleted, cmd.NewStatus())
}

func TestNewChangeStatusCommand_ArbitraryStatus(t *testing.T) {
	// Status values outside the lifecycle constants are accepted verbatim.
	cmd, err := commands.NewChangeStatusCommand("ORD-1001", delivery.Status("out_for_delivery"))
	require.NoError(t, err)
	assert.Equal(t, delivery.Status("out_for_delivery"), cmd.NewStatus())
}

func TestNewChangeStatusCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewChangeStatusCommand("", delivery.StatusCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestNewChangeStatusCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewChangeStatusCommand("ORD-1001", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNewStatusIsRequired)
}
