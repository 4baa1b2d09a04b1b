package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func locatedDelivery(t *testing.T, lat, lon float64) *delivery.Delivery {
	t.Helper()
	target, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	d, err := delivery.RestoreDelivery(
		1, "ORD-1001", "Warehouse 4", "12 Main Street", "+15551234567",
		delivery.StatusLocationReceived, &target, ts, ts,
	)
	require.NoError(t, err)
	return d
}

func TestSubmitLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitLocationCommand("ORD-1001", 48.8584, 2.2945)
	stored := locatedDelivery(t, 48.8584, 2.2945)

	repo := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("SetLocation", ctx, "ORD-1001", cmd.Target()).Return(stored, nil).Once(),
		notifier.On("LocationReceived", ctx, stored).Return(true).Once(),
	)

	h := commands.NewSubmitLocationCommandHandler(repo, notifier)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, stored, got)
	require.Equal(t, delivery.StatusLocationReceived, got.Status())
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitLocationCommand{} // not constructed properly

	repo := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	h := commands.NewSubmitLocationCommandHandler(repo, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSubmitLocationCommandIsNotConstructed)
	repo.AssertNotCalled(t, "SetLocation", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitLocationCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitLocationCommand("ORD-MISSING", 48.8584, 2.2945)

	repo := new(MockDeliveryRepository)
	repo.On("SetLocation", ctx, "ORD-MISSING", cmd.Target()).
		Return(nil, errs.NewObjectNotFoundError("order_id", "ORD-MISSING")).Once()
	notifier := new(MockNotifier)

	h := commands.NewSubmitLocationCommandHandler(repo, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	notifier.AssertNotCalled(t, "LocationReceived", mock.Anything, mock.Anything)
}
