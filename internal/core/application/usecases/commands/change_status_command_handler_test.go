package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeStatusCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeStatusCommand("ORD-1001", delivery.StatusCompleted)
	stored := storedDelivery(t, delivery.StatusCompleted)

	repo := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("SetStatus", ctx, "ORD-1001", delivery.StatusCompleted).Return(stored, nil).Once(),
		notifier.On("DeliveryCompleted", ctx, stored).Return(true).Once(),
	)

	h := commands.NewChangeStatusCommandHandler(repo, notifier)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, stored, got)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "DeliveryFailed", mock.Anything, mock.Anything)
}

func TestChangeStatusCommandHandler_Handle_Failed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeStatusCommand("ORD-1001", delivery.StatusFailed)
	stored := storedDelivery(t, delivery.StatusFailed)

	repo := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("SetStatus", ctx, "ORD-1001", delivery.StatusFailed).Return(stored, nil).Once(),
		notifier.On("DeliveryFailed", ctx, stored).Return(true).Once(),
	)

	h := commands.NewChangeStatusCommandHandler(repo, notifier)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "DeliveryCompleted", mock.Anything, mock.Anything)
}

func TestChangeStatusCommandHandler_Handle_NonTerminalStatusIsSilent(t *testing.T) {
	ctx := t.Context()
	for _, status := range []delivery.Status{
		delivery.StatusCreated,
		delivery.StatusLocationReceived,
		delivery.Status("out_for_delivery"),
	} {
		cmd, _ := commands.NewChangeStatusCommand("ORD-1001", status)
		stored := storedDelivery(t, status)

		repo := new(MockDeliveryRepository)
		repo.On("SetStatus", ctx, "ORD-1001", status).Return(stored, nil).Once()
		notifier := new(MockNotifier)

		h := commands.NewChangeStatusCommandHandler(repo, notifier)
		got, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		require.Equal(t, status, got.Status())
		repo.AssertExpectations(t)
		notifier.AssertNotCalled(t, "DeliveryCompleted", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "DeliveryFailed", mock.Anything, mock.Anything)
	}
}

func TestChangeStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeStatusCommand{} // not constructed properly

	repo := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	h := commands.NewChangeStatusCommandHandler(repo, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeStatusCommandIsNotConstructed)
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatusCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeStatusCommand("ORD-MISSING", delivery.StatusCompleted)

	repo := new(MockDeliveryRepository)
	repo.On("SetStatus", ctx, "ORD-MISSING", delivery.StatusCompleted).
		Return(nil, errs.NewObjectNotFoundError("order_id", "ORD-MISSING")).Once()
	notifier := new(MockNotifier)

	h := commands.NewChangeStatusCommandHandler(repo, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "DeliveryCompleted", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "DeliveryFailed", mock.Anything, mock.Anything)
}
