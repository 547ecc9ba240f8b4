package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSettings = commands.CheckoutSettings{
	Sender:      notification.Address{Name: "coolbeans.biz", Email: "shop@coolbeans.biz"},
	SiteURL:     "https://coolbeans.biz",
	MaxAttempts: 3,
}

type checkoutFixture struct {
	factory   *MockOrderUoWFactory
	generator *MockGenerator
	renderer  *MockRenderer
	notifier  *MockNotifier
	recorder  *MockRecorder
}

func newCheckoutFixture() checkoutFixture {
	return checkoutFixture{
		factory:   new(MockOrderUoWFactory),
		generator: new(MockGenerator),
		renderer:  new(MockRenderer),
		notifier:  new(MockNotifier),
		recorder:  new(MockRecorder),
	}
}

func (f checkoutFixture) handler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		f.factory, f.generator, f.renderer, f.notifier, f.recorder, testSettings, discardLogger(),
	)
}

func (f checkoutFixture) assertExpectations(t *testing.T) {
	f.factory.AssertExpectations(t)
	f.generator.AssertExpectations(t)
	f.renderer.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.recorder.AssertExpectations(t)
}

// expectAttempt wires one unit of work whose Add returns addErr.
func (f checkoutFixture) expectAttempt(ctx context.Context, code string, addErr error) {
	tc, _ := order.NewTrackingCode(code)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	f.generator.On("Generate").Return(tc, nil).Once()
	f.factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Code().String() == code && o.Status() == order.Shipped
	})).Return(addErr).Once()
	if addErr == nil {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
}

func adaCommand(t *testing.T) commands.CheckoutCommand {
	cmd, err := commands.NewCheckoutCommand("Ada", "3", "ada@example.com", "123-45-6789")
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	f.expectAttempt(ctx, "aZ09xQ", nil)

	expectedData := ports.ConfirmationData{
		Code: "aZ09xQ", Name: "Ada", Quantity: 3, Email: "ada@example.com", SiteURL: "https://coolbeans.biz",
	}
	f.renderer.On("RenderConfirmationEmail", expectedData).
		Return(ports.RenderedEmail{Subject: "Cool bean shipment", HTMLBody: "<p>hi</p>"}, nil).Once()
	f.notifier.On("Enqueue", ctx, mock.MatchedBy(func(n notification.Notification) bool {
		return n.To().Email == "ada@example.com" &&
			n.To().Name == "Ada" &&
			n.From() == testSettings.Sender &&
			n.Subject() == "Cool bean shipment" &&
			n.HTMLBody() == "<p>hi</p>"
	})).Return(nil).Once()
	f.recorder.On("OrderCreated").Once()

	h := f.handler()
	result, err := h.Handle(ctx, adaCommand(t))

	require.NoError(t, err)
	assert.Equal(t, "aZ09xQ", result.Code)
	assert.Equal(t, expectedData, result.Confirmation)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RetriesOnCollision(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	duplicate := errs.NewObjectAlreadyExistsError("order", "aaaaaa")
	f.expectAttempt(ctx, "aaaaaa", duplicate)
	f.expectAttempt(ctx, "bbbbbb", nil)

	f.recorder.On("CheckoutCollision").Once()
	f.recorder.On("OrderCreated").Once()
	f.renderer.On("RenderConfirmationEmail", mock.Anything).
		Return(ports.RenderedEmail{Subject: "s", HTMLBody: "b"}, nil).Once()
	f.notifier.On("Enqueue", ctx, mock.Anything).Return(nil).Once()

	h := f.handler()
	result, err := h.Handle(ctx, adaCommand(t))

	require.NoError(t, err)
	assert.Equal(t, "bbbbbb", result.Code)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_CollisionsExhausted(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	for _, code := range []string{"aaaaaa", "bbbbbb", "cccccc"} {
		f.expectAttempt(ctx, code, errs.NewObjectAlreadyExistsError("order", code))
	}
	f.recorder.On("CheckoutCollision").Times(3)

	h := f.handler()
	_, err := h.Handle(ctx, adaCommand(t))

	require.ErrorIs(t, err, commands.ErrTrackingCodeExhausted)
	f.notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_StoreErrorIsNotRetried(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	storeErr := errors.New("disk I/O error")
	f.expectAttempt(ctx, "aaaaaa", storeErr)

	h := f.handler()
	_, err := h.Handle(ctx, adaCommand(t))

	require.ErrorIs(t, err, storeErr)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EnqueueFailureStillSucceeds(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	f.expectAttempt(ctx, "aZ09xQ", nil)
	f.recorder.On("OrderCreated").Once()
	f.renderer.On("RenderConfirmationEmail", mock.Anything).
		Return(ports.RenderedEmail{Subject: "s", HTMLBody: "b"}, nil).Once()
	f.notifier.On("Enqueue", ctx, mock.Anything).Return(errors.New("dispatcher stopped")).Once()

	h := f.handler()
	result, err := h.Handle(ctx, adaCommand(t))

	require.NoError(t, err)
	assert.Equal(t, "aZ09xQ", result.Code)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RenderFailureStillSucceeds(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	f.expectAttempt(ctx, "aZ09xQ", nil)
	f.recorder.On("OrderCreated").Once()
	f.renderer.On("RenderConfirmationEmail", mock.Anything).
		Return(ports.RenderedEmail{}, errors.New("template broken")).Once()

	h := f.handler()
	_, err := h.Handle(ctx, adaCommand(t))

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCheckoutFixture()
	h := f.handler()

	_, err := h.Handle(t.Context(), commands.CheckoutCommand{})

	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	tc, _ := order.NewTrackingCode("aZ09xQ")
	uow := new(MockOrderUoW)
	mock.InOrder(
		f.generator.On("Generate").Return(tc, nil).Once(),
		f.factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := f.handler()
	_, err := h.Handle(ctx, adaCommand(t))

	require.Error(t, err)
	uow.AssertExpectations(t)
	f.assertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_GeneratorError(t *testing.T) {
	f := newCheckoutFixture()
	f.generator.On("Generate").Return(order.TrackingCode{}, errors.New("entropy")).Once()

	h := f.handler()
	_, err := h.Handle(t.Context(), adaCommand(t))

	require.Error(t, err)
	f.assertExpectations(t)
}
