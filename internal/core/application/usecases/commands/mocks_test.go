package commands_test

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, code order.TrackingCode) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, code order.TrackingCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) Generate() (order.TrackingCode, error) {
	args := m.Called()
	return args.Get(0).(order.TrackingCode), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) RenderConfirmationEmail(data ports.ConfirmationData) (ports.RenderedEmail, error) {
	args := m.Called(data)
	return args.Get(0).(ports.RenderedEmail), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Enqueue(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) OrderCreated() { m.Called() }
func (m *MockRecorder) OrderStatusChanged(t string) { m.Called(t) }
func (m *MockRecorder) OrderDeleted() { m.Called() }
func (m *MockRecorder) CheckoutCollision() { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
