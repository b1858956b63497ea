package commands_test

import (
	"context"
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	existing := mustOrder(t, order.Created)
	newItems := []order.Item{mustItem(t, "espresso", order.Big, 3)}
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), newItems)
	require.NoError(t, err)

	repo := &MockOrderRepository{}
	uow := &MockUnitOfWork{}
	factory := &MockUnitOfWorkFactory{}
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, result)
	assert.Equal(t, newItems, result.Items())
	assert.Equal(t, order.Created, result.Status())
	mock.AssertExpectationsForObjects(t, factory, uow, repo)
}

func TestUpdateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	factory := &MockUnitOfWorkFactory{}

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err := handler.Handle(context.Background(), commands.UpdateOrderCommand{})

	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, []order.Item{mustItem(t, "latte", order.Small, 1)})
	require.NoError(t, err)

	notFoundErr := errs.NewObjectNotFoundError("order", orderID.String())
	repo := &MockOrderRepository{}
	uow := &MockUnitOfWork{}
	factory := &MockUnitOfWorkFactory{}
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, notFoundErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	mock.AssertExpectationsForObjects(t, factory, uow, repo)
}

func TestUpdateOrderCommandHandler_Handle_UpdateErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	existing := mustOrder(t, order.Paid)
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), []order.Item{mustItem(t, "latte", order.Small, 1)})
	require.NoError(t, err)

	updateErr := errors.New("update failed")
	repo := &MockOrderRepository{}
	uow := &MockUnitOfWork{}
	factory := &MockUnitOfWorkFactory{}
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(updateErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, updateErr)
	uow.AssertNotCalled(t, "Commit", ctx)
	mock.AssertExpectationsForObjects(t, factory, uow, repo)
}
