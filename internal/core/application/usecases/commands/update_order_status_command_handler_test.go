package commands_test

import (
	"errors"
	"testing"

	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	pending := mustNewOrder(orderID, kernel.NewUUID(), kernel.NewUUID())
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Approved, user.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Approved, decided.Status())
	assert.NotNil(t, decided.UpdatedAt())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RejectReleasesPet(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	petID := kernel.NewUUID()
	pending := mustNewOrder(orderID, kernel.NewUUID(), petID)
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Rejected, user.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	petRepo := new(MockPetRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("PetRepository").Return(petRepo).Once(),
		petRepo.On("Release", mock.Anything, petID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Rejected, decided.Status())
	orderRepo.AssertExpectations(t)
	petRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Approved, user.RoleUser)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	decided := mustNewOrder(orderID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, decided.Reject())
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Approved, user.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(decided, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	assert.Equal(t, order.Rejected, decided.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Approved, user.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReleaseError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	petID := kernel.NewUUID()
	pending := mustNewOrder(orderID, kernel.NewUUID(), petID)
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Rejected, user.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	petRepo := new(MockPetRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("PetRepository").Return(petRepo).Once(),
		petRepo.On("Release", mock.Anything, petID).Return(errors.New("release error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
