package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rider"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRiderCommand_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(riderID, "Jane Smith", "+15550002222")
	require.NoError(t, err)
	assert.Equal(t, riderID, cmd.RiderID())
	assert.Equal(t, "Jane Smith", cmd.Name())
	assert.Equal(t, "+15550002222", cmd.Phone())
}

func TestNewCreateRiderCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateRiderCommand(kernel.NewUUID(), "", "+15550002222")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateRiderCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewCreateRiderCommand(kernel.NewUUID(), "Jane Smith", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRiderCommand(kernel.NewUUID(), "Jane Smith", "+15550002222")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Registered riders start out available.
	candidate := riderRepo.Calls[0].Arguments[1].(*rider.Rider)
	assert.True(t, candidate.IsAvailable())
}

func TestCreateRiderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRiderCommand{} // not constructed properly

	factory := new(MockRiderUoWFactory)
	handler := commands.NewCreateRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
