package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rider"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReportLocationCommand_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	recordedAt := time.Now().UTC()

	cmd, err := commands.NewReportLocationCommand(riderID, point, recordedAt)
	require.NoError(t, err)
	assert.Equal(t, riderID, cmd.RiderID())
	assert.Equal(t, point, cmd.Point())
	assert.Equal(t, recordedAt, cmd.RecordedAt())
}

func TestNewReportLocationCommand_ZeroTimestamp(t *testing.T) {
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)

	_, err = commands.NewReportLocationCommand(kernel.NewUUID(), point, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReportLocationCommand_InvalidPoint(t *testing.T) {
	_, err := commands.NewReportLocationCommand(kernel.NewUUID(), kernel.GeoPoint{}, time.Now())
	require.Error(t, err)
}

func TestReportLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	cmd, err := commands.NewReportLocationCommand(kernel.NewUUID(), point, time.Now().UTC())
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("UpsertLatest", ctx, mock.AnythingOfType("rider.Location")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	stored := locationRepo.Calls[0].Arguments[1].(rider.Location)
	assert.True(t, stored.RiderID().IsEqual(cmd.RiderID()))
	assert.Equal(t, cmd.RecordedAt(), stored.RecordedAt())
}

func TestReportLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReportLocationCommand{} // not constructed properly

	factory := new(MockLocationUoWFactory)
	handler := commands.NewReportLocationCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrReportLocationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCleanupLocationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCleanupLocationsCommand()

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("DeleteWithoutActiveOrder", ctx).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCleanupLocationsCommandHandler(factory)
	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
