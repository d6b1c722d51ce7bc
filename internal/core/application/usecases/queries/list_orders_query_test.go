package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_ValidInput(t *testing.T) {
	scopeID := kernel.NewUUID()
	status := order.StatusPending

	query, err := queries.NewListOrdersQuery(queries.ScopeCustomer, scopeID, &status)
	require.NoError(t, err)
	assert.Equal(t, queries.ScopeCustomer, query.Scope())
	assert.Equal(t, scopeID, query.ScopeID())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.StatusPending, *query.Status())
}

func TestNewListOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.ScopeRider, kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
}

func TestNewListOrdersQuery_InvalidScope(t *testing.T) {
	_, err := queries.NewListOrdersQuery(queries.ScopeUnknown, kernel.NewUUID(), nil)
	require.Error(t, err)
}

func TestNewListOrdersQuery_InvalidScopeID(t *testing.T) {
	_, err := queries.NewListOrdersQuery(queries.ScopeRestaurant, kernel.UUID{}, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListOrdersQuery_UnknownStatusFilter(t *testing.T) {
	status := order.StatusUnknown
	_, err := queries.NewListOrdersQuery(queries.ScopeRestaurant, kernel.NewUUID(), &status)
	require.Error(t, err)
}

func TestListOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.ListOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewGetRiderLocationQuery_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()
	viewer := queries.Viewer{Role: order.ActorCustomer, ID: kernel.NewUUID()}

	query, err := queries.NewGetRiderLocationQuery(riderID, viewer)
	require.NoError(t, err)
	assert.Equal(t, riderID, query.RiderID())
	assert.Equal(t, viewer, query.Viewer())
}

func TestNewGetRiderLocationQuery_UnknownViewerRole(t *testing.T) {
	_, err := queries.NewGetRiderLocationQuery(
		kernel.NewUUID(), queries.Viewer{Role: order.ActorUnknown, ID: kernel.NewUUID()})
	require.Error(t, err)
}

func TestNewGetRiderLocationQuery_MissingViewerID(t *testing.T) {
	_, err := queries.NewGetRiderLocationQuery(
		kernel.NewUUID(), queries.Viewer{Role: order.ActorAdmin})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
