package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewListDeliveriesQuery(t *testing.T) {
	query := queries.NewListDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestListDeliveriesQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.ListDeliveriesQuery
	require.Error(t, query.Validate())
}

func TestNewStatusCountsQuery(t *testing.T) {
	query := queries.NewStatusCountsQuery()
	require.NoError(t, query.Validate())
}

func TestStatusCountsQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.StatusCountsQuery
	require.Error(t, query.Validate())
}
