package database_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursematch/internal/adapters/database"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/postgres"
)

func setupMockDB(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return postgres.NewClientWithDB(mockDB), mock
}

func TestNurseAdapter_ListNurses(t *testing.T) {
	client, mock := setupMockDB(t)
	adapter := database.NewNurseAdapter(client)

	rows := sqlmock.NewRows([]string{
		"id", "name", "city", "rating", "reviews_count",
		"services", "expertise_tags", "latitude", "longitude", "availability",
	}).
		AddRow("n1", "Dana Levi", "Tel Aviv", 4.8, 120,
			[]byte(`{"Wound Care","Pediatrics"}`), []byte(`{Geriatrics}`),
			32.08, 34.78, []byte(`{"days":["sun","mon"]}`)).
		AddRow("n2", "Noa Bar", "Haifa", 4.2, 35,
			[]byte(`{"Home Care"}`), []byte(`{}`), nil, nil, nil)

	mock.ExpectQuery(`SELECT .+ FROM "nurses"`).WillReturnRows(rows)

	nurses, err := adapter.ListNurses(context.Background())

	require.NoError(t, err)
	require.Len(t, nurses, 2)

	assert.Equal(t, "n1", nurses[0].ID)
	assert.Equal(t, []string{"Wound Care", "Pediatrics"}, nurses[0].Services)
	require.NotNil(t, nurses[0].Location)
	assert.InDelta(t, 32.08, nurses[0].Location.Latitude, 0.001)
	assert.JSONEq(t, `{"days":["sun","mon"]}`, string(nurses[0].Availability))

	// Missing coordinates and availability stay absent, not zeroed.
	assert.Nil(t, nurses[1].Location)
	assert.Nil(t, nurses[1].Availability)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNurseAdapter_ListNurses_QueryError(t *testing.T) {
	client, mock := setupMockDB(t)
	adapter := database.NewNurseAdapter(client)

	mock.ExpectQuery(`SELECT .+ FROM "nurses"`).WillReturnError(assert.AnError)

	_, err := adapter.ListNurses(context.Background())
	require.Error(t, err)
}

func TestNurseAdapter_Count(t *testing.T) {
	client, mock := setupMockDB(t)
	adapter := database.NewNurseAdapter(client)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := adapter.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
