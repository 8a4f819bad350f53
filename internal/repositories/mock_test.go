package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// containsQuery matches when the executed statement contains the expected
// fragment, ignoring differences in whitespace.
var containsQuery = sqlmock.QueryMatcherFunc(func(expected, actual string) error {
	want := strings.Join(strings.Fields(expected), " ")
	got := strings.Join(strings.Fields(actual), " ")
	if !strings.Contains(got, want) {
		return fmt.Errorf("query %q does not contain %q", got, want)
	}
	return nil
})

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(containsQuery))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "pgx"), mock
}

var propertyRowColumns = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "street", "city", "province", "post_code", "country",
	"parking_spaces", "number_of_bathrooms", "number_of_bedrooms", "active",
}
