package repo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *SQLRepository {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := New(db)
	require.NoError(t, r.Migrate())
	return r
}

func TestUsers(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	id, err := r.CreateUser(ctx, "tech1", "tech1@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	gotID, hash, err := r.GetByLogin(ctx, "tech1")
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "hash", hash)

	// unknown login is not an error, just empty
	gotID, hash, err = r.GetByLogin(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, gotID)
	assert.Empty(t, hash)
}

func TestServiceReports(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	reports := []ServiceReport{
		{ID: "a", Technician: "sam", Site: "12 Oak St", Refrigerant: "R410A", Summary: "tune-up", Readings: "{}", CreatedUnix: 100},
		{ID: "b", Technician: "sam", Site: "9 Elm Ave", Refrigerant: "R22", Summary: "low charge", Readings: "{}", CreatedUnix: 200},
		{ID: "c", Technician: "kim", Site: "Warehouse 4", Refrigerant: "R454B", Summary: "install check", Readings: "{}", CreatedUnix: 150},
	}
	for _, rep := range reports {
		require.NoError(t, r.InsertReport(ctx, rep))
	}

	all, err := r.ListReports(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
	assert.Equal(t, "a", all[2].ID)

	mine, err := r.ListReports(ctx, "sam")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	require.NoError(t, r.DeleteReport(ctx, "b"))
	assert.Equal(t, sql.ErrNoRows, r.DeleteReport(ctx, "b"))

	all, err = r.ListReports(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalog(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	items := []CatalogItem{
		{Category: "Fittings", Name: "Wye 8in", Unit: "ea", UnitPrice: 12},
		{Category: "Duct", Name: "Flex 6in x 25ft", Unit: "box", UnitPrice: 38},
	}
	require.NoError(t, r.ReplaceCatalog(ctx, items))

	got, err := r.ListCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ordered by category then name
	assert.Equal(t, "Duct", got[0].Category)
	assert.Equal(t, "Fittings", got[1].Category)

	// replace is a full swap
	require.NoError(t, r.ReplaceCatalog(ctx, items[:1]))
	got, err = r.ListCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
