//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// Each test runs inside its own transaction, which is rolled back when the
// test completes, so tests can run in parallel against one database:
//
//	func TestMyFeature(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        authors := postgres.NewPostgresAuthorStore(tx, nil)
//	        ...
//	    })
//	}
//
// The connection string is read from DATABASE_URL. Tests are skipped when it
// is unset.
package testdb
