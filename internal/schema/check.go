package schema

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Check executes the statements against an in-memory database to catch
// DDL that no engine would accept. SQLite tolerates the portable column
// type names the registry emits, so this is a syntax smoke test, not a
// dialect validation.
func Check(statements []string) error {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open check database: %w", err)
	}
	defer db.Close()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
	}
	return nil
}
