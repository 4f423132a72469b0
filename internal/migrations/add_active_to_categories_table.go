package migrations

import "database/sql"

func addActiveToCategoriesTable(db *sql.DB) error {
	_, err := db.Exec(`
		ALTER TABLE categories ADD COLUMN IF NOT EXISTS active BOOLEAN NOT NULL DEFAULT FALSE;
	`)

	return err
}
