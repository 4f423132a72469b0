package migrations

import "database/sql"

func initCategoryTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL
		);
	`)

	return err
}
