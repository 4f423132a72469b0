package migrations

import "github.com/lopezator/migrator"

// Migrations contains all schema changes in the order they must be applied.
var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init category table",
		Func: initCategoryTable,
	},
	&migrator.MigrationNoTx{
		Name: "Add active column to categories table",
		Func: addActiveToCategoriesTable,
	},
}
