package postgres

import "embed"

// Migrations holds the schema migrations; pass MigrationsDir as the
// directory to pkg/postgres.RunMigrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
