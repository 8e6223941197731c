package store

import "embed"

// Schema migrations ship inside the binary so the idempotent schema-creation
// step always runs at startup, before any request is served.

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS
