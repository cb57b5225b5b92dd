package db

import _ "embed"

// Schema creates all tables and seeds the achievements catalog. Idempotent.
//
//go:embed schema.sql
var Schema string
