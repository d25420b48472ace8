package store

// Test-only aliases so the external store_test package can reach unexported helpers.
var (
	IsIntegrityViolation = isIntegrityViolation
	PgErrorFields        = pgErrorFields
)
