// Package migrations embeds the SQL schema for the itinerary document store
// so goose can run it programmatically from the server bootstrap and from
// integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose instead of relying on a filesystem path at runtime.
//
//go:embed *.sql
var FS embed.FS
