// Package migrations embeds the schema so the binary can bootstrap a
// fresh database on its own. Integration tests get the same schema
// through the storage constructor, which applies it on connect.
package migrations

import _ "embed"

//go:embed init.sql
var Init string
