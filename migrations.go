// Package bskybridge holds assets shared by the bridge binaries.
package bskybridge

import "embed"

// Migrations contains the goose SQL migrations of the delivery log.
//
//go:embed migrations/*.sql
var Migrations embed.FS
