// Package model defines the Place and Region entities served by the lookup
// layer, the Language rows owned by a Region, and the Kind used to namespace
// per-entity state such as access counters and cache keys.
//
// The structs double as bun models: table and column names follow the
// classic "world" schema (city, country, country_language) so an existing
// database can be mounted without migrations.
package model
