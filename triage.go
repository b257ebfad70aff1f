// Package triage serves a single human-edited plain-text troubleshooting
// guide over HTTP. It parses a lightweight markdown-like markup into
// sections grouped by application heading, caches the parsed result keyed
// by the guide file's modification time, and supports filtering by
// application and free-text search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, fsnotify/).
package triage
