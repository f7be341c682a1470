// Package main hosts the folio CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into archive
// loads, registry listings, SQLite exports, and configuration scaffolding.
// It centralizes configuration resolution, logging setup, and archive
// loading so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
