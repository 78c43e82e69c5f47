// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// The library has a single driven port: SnippetSource, the document
// supply. The core is agnostic to where records originate (CSV files,
// a SQLite database, an embedded dataset) as long as each record
// projects into an indexable document.
package driven
