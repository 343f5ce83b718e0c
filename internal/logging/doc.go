// Package logging provides concrete implementations of the dbconfig.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages to stderr via logrus
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
