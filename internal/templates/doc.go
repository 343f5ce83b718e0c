// Package templates holds the SQL script templates and the token
// substitution engine that materializes them.
//
// Templates are embedded in the binary. A project may override any of them
// by placing a file of the same name in its template directory.
//
// Tokens look like <name>. Every occurrence is replaced in a single pass,
// substituted values are never re-scanned, and tokens without a value are
// replaced by the empty string.
package templates
