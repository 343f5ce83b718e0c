// Package filesystem provides filesystem abstraction interfaces and an
// afero-backed implementation.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and reads files
//   - Writer: Creates and removes files and directories
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and content
//
// Implementations:
//   - NewOSFileSystem: Production implementation using the OS filesystem
//   - NewMemoryFileSystem: In-memory implementation for testing
package filesystem
