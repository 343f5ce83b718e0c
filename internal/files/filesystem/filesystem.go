package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the full path to the file
	Path() string

	// RelativePath returns the path relative to the walked root, with forward slashes
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the full path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory. Returning filepath.SkipDir from fn for a directory
	// skips its contents. Any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the directory entries at the given path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// Writer creates and removes files. Generated scripts are written through it.
type Writer interface {
	// WriteFile writes content to path, creating parent directories.
	WriteFile(path string, content []byte) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}

// FileSystem is a provider that can also write.
type FileSystem interface {
	FileSystemProvider
	Writer
}
