package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// aferoFile implements File on top of an afero.Fs
type aferoFile struct {
	fs      afero.Fs
	path    string
	relPath string
	info    FileInfo
}

func (f *aferoFile) Path() string         { return f.path }
func (f *aferoFile) RelativePath() string { return f.relPath }
func (f *aferoFile) Info() FileInfo       { return f.info }

func (f *aferoFile) ReadContent() ([]byte, error) {
	return afero.ReadFile(f.fs, f.path)
}

// aferoDirectory implements Directory on top of an afero.Fs
type aferoDirectory struct {
	fs   afero.Fs
	path string
}

func (d *aferoDirectory) Path() string { return d.path }

func (d *aferoDirectory) Walk(fn func(File, error) error) error {
	return afero.Walk(d.fs, d.path, func(path string, info os.FileInfo, walkErr error) error {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
				}
			}()

			if walkErr != nil {
				callbackErr = fn(nil, walkErr)
				return
			}

			relPath, relErr := filepath.Rel(d.path, path)
			if relErr != nil {
				callbackErr = fn(nil, fmt.Errorf("failed to get relative path: %w", relErr))
				return
			}

			callbackErr = fn(&aferoFile{
				fs:      d.fs,
				path:    path,
				relPath: filepath.ToSlash(relPath),
				info:    info,
			}, nil)
		}()

		return callbackErr
	})
}

// AferoFileSystem implements FileSystem over any afero.Fs.
// Production code uses the OS filesystem; tests use an in-memory one.
type AferoFileSystem struct {
	fs afero.Fs
}

// New wraps an afero filesystem. A nil fs means the OS filesystem.
func New(fs afero.Fs) *AferoFileSystem {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &AferoFileSystem{fs: fs}
}

// NewOSFileSystem creates a provider backed by the OS filesystem.
func NewOSFileSystem() *AferoFileSystem {
	return New(afero.NewOsFs())
}

// NewMemoryFileSystem creates an empty in-memory provider.
func NewMemoryFileSystem() *AferoFileSystem {
	return New(afero.NewMemMapFs())
}

// Fs exposes the underlying afero filesystem.
func (p *AferoFileSystem) Fs() afero.Fs { return p.fs }

func (p *AferoFileSystem) Open(path string) (Directory, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	absPath := path
	if _, ok := p.fs.(*afero.OsFs); ok {
		if absPath, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
	}

	return &aferoDirectory{fs: p.fs, path: filepath.Clean(absPath)}, nil
}

func (p *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(p.fs, path)
}

func (p *AferoFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := afero.ReadDir(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return entries, nil
}

func (p *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *AferoFileSystem) WriteFile(path string, content []byte) error {
	if err := p.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(p.fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (p *AferoFileSystem) MkdirAll(path string) error {
	return p.fs.MkdirAll(path, 0o755)
}

func (p *AferoFileSystem) RemoveAll(path string) error {
	return p.fs.RemoveAll(path)
}

func (p *AferoFileSystem) Exists(path string) (bool, error) {
	return afero.Exists(p.fs, path)
}
