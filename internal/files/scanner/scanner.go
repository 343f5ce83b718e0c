package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dbconfig/internal/checksum"
	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/internal/model"
)

// ConfigFile is one discovered config file.
type ConfigFile struct {
	// Path is the full path as seen by the filesystem provider.
	Path string
	// RelativePath is relative to the scanned root, with forward slashes.
	RelativePath string
	Name         string
	Kind         model.FileKind
	Content      []byte
	Checksum     string
	ChecksumRaw  string
}

// Scanner discovers config files from a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner using the OS filesystem.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanRepository returns every *.json file below root.
func (s *Scanner) ScanRepository(root string) ([]ConfigFile, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []ConfigFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		name := file.Info().Name()
		if file.Info().IsDir() {
			if file.RelativePath() != "." && isHidden(name) {
				return filepath.SkipDir
			}
			return nil
		}

		if isHidden(name) || !strings.EqualFold(filepath.Ext(name), ".json") {
			return nil
		}

		cf, err := s.processFile(file)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", file.RelativePath(), err)
		}
		files = append(files, cf)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *Scanner) processFile(file filesystem.File) (ConfigFile, error) {
	content, err := file.ReadContent()
	if err != nil {
		return ConfigFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	name := file.Info().Name()
	return ConfigFile{
		Path:         file.Path(),
		RelativePath: file.RelativePath(),
		Name:         name,
		Kind:         model.Classify(name),
		Content:      content,
		Checksum:     s.calculator.CalculateNormalized(content),
		ChecksumRaw:  s.calculator.CalculateRaw(content),
	}, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
