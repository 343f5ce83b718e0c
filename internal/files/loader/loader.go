package loader

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/vvka-141/dbconfig/internal/files/scanner"
	"github.com/vvka-141/dbconfig/internal/jsonc"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Loader decodes comment-tolerant JSON config files.
// Loader is stateless and safe for concurrent use.
type Loader struct {
	api jsoniter.API
}

// New creates a Loader.
func New() *Loader {
	return &Loader{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// Decode parses file into v.
func (l *Loader) Decode(file scanner.ConfigFile, v interface{}) error {
	return l.DecodeBytes(file.RelativePath, file.Content, v)
}

// DecodeBytes parses content into v. path is used for error reporting only.
func (l *Loader) DecodeBytes(path string, content []byte, v interface{}) error {
	cleaned := jsonc.Strip(content)
	if err := l.api.Unmarshal(cleaned, v); err != nil {
		return &dbconfig.ConfigParseError{Path: path, Err: err}
	}
	return nil
}

// IsParseError reports whether err came from a malformed config file.
func IsParseError(err error) bool {
	var pe *dbconfig.ConfigParseError
	return errors.As(err, &pe)
}

// Describe formats a parse error for display.
func Describe(err error) string {
	var pe *dbconfig.ConfigParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("Error parsing JSON in file: %s (%v)", pe.Path, pe.Err)
	}
	return err.Error()
}
