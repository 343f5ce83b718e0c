package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"

	"github.com/vvka-141/dbconfig/internal/jsonc"
)

// Calculator is an interface for computing config file checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization:
//  1. Remove // and /* */ comments while preserving string literals
//  2. Re-encode valid JSON canonically (sorted keys, no insignificant whitespace)
//  3. Otherwise collapse whitespace runs to single spaces
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

var canonical = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(content)))
	return hex.EncodeToString(hash[:])
}

func (c SHA256) normalize(content []byte) string {
	cleaned := jsonc.Strip(content)

	var doc interface{}
	if err := canonical.Unmarshal(cleaned, &doc); err == nil {
		if out, err := canonical.MarshalToString(doc); err == nil {
			return out
		}
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	lastWasSpace := false
	for _, r := range string(cleaned) {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}
	return strings.TrimSpace(b.String())
}
