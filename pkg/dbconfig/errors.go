package dbconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := compiler.Compile(ctx, repos)
//	if errors.Is(err, dbconfig.ErrValidation) {
//	    // Report every collected problem
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigParse indicates a config file is not valid JSON.
	ErrConfigParse = errors.New("config parse failed")

	// ErrValidation indicates the compiled configuration violates a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrPasswordResolution indicates a credential could not be resolved.
	ErrPasswordResolution = errors.New("password resolution failed")

	// ErrDeploymentScriptMissing indicates the master script was not found after generation.
	ErrDeploymentScriptMissing = errors.New("deployment script missing")

	// ErrRepository indicates repository identity could not be determined.
	ErrRepository = errors.New("repository resolution failed")

	// ErrTemplate indicates a SQL template could not be loaded.
	ErrTemplate = errors.New("template error")
)

// ConfigParseError reports a config file that could not be decoded.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("error parsing config file %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

func (e *ConfigParseError) Is(target error) bool { return target == ErrConfigParse }

// ValidationError carries every business-rule violation found during a
// compilation run. Problems are reported together rather than one at a time.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "validation failed: " + e.Problems[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed with %d problems:", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// PasswordResolutionError reports a credential that could not be resolved
// for a role, user or database link.
type PasswordResolutionError struct {
	Kind   string
	Name   string
	Reason string
}

func (e *PasswordResolutionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Name, e.Reason)
}

func (e *PasswordResolutionError) Is(target error) bool { return target == ErrPasswordResolution }

// DeploymentScriptMissingError reports that the master script does not exist
// after generation finished.
type DeploymentScriptMissingError struct {
	Path string
}

func (e *DeploymentScriptMissingError) Error() string {
	return fmt.Sprintf("deployment script %s does not exist after generation", e.Path)
}

func (e *DeploymentScriptMissingError) Is(target error) bool {
	return target == ErrDeploymentScriptMissing
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConfigParse):
		return ExitParseError
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPasswordResolution):
		return ExitPasswordResolutionError
	case errors.Is(err, ErrDeploymentScriptMissing):
		return ExitDeploymentScriptMissing
	case errors.Is(err, ErrRepository):
		return ExitRepositoryError
	case errors.Is(err, ErrTemplate):
		return ExitConfigError
	}

	if isUsageError(err) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// usagePatterns are the message fragments cobra and pflag produce for
// command-line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

func isUsageError(err error) bool {
	msg := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
