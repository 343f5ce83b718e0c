package dbconfig

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess                 = 0  // Generation completed successfully
	ExitGeneralError            = 1  // Unknown or unclassified error
	ExitUsageError              = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic                   = 3  // Internal panic (unexpected crash)
	ExitConfigError             = 10 // Invalid configuration or parameters
	ExitParseError              = 11 // Malformed JSON in a config file
	ExitValidationError         = 12 // Business-rule violations in the compiled configuration
	ExitPasswordResolutionError = 13 // Missing secret or contradictory password source
	ExitDeploymentScriptMissing = 14 // Master deployment script was not written
	ExitRepositoryError         = 15 // Repository identity could not be resolved
)

const (
	// ChunkSize is the maximum number of UTF-8 bytes of serialized configuration
	// carried by a single snapshot script. The SQL client that runs the
	// generated scripts rejects longer literals.
	ChunkSize = 32000

	// DefaultScriptRoot is the scratch directory, relative to the working
	// directory, where generated scripts are written.
	DefaultScriptRoot = "configDeployment"

	// DefaultDeploymentScript is the file name of the master deployment script.
	DefaultDeploymentScript = "deployment.sql"

	// DefaultEnvironment tags a value that applies to every environment.
	DefaultEnvironment = "DEFAULT"

	// NoExclusion tags an exclusion list that excludes nothing.
	NoExclusion = "NONE"

	// NullValue is written for scoped values that were not authored.
	NullValue = "<NULL>"

	// UnknownBranch is reported when the current branch of a repository cannot be determined.
	UnknownBranch = "unknown"
)

// DefaultAllowedProfiles lists the user profile types accepted when the
// project configuration does not override them.
var DefaultAllowedProfiles = []string{
	"INL_LUA",
	"INL_INTERFACE",
	"INL_ELEVATED",
	"INL_PFEXEMPT",
}
