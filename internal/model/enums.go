package model

import "strings"

// PasswordSourceType governs how a user or role credential is obtained.
type PasswordSourceType string

const (
	PasswordUnknown          PasswordSourceType = "Unknown"
	PasswordPipelineVariable PasswordSourceType = "PipelineVariable"
	PasswordGlobal           PasswordSourceType = "Global"
	PasswordExternal         PasswordSourceType = "External"
	PasswordNoAuthentication PasswordSourceType = "No_Authentication"
)

var passwordSourceTypes = []PasswordSourceType{
	PasswordUnknown,
	PasswordPipelineVariable,
	PasswordGlobal,
	PasswordExternal,
	PasswordNoAuthentication,
}

// ParsePasswordSourceType matches s case-insensitively against the known
// types. "NoAuthentication" is accepted as an alias of No_Authentication.
func ParsePasswordSourceType(s string) (PasswordSourceType, bool) {
	if strings.EqualFold(s, "NoAuthentication") {
		return PasswordNoAuthentication, true
	}
	for _, t := range passwordSourceTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return PasswordUnknown, false
}

// ValidPasswordSourceTypes lists the accepted spellings for error messages.
func ValidPasswordSourceTypes() string {
	names := make([]string, 0, len(passwordSourceTypes))
	for _, t := range passwordSourceTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// DatabaseLinkPasswordSourceType governs how a database link connects.
type DatabaseLinkPasswordSourceType string

const (
	LinkPasswordUnknown          DatabaseLinkPasswordSourceType = "Unknown"
	LinkPasswordPipelineVariable DatabaseLinkPasswordSourceType = "PipelineVariable"
	LinkPasswordCurrentUser      DatabaseLinkPasswordSourceType = "CurrentUser"
)

// ParseDatabaseLinkPasswordSourceType matches s case-insensitively.
func ParseDatabaseLinkPasswordSourceType(s string) (DatabaseLinkPasswordSourceType, bool) {
	for _, t := range []DatabaseLinkPasswordSourceType{LinkPasswordUnknown, LinkPasswordPipelineVariable, LinkPasswordCurrentUser} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return LinkPasswordUnknown, false
}

// Markers written in place of a literal credential.
const (
	CurrentUserMarker      = "CURRENT_USER"
	NoAuthenticationMarker = "<no_authentication>"
)
