package model

import (
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Directory is a normalized directory object.
type Directory struct {
	Name                string           `json:"name"`
	Path                []ScopedValue    `json:"path"`
	Environments        []EnvironmentTag `json:"environments"`
	ExcludeEnvironments []ExclusionTag   `json:"excludeEnvironments"`
}

// DatabaseLink is a normalized database link. SourceUserPassword holds the
// resolved secret or CurrentUserMarker and is never serialized.
type DatabaseLink struct {
	Name                string           `json:"name"`
	Owner               string           `json:"owner"`
	ConnectionString    []ScopedValue    `json:"connectionString"`
	SourceUserName      []ScopedValue    `json:"sourceUserName"`
	SourceUserPassword  string           `json:"-"`
	Environments        []EnvironmentTag `json:"environments"`
	ExcludeEnvironments []ExclusionTag   `json:"excludeEnvironments"`
}

// Role is a normalized role. Password is never serialized.
type Role struct {
	Name                string             `json:"name"`
	PasswordType        PasswordSourceType `json:"passwordType,omitempty"`
	RoleDN              []ScopedValue      `json:"roleDN"`
	Password            string             `json:"-"`
	Environments        []EnvironmentTag   `json:"environments"`
	ExcludeEnvironments []ExclusionTag     `json:"excludeEnvironments"`
}

// Quota is a normalized tablespace quota.
type Quota struct {
	Size       []ScopedValue `json:"size"`
	Tablespace []ScopedValue `json:"tablespace"`
}

// User is a normalized user schema. Password is never serialized.
type User struct {
	Name                string             `json:"name"`
	Password            string             `json:"-"`
	PasswordType        PasswordSourceType `json:"passwordType"`
	PasswordDN          []ScopedValue      `json:"passwordDN"`
	GatekeeperProxyFlag bool               `json:"gatekeeperProxyFlag,omitempty"`
	ExpirePasswordFlag  bool               `json:"expirePasswordFlag,omitempty"`
	Quota               []Quota            `json:"quota,omitempty"`
	Profile             []ScopedValue      `json:"profile"`
	Tablespace          []ScopedValue      `json:"tablespace"`
	AccountStatus       []ScopedValue      `json:"accountStatus"`
	Environments        []EnvironmentTag   `json:"environments"`
	ExcludeEnvironments []ExclusionTag     `json:"excludeEnvironments"`
}

// Privilege is one fully expanded grant.
type Privilege struct {
	Grant              string           `json:"grant"`
	On                 string           `json:"on"`
	To                 string           `json:"to"`
	Environment        []EnvironmentTag `json:"environment"`
	ExcludeEnvironment []ExclusionTag   `json:"excludeEnvironment"`
	GrantOption        bool             `json:"grantOption"`
}

// NetworkAcl is one fully expanded network access control entry.
type NetworkAcl struct {
	Host               string           `json:"host"`
	Username           string           `json:"username"`
	Port               string           `json:"port"`
	UpperPort          string           `json:"upperport"`
	PrivilegeType      string           `json:"privilegeType"`
	Environment        []EnvironmentTag `json:"environment"`
	ExcludeEnvironment []ExclusionTag   `json:"excludeEnvironment"`
}

// DatabaseConfiguration is the normalized content of one config file plus
// its provenance. It is built once by the compiler and read by the generator.
type DatabaseConfiguration struct {
	FilePath        string
	Repo            dbconfig.Repository
	Kind            FileKind
	DataOwner       string
	GitHash         string
	TableSpaces     []Tablespace
	Profiles        []Profile
	Directories     []Directory
	DatabaseLinks   []DatabaseLink
	Users           []User
	Privileges      []Privilege
	NetworkAcls     []NetworkAcl
	Roles           []Role
	ExcludedObjects []string

	// ConfigFilePath is the source path relative to the working directory,
	// with forward slashes.
	ConfigFilePath string
	// ScriptName is ConfigFilePath reduced to a file-name-safe identifier.
	ScriptName string
	// ConfigID is a stable identifier for the source file across runs.
	ConfigID string
	// Checksum is the normalized checksum of the source file.
	Checksum string
}

// HasPrivileges reports whether any grant is managed by this configuration.
func (c *DatabaseConfiguration) HasPrivileges() bool {
	return len(c.Privileges) > 0
}

// Snapshot is the password-free subset of a configuration that is stored in
// the target database for audit.
type Snapshot struct {
	DataOwner       string         `json:"dataOwner,omitempty"`
	Profiles        []Profile      `json:"profiles,omitempty"`
	Directories     []Directory    `json:"directories,omitempty"`
	Roles           []Role         `json:"roles,omitempty"`
	Privileges      []Privilege    `json:"privileges,omitempty"`
	NetworkAcls     []NetworkAcl   `json:"networkAcls,omitempty"`
	DatabaseLinks   []DatabaseLink `json:"databaseLinks,omitempty"`
	Users           []User         `json:"users,omitempty"`
	ExcludedObjects []string       `json:"excludedObjects,omitempty"`
}

// Snapshot returns the audit view of the configuration.
func (c *DatabaseConfiguration) Snapshot() Snapshot {
	return Snapshot{
		DataOwner:       c.DataOwner,
		Profiles:        c.Profiles,
		Directories:     c.Directories,
		Roles:           c.Roles,
		Privileges:      c.Privileges,
		NetworkAcls:     c.NetworkAcls,
		DatabaseLinks:   c.DatabaseLinks,
		Users:           c.Users,
		ExcludedObjects: c.ExcludedObjects,
	}
}

// MarshalSnapshot serializes the snapshot indented by two spaces.
func (c *DatabaseConfiguration) MarshalSnapshot() (string, error) {
	b, err := json.MarshalIndent(c.Snapshot(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Merge appends the entities of other to c. Provenance is left untouched.
func (c *DatabaseConfiguration) Merge(other *DatabaseConfiguration) {
	if other == nil {
		return
	}
	if c.DataOwner == "" {
		c.DataOwner = other.DataOwner
	}
	c.TableSpaces = append(c.TableSpaces, other.TableSpaces...)
	c.Profiles = append(c.Profiles, other.Profiles...)
	c.Directories = append(c.Directories, other.Directories...)
	c.DatabaseLinks = append(c.DatabaseLinks, other.DatabaseLinks...)
	c.Users = append(c.Users, other.Users...)
	c.Privileges = append(c.Privileges, other.Privileges...)
	c.NetworkAcls = append(c.NetworkAcls, other.NetworkAcls...)
	c.Roles = append(c.Roles, other.Roles...)
	c.ExcludedObjects = append(c.ExcludedObjects, other.ExcludedObjects...)
}
