package templates

import "fmt"

// Kind identifies a SQL script template.
type Kind int

const (
	DatabaseLinks Kind = iota
	DropDatabaseLinks
	Tablespaces
	Profile
	CreateUser
	AlterUser
	CreateRole
	DropRole
	RemoveDatabaseBranches
	RemoveDatabaseFiles
	WriteDatabaseConfig
	Directories
	Privileges
	NetworkAcls
	Quota
	UserFabrication
	RoleFabrication
	DBLinkFabrication
	RefreshMView
)

// Info describes a template for listing.
type Info struct {
	Kind        Kind
	Name        string
	File        string
	Description string
}

var registry = []Info{
	{DatabaseLinks, "DatabaseLinks", "create_db_links.sql", "Create the database links of one config file"},
	{DropDatabaseLinks, "DropDatabaseLinks", "drop_db_links.sql", "Drop managed database links no longer configured"},
	{Tablespaces, "Tablespaces", "tablespaces.sql", "Create the tablespaces of one config file"},
	{Profile, "Profile", "profiles.sql", "Create and alter every configured profile"},
	{CreateUser, "CreateUser", "create_users.sql", "Create or alter the users of one config file"},
	{AlterUser, "AlterUser", "alter_users.sql", "Apply account status and lock unconfigured users"},
	{CreateRole, "CreateRole", "create_roles.sql", "Create or alter the roles of one config file"},
	{DropRole, "DropRole", "drop_roles.sql", "Drop managed roles no longer configured"},
	{RemoveDatabaseBranches, "RemoveDatabaseBranches", "remove_branches.sql", "Forget stored config of deleted branches"},
	{RemoveDatabaseFiles, "RemoveDatabaseFiles", "remove_files.sql", "Forget stored config of deleted files"},
	{WriteDatabaseConfig, "WriteDatabaseConfig", "write_config.sql", "Store one chunk of a config snapshot"},
	{Directories, "Directories", "directories.sql", "Create every configured directory"},
	{Privileges, "Privileges", "privileges.sql", "Grant every configured privilege"},
	{NetworkAcls, "NetworkAcls", "network_acls.sql", "Append every configured network ACL entry"},
	{Quota, "Quota", "user_quota.sql", "Apply every configured tablespace quota"},
	{UserFabrication, "UserFabrication", "user_fabrication.sql", "One user row of a create-users script"},
	{RoleFabrication, "RoleFabrication", "role_fabrication.sql", "One role row of a create-roles script"},
	{DBLinkFabrication, "DBLinkFabrication", "dblink_fabrication.sql", "One link row of a create-links script"},
	{RefreshMView, "RefreshMView", "refresh_mview.sql", "Reassemble stored config and refresh the config view"},
}

// All returns every template in declaration order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// File returns the template file name for k.
func (k Kind) File() (string, error) {
	if k < 0 || int(k) >= len(registry) {
		return "", fmt.Errorf("unknown template kind %d", int(k))
	}
	return registry[k].File, nil
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(registry) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return registry[k].Name
}
