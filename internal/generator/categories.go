package generator

// Category directories below the script root.
const (
	CategoryRemove        = "remove"
	CategoryConfigs       = "configs"
	CategoryRefreshMView  = "refreshmview"
	CategoryTablespaces   = "tablespaces"
	CategoryProfiles      = "profiles"
	CategoryUsers         = "users"
	CategoryRoles         = "roles"
	CategoryDirectories   = "directories"
	CategoryNetworkAcls   = "networkAcls"
	CategoryPrivileges    = "privileges"
	CategoryDatabaseLinks = "databaseLinks"
)

// RunOrder is the order categories appear in the master script.
var RunOrder = []string{
	CategoryRemove,
	CategoryConfigs,
	CategoryRefreshMView,
	CategoryTablespaces,
	CategoryProfiles,
	CategoryUsers,
	CategoryRoles,
	CategoryDirectories,
	CategoryNetworkAcls,
	CategoryPrivileges,
	CategoryDatabaseLinks,
}
