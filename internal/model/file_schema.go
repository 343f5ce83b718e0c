package model

// Tablespace describes a tablespace. The file and runtime shapes are the same.
type Tablespace struct {
	Name        string     `json:"name"`
	BlockSize   FlexString `json:"blocksize,omitempty"`
	AutoExtend  FlexString `json:"autoextend,omitempty"`
	InitialSize FlexString `json:"initialsize,omitempty"`
	MaxSize     FlexString `json:"maxsize,omitempty"`
	Instance    FlexString `json:"instance,omitempty"`
	BigFile     FlexString `json:"bigfile,omitempty"`
	Temp        FlexString `json:"temp,omitempty"`
	Encrypt     FlexString `json:"encrypt,omitempty"`
}

// ProfileParameter is one password or resource limit of a profile.
type ProfileParameter struct {
	Name  string     `json:"name"`
	Value FlexString `json:"value"`
}

// Profile describes a database profile. The file and runtime shapes are the same.
type Profile struct {
	Name               string             `json:"name"`
	PasswordParameters []ProfileParameter `json:"password_parameters,omitempty"`
	ResourceParameters []ProfileParameter `json:"resource_parameters,omitempty"`
}

// FileDirectory is a directory object as authored.
type FileDirectory struct {
	Name               string `json:"name"`
	Path               Scoped `json:"path"`
	Environment        Scoped `json:"environment"`
	ExcludeEnvironment Scoped `json:"excludeEnvironment"`
}

// FileDatabaseLink is a database link as authored.
type FileDatabaseLink struct {
	Name                       string `json:"name"`
	Owner                      string `json:"owner"`
	SourceUserName             Scoped `json:"sourceUserName"`
	ConnectionString           Scoped `json:"connectionString"`
	SourcePasswordType         string `json:"sourcePasswordType"`
	SourcePasswordVariableName string `json:"sourcePasswordVariableName"`
	Environment                Scoped `json:"environment"`
	ExcludeEnvironment         Scoped `json:"excludeEnvironment"`
}

// FilePrivilege is a grant as authored. Grant, On and To may each list
// several names; the builder expands them into one Privilege per combination.
type FilePrivilege struct {
	Grant              StringList `json:"grant"`
	On                 StringList `json:"on"`
	To                 StringList `json:"to"`
	Environment        Scoped     `json:"environment"`
	ExcludeEnvironment Scoped     `json:"excludeEnvironment"`
	GrantOption        bool       `json:"grantOption"`
}

// FileNetworkAcl is a network access control entry as authored.
type FileNetworkAcl struct {
	Host               StringList `json:"host"`
	Username           StringList `json:"username"`
	Port               FlexString `json:"port"`
	UpperPort          FlexString `json:"upperport"`
	PrivilegeType      string     `json:"privilegeType"`
	Environment        Scoped     `json:"environment"`
	ExcludeEnvironment Scoped     `json:"excludeEnvironment"`
}

// FileRole is a role as authored.
type FileRole struct {
	Name               string          `json:"name"`
	PasswordType       string          `json:"passwordType"`
	RoleDN             Scoped          `json:"roleDN"`
	Privileges         []FilePrivilege `json:"privileges"`
	Environment        Scoped          `json:"environment"`
	ExcludeEnvironment Scoped          `json:"excludeEnvironment"`
}

// FileQuota is a tablespace quota as authored.
type FileQuota struct {
	Size       Scoped `json:"size"`
	Tablespace Scoped `json:"tablespace"`
}

// FileUser is a user schema as authored.
type FileUser struct {
	Name                string           `json:"name"`
	GatekeeperProxyFlag bool             `json:"gatekeeperProxyFlag"`
	ExpirePasswordFlag  bool             `json:"expirePasswordFlag"`
	PasswordType        string           `json:"passwordType"`
	PasswordDN          Scoped           `json:"passwordDN"`
	Quota               []FileQuota      `json:"quota"`
	Profile             Scoped           `json:"profile"`
	Tablespace          Scoped           `json:"tablespace"`
	AccountStatus       Scoped           `json:"accountStatus"`
	Privileges          []FilePrivilege  `json:"privileges"`
	NetworkAcls         []FileNetworkAcl `json:"networkAcls"`
	Environment         Scoped           `json:"environment"`
	ExcludeEnvironment  Scoped           `json:"excludeEnvironment"`
}

// FileConfiguration is a whole-config file: any subset of sections.
type FileConfiguration struct {
	DataOwnerUserID string             `json:"dataOwnerUserId"`
	TableSpaces     []Tablespace       `json:"tableSpaces"`
	Profiles        []Profile          `json:"profiles"`
	Directories     []FileDirectory    `json:"directories"`
	DatabaseLinks   []FileDatabaseLink `json:"databaseLinks"`
	Roles           []FileRole         `json:"roles"`
	UserSchemas     []FileUser         `json:"userSchemas"`
	Privileges      []FilePrivilege    `json:"privileges"`
	NetworkAcls     []FileNetworkAcl   `json:"networkAcls"`
	ExcludedObjects []string           `json:"excludedObjects"`
}
