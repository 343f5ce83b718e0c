package model

import "strings"

// FileKind identifies which builder handles a config file.
type FileKind int

const (
	KindWholeConfig FileKind = iota
	KindTablespace
	KindProfile
	KindDirectory
	KindDatabaseLink
	KindRole
	KindUser
	KindPrivileges
	KindNetworkAcls
	KindExcludedObjects
)

var kindSuffixes = []struct {
	suffix string
	kind   FileKind
}{
	{".tablespace.json", KindTablespace},
	{".profile.json", KindProfile},
	{".directory.json", KindDirectory},
	{".databaselink.json", KindDatabaseLink},
	{".role.json", KindRole},
	{".user.json", KindUser},
	{".privileges.json", KindPrivileges},
	{".networkacls.json", KindNetworkAcls},
	{".excludedobjects.json", KindExcludedObjects},
}

var kindNames = map[FileKind]string{
	KindWholeConfig:     "config",
	KindTablespace:      "tablespace",
	KindProfile:         "profile",
	KindDirectory:       "directory",
	KindDatabaseLink:    "databaselink",
	KindRole:            "role",
	KindUser:            "user",
	KindPrivileges:      "privileges",
	KindNetworkAcls:     "networkacls",
	KindExcludedObjects: "excludedobjects",
}

// Classify maps a file name to its kind by case-insensitive suffix.
// Any other name is a whole-config file.
func Classify(name string) FileKind {
	lower := strings.ToLower(name)
	for _, s := range kindSuffixes {
		if strings.HasSuffix(lower, s.suffix) {
			return s.kind
		}
	}
	return KindWholeConfig
}

func (k FileKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}
