package builder

import (
	"github.com/vvka-141/dbconfig/internal/model"
)

// nullLiteral fills privilege and ACL fields that were not authored.
const nullLiteral = "null"

// ExpandPrivileges emits one Privilege per grant × on × to combination.
// Grant varies slowest, then on, then to. A privilege without "to" is
// granted to owner, or to "null" when owner is empty.
func ExpandPrivileges(privileges []model.FilePrivilege, owner string) []model.Privilege {
	defaultTo := owner
	if defaultTo == "" {
		defaultTo = nullLiteral
	}

	var out []model.Privilege
	for _, p := range privileges {
		envs := p.Environment.Environments()
		excl := p.ExcludeEnvironment.Exclusions()
		combos := model.CartesianProduct(
			p.Grant.OrDefault(nullLiteral),
			p.On.OrDefault(nullLiteral),
			p.To.OrDefault(defaultTo),
		)
		for _, c := range combos {
			out = append(out, model.Privilege{
				Grant:              c[0],
				On:                 c[1],
				To:                 c[2],
				Environment:        envs,
				ExcludeEnvironment: excl,
				GrantOption:        p.GrantOption,
			})
		}
	}
	return out
}

// ExpandNetworkAcls emits one NetworkAcl per host × username combination.
// A missing upperport falls back to port.
func ExpandNetworkAcls(acls []model.FileNetworkAcl) []model.NetworkAcl {
	var out []model.NetworkAcl
	for _, a := range acls {
		port := orNull(a.Port.String())
		upper := a.UpperPort.String()
		if upper == "" {
			upper = port
		}
		envs := a.Environment.Environments()
		excl := a.ExcludeEnvironment.Exclusions()
		for _, c := range model.CartesianProduct(a.Host.OrDefault(nullLiteral), a.Username.OrDefault(nullLiteral)) {
			out = append(out, model.NetworkAcl{
				Host:               c[0],
				Username:           c[1],
				Port:               port,
				UpperPort:          upper,
				PrivilegeType:      orNull(a.PrivilegeType),
				Environment:        envs,
				ExcludeEnvironment: excl,
			})
		}
	}
	return out
}

func orNull(s string) string {
	if s == "" {
		return nullLiteral
	}
	return s
}
