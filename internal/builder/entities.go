package builder

import (
	"context"

	"github.com/vvka-141/dbconfig/internal/model"
)

func buildDirectory(d model.FileDirectory) model.Directory {
	return model.Directory{
		Name:                d.Name,
		Path:                d.Path.Values(),
		Environments:        d.Environment.Environments(),
		ExcludeEnvironments: d.ExcludeEnvironment.Exclusions(),
	}
}

func (b *Builder) buildDatabaseLink(ctx context.Context, l model.FileDatabaseLink) (model.DatabaseLink, error) {
	password, err := b.passwords.ResolveDatabaseLink(ctx, l)
	if err != nil {
		return model.DatabaseLink{}, err
	}
	return model.DatabaseLink{
		Name:                l.Name,
		Owner:               l.Owner,
		ConnectionString:    l.ConnectionString.Values(),
		SourceUserName:      l.SourceUserName.Values(),
		SourceUserPassword:  password,
		Environments:        l.Environment.Environments(),
		ExcludeEnvironments: l.ExcludeEnvironment.Exclusions(),
	}, nil
}

// buildRole returns the role and its nested privileges, which default to
// being granted to the role itself.
func (b *Builder) buildRole(ctx context.Context, r model.FileRole) (model.Role, []model.Privilege, error) {
	password, err := b.passwords.ResolveRole(ctx, r)
	if err != nil {
		return model.Role{}, nil, err
	}
	var pt model.PasswordSourceType
	if r.PasswordType != "" {
		pt, _ = model.ParsePasswordSourceType(r.PasswordType)
	}
	role := model.Role{
		Name:                r.Name,
		PasswordType:        pt,
		RoleDN:              r.RoleDN.Values(),
		Password:            password,
		Environments:        r.Environment.Environments(),
		ExcludeEnvironments: r.ExcludeEnvironment.Exclusions(),
	}
	return role, ExpandPrivileges(r.Privileges, r.Name), nil
}

// buildUser returns the user with its nested privileges and network ACLs.
func (b *Builder) buildUser(ctx context.Context, u model.FileUser) (model.User, []model.Privilege, []model.NetworkAcl, error) {
	password, err := b.passwords.ResolveUser(ctx, u)
	if err != nil {
		return model.User{}, nil, nil, err
	}
	pt, _ := model.ParsePasswordSourceType(u.PasswordType)

	var quota []model.Quota
	for _, q := range u.Quota {
		quota = append(quota, model.Quota{
			Size:       q.Size.Values(),
			Tablespace: q.Tablespace.Values(),
		})
	}

	user := model.User{
		Name:                u.Name,
		Password:            password,
		PasswordType:        pt,
		PasswordDN:          u.PasswordDN.Values(),
		GatekeeperProxyFlag: u.GatekeeperProxyFlag,
		ExpirePasswordFlag:  u.ExpirePasswordFlag,
		Quota:               quota,
		Profile:             u.Profile.Values(),
		Tablespace:          u.Tablespace.Values(),
		AccountStatus:       u.AccountStatus.Values(),
		Environments:        u.Environment.Environments(),
		ExcludeEnvironments: u.ExcludeEnvironment.Exclusions(),
	}
	return user, ExpandPrivileges(u.Privileges, u.Name), ExpandNetworkAcls(u.NetworkAcls), nil
}
