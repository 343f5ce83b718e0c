package builder

import (
	"context"
	"fmt"

	"github.com/vvka-141/dbconfig/internal/files/loader"
	"github.com/vvka-141/dbconfig/internal/files/scanner"
	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/internal/secrets"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// BuildFunc builds the configuration held by one classified file.
type BuildFunc func(ctx context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error)

// buildFuncs maps each file kind to its builder.
var buildFuncs = map[model.FileKind]BuildFunc{
	model.KindWholeConfig:     buildWholeConfig,
	model.KindTablespace:      buildTablespaceFile,
	model.KindProfile:         buildProfileFile,
	model.KindDirectory:       buildDirectoryFile,
	model.KindDatabaseLink:    buildDatabaseLinkFile,
	model.KindRole:            buildRoleFile,
	model.KindUser:            buildUserFile,
	model.KindPrivileges:      buildPrivilegesFile,
	model.KindNetworkAcls:     buildNetworkAclsFile,
	model.KindExcludedObjects: buildExcludedObjectsFile,
}

// Builder converts a single config file into a DatabaseConfiguration.
// Builder is safe for concurrent use if its password resolver is.
type Builder struct {
	loader    *loader.Loader
	passwords *secrets.Resolver
	logger    dbconfig.Logger
}

// NewBuilder creates a Builder.
// Panics if passwords or logger is nil.
func NewBuilder(passwords *secrets.Resolver, logger dbconfig.Logger) *Builder {
	if passwords == nil {
		panic("passwords cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Builder{
		loader:    loader.New(),
		passwords: passwords,
		logger:    logger,
	}
}

// Build routes file to the builder for its kind and stamps the result with
// the owning repository. Provenance paths are left to the caller.
func (b *Builder) Build(ctx context.Context, file scanner.ConfigFile, repo dbconfig.Repository) (*model.DatabaseConfiguration, error) {
	fn, ok := buildFuncs[file.Kind]
	if !ok {
		return nil, fmt.Errorf("no builder registered for %s file %s", file.Kind, file.RelativePath)
	}

	b.logger.Verbose("Building %s as %s", file.RelativePath, file.Kind)
	cfg, err := fn(ctx, b, file)
	if err != nil {
		return nil, err
	}

	cfg.FilePath = file.Path
	cfg.Repo = repo
	cfg.Kind = file.Kind
	cfg.GitHash = repo.LatestCommit
	return cfg, nil
}

func buildTablespaceFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var ts model.Tablespace
	if err := b.loader.Decode(file, &ts); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{TableSpaces: []model.Tablespace{ts}}, nil
}

func buildProfileFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var p model.Profile
	if err := b.loader.Decode(file, &p); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{Profiles: []model.Profile{p}}, nil
}

func buildDirectoryFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var d model.FileDirectory
	if err := b.loader.Decode(file, &d); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{Directories: []model.Directory{buildDirectory(d)}}, nil
}

func buildDatabaseLinkFile(ctx context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var l model.FileDatabaseLink
	if err := b.loader.Decode(file, &l); err != nil {
		return nil, err
	}
	link, err := b.buildDatabaseLink(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
	}
	return &model.DatabaseConfiguration{DatabaseLinks: []model.DatabaseLink{link}}, nil
}

func buildRoleFile(ctx context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var r model.FileRole
	if err := b.loader.Decode(file, &r); err != nil {
		return nil, err
	}
	role, privs, err := b.buildRole(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
	}
	return &model.DatabaseConfiguration{Roles: []model.Role{role}, Privileges: privs}, nil
}

func buildUserFile(ctx context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var u model.FileUser
	if err := b.loader.Decode(file, &u); err != nil {
		return nil, err
	}
	user, privs, acls, err := b.buildUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
	}
	return &model.DatabaseConfiguration{Users: []model.User{user}, Privileges: privs, NetworkAcls: acls}, nil
}

func buildPrivilegesFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var privs model.OneOrMany[model.FilePrivilege]
	if err := b.loader.Decode(file, &privs); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{Privileges: ExpandPrivileges(privs, "")}, nil
}

func buildNetworkAclsFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var acls model.OneOrMany[model.FileNetworkAcl]
	if err := b.loader.Decode(file, &acls); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{NetworkAcls: ExpandNetworkAcls(acls)}, nil
}

func buildExcludedObjectsFile(_ context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var objects model.StringList
	if err := b.loader.Decode(file, &objects); err != nil {
		return nil, err
	}
	return &model.DatabaseConfiguration{ExcludedObjects: objects}, nil
}

// buildWholeConfig runs every section builder over the sections present.
// Top-level privileges come first, then those nested in roles, then those
// nested in users, so regenerated output keeps a stable order.
func buildWholeConfig(ctx context.Context, b *Builder, file scanner.ConfigFile) (*model.DatabaseConfiguration, error) {
	var fc model.FileConfiguration
	if err := b.loader.Decode(file, &fc); err != nil {
		return nil, err
	}

	cfg := &model.DatabaseConfiguration{
		DataOwner:       fc.DataOwnerUserID,
		TableSpaces:     fc.TableSpaces,
		Profiles:        fc.Profiles,
		ExcludedObjects: fc.ExcludedObjects,
		Privileges:      ExpandPrivileges(fc.Privileges, ""),
		NetworkAcls:     ExpandNetworkAcls(fc.NetworkAcls),
	}

	for _, d := range fc.Directories {
		cfg.Directories = append(cfg.Directories, buildDirectory(d))
	}

	for _, l := range fc.DatabaseLinks {
		link, err := b.buildDatabaseLink(ctx, l)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
		}
		cfg.DatabaseLinks = append(cfg.DatabaseLinks, link)
	}

	roles := &model.DatabaseConfiguration{}
	for _, r := range fc.Roles {
		role, privs, err := b.buildRole(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
		}
		roles.Roles = append(roles.Roles, role)
		roles.Privileges = append(roles.Privileges, privs...)
	}

	users := &model.DatabaseConfiguration{}
	for _, u := range fc.UserSchemas {
		user, privs, acls, err := b.buildUser(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.RelativePath, err)
		}
		users.Users = append(users.Users, user)
		users.Privileges = append(users.Privileges, privs...)
		users.NetworkAcls = append(users.NetworkAcls, acls...)
	}

	cfg.Merge(roles)
	cfg.Merge(users)
	return cfg, nil
}
