package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Entity kinds named in resolution errors.
const (
	KindRole         = "Role"
	KindUser         = "User"
	KindDatabaseLink = "DatabaseLink"
)

// RoleVariable is the secret name holding a role password.
func RoleVariable(name string) string {
	return strings.ToUpper(name) + ".RolePassword"
}

// UserVariable is the secret name holding a user password.
func UserVariable(name string) string {
	return strings.ToUpper(name) + ".Password"
}

// DatabaseLinkVariable is the secret name holding a database link password.
// override replaces owner as the prefix when set.
func DatabaseLinkVariable(owner, override, name string) string {
	prefix := owner
	if override != "" {
		prefix = override
	}
	return prefix + "." + strings.ToUpper(name) + ".DBLinkPassword"
}

// Resolver turns a password source declaration into a credential.
// Resolver is safe for concurrent use if the lookup is.
type Resolver struct {
	lookup dbconfig.SecretLookup
	logger dbconfig.Logger
}

// NewResolver creates a Resolver.
// Panics if lookup or logger is nil.
func NewResolver(lookup dbconfig.SecretLookup, logger dbconfig.Logger) *Resolver {
	if lookup == nil {
		panic("lookup cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Resolver{lookup: lookup, logger: logger}
}

func (r *Resolver) fetch(ctx context.Context, kind, name, variable string) (string, bool, error) {
	r.logger.Verbose("Resolving %s %s from %s", kind, name, variable)
	v, found, err := r.lookup.Lookup(ctx, variable)
	if err != nil {
		return "", false, &dbconfig.PasswordResolutionError{
			Kind:   kind,
			Name:   name,
			Reason: fmt.Sprintf("secret lookup of %s failed: %v", variable, err),
		}
	}
	return v, found, nil
}

// ResolveRole returns the role password, or "" when the role has none or
// gets it from a directory. A role with neither passwordType nor roleDN has
// no password. Global requires roleDN and roleDN requires a passwordType.
func (r *Resolver) ResolveRole(ctx context.Context, role model.FileRole) (string, error) {
	if role.PasswordType == "" && !role.RoleDN.IsSet() {
		return "", nil
	}

	pt, ok := model.ParsePasswordSourceType(role.PasswordType)
	if (pt == model.PasswordGlobal && !role.RoleDN.IsSet()) || (role.PasswordType == "" && role.RoleDN.IsSet()) {
		return "", &dbconfig.PasswordResolutionError{
			Kind:   KindRole,
			Name:   role.Name,
			Reason: "must have both a roleDN and a passwordType of Global, not only one of them",
		}
	}

	switch {
	case ok && pt == model.PasswordPipelineVariable:
		variable := RoleVariable(role.Name)
		password, found, err := r.fetch(ctx, KindRole, role.Name, variable)
		if err != nil {
			return "", err
		}
		if !found {
			return "", &dbconfig.PasswordResolutionError{
				Kind:   KindRole,
				Name:   role.Name,
				Reason: fmt.Sprintf("no password found in %s using %s", variable, pt),
			}
		}
		return password, nil
	case ok && pt == model.PasswordGlobal:
		return "", nil
	default:
		return "", &dbconfig.PasswordResolutionError{
			Kind:   KindRole,
			Name:   role.Name,
			Reason: fmt.Sprintf("invalid password source type %q, valid values are %s", role.PasswordType, model.ValidPasswordSourceTypes()),
		}
	}
}

// ResolveUser returns the user password. Global and External users are
// authenticated by their passwordDN and get "". A PipelineVariable user may
// lack a secret when it has a passwordDN or its password expires on creation.
func (r *Resolver) ResolveUser(ctx context.Context, user model.FileUser) (string, error) {
	pt, ok := model.ParsePasswordSourceType(user.PasswordType)
	if !ok {
		pt = model.PasswordUnknown
	}

	switch pt {
	case model.PasswordPipelineVariable:
		variable := UserVariable(user.Name)
		password, found, err := r.fetch(ctx, KindUser, user.Name, variable)
		if err != nil {
			return "", err
		}
		if !found && !user.PasswordDN.IsSet() && !user.ExpirePasswordFlag {
			return "", &dbconfig.PasswordResolutionError{
				Kind:   KindUser,
				Name:   user.Name,
				Reason: fmt.Sprintf("no password in %s or passwordDN found using %s", variable, pt),
			}
		}
		return password, nil
	case model.PasswordGlobal, model.PasswordExternal:
		if !user.PasswordDN.IsSet() {
			return "", &dbconfig.PasswordResolutionError{
				Kind:   KindUser,
				Name:   user.Name,
				Reason: fmt.Sprintf("no passwordDN found when using %s", pt),
			}
		}
		return "", nil
	case model.PasswordNoAuthentication:
		return model.NoAuthenticationMarker, nil
	default:
		return "", &dbconfig.PasswordResolutionError{
			Kind:   KindUser,
			Name:   user.Name,
			Reason: fmt.Sprintf("invalid password source type %q, valid values are %s", user.PasswordType, model.ValidPasswordSourceTypes()),
		}
	}
}

// ResolveDatabaseLink returns the password the link connects with, or
// CurrentUserMarker for links that connect as the current user.
func (r *Resolver) ResolveDatabaseLink(ctx context.Context, link model.FileDatabaseLink) (string, error) {
	pt, _ := model.ParseDatabaseLinkPasswordSourceType(link.SourcePasswordType)
	label := link.Owner + "." + link.Name

	switch pt {
	case model.LinkPasswordPipelineVariable:
		variable := DatabaseLinkVariable(link.Owner, link.SourcePasswordVariableName, link.Name)
		password, found, err := r.fetch(ctx, KindDatabaseLink, label, variable)
		if err != nil {
			return "", err
		}
		if !found {
			return "", &dbconfig.PasswordResolutionError{
				Kind:   KindDatabaseLink,
				Name:   label,
				Reason: fmt.Sprintf("no password found in %s using %s", variable, pt),
			}
		}
		return password, nil
	case model.LinkPasswordCurrentUser:
		return model.CurrentUserMarker, nil
	default:
		return "", &dbconfig.PasswordResolutionError{
			Kind:   KindDatabaseLink,
			Name:   label,
			Reason: fmt.Sprintf("invalid source password type %q, valid values are PipelineVariable, CurrentUser", link.SourcePasswordType),
		}
	}
}
