package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

func newResolver(values map[string]string) *Resolver {
	return NewResolver(StaticLookup(values), logging.NewNullLogger())
}

func TestNewResolver_NilArgs(t *testing.T) {
	assert.Panics(t, func() { NewResolver(nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewResolver(StaticLookup{}, nil) })
}

func TestVariableNames(t *testing.T) {
	assert.Equal(t, "APP.Password", UserVariable("app"))
	assert.Equal(t, "READER.RolePassword", RoleVariable("Reader"))
	assert.Equal(t, "APP.REMOTE.DBLinkPassword", DatabaseLinkVariable("APP", "", "remote"))
	assert.Equal(t, "SHARED.REMOTE.DBLinkPassword", DatabaseLinkVariable("APP", "SHARED", "remote"))
}

func TestResolveRole(t *testing.T) {
	r := newResolver(map[string]string{"READER.RolePassword": "pw"})
	ctx := context.Background()

	tests := []struct {
		name    string
		role    model.FileRole
		want    string
		wantErr string
	}{
		{"no password", model.FileRole{Name: "plain"}, "", ""},
		{"pipeline variable", model.FileRole{Name: "reader", PasswordType: "PipelineVariable"}, "pw", ""},
		{"global with dn", model.FileRole{Name: "g", PasswordType: "Global", RoleDN: model.ScopedScalar("cn=g")}, "", ""},
		{"global without dn", model.FileRole{Name: "g", PasswordType: "Global"}, "", "must have both"},
		{"dn without type", model.FileRole{Name: "g", RoleDN: model.ScopedScalar("cn=x")}, "", "must have both"},
		{"missing secret", model.FileRole{Name: "writer", PasswordType: "PipelineVariable"}, "", "WRITER.RolePassword"},
		{"invalid type", model.FileRole{Name: "x", PasswordType: "Bogus"}, "", "invalid password source type"},
		{"external not allowed for roles", model.FileRole{Name: "x", PasswordType: "External"}, "", "invalid password source type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveRole(ctx, tt.role)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbconfig.ErrPasswordResolution)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUser(t *testing.T) {
	r := newResolver(map[string]string{"APP.Password": "pw"})
	ctx := context.Background()

	tests := []struct {
		name    string
		user    model.FileUser
		want    string
		wantErr string
	}{
		{"pipeline variable", model.FileUser{Name: "app", PasswordType: "PipelineVariable"}, "pw", ""},
		{"missing secret", model.FileUser{Name: "other", PasswordType: "PipelineVariable"}, "", "OTHER.Password"},
		{"missing secret with dn", model.FileUser{Name: "other", PasswordType: "PipelineVariable", PasswordDN: model.ScopedScalar("cn=o")}, "", ""},
		{"missing secret expiring", model.FileUser{Name: "other", PasswordType: "PipelineVariable", ExpirePasswordFlag: true}, "", ""},
		{"global", model.FileUser{Name: "g", PasswordType: "Global", PasswordDN: model.ScopedScalar("cn=g")}, "", ""},
		{"global without dn", model.FileUser{Name: "g", PasswordType: "Global"}, "", "no passwordDN"},
		{"external without dn", model.FileUser{Name: "e", PasswordType: "External"}, "", "no passwordDN"},
		{"no authentication", model.FileUser{Name: "n", PasswordType: "No_Authentication"}, "<no_authentication>", ""},
		{"absent type", model.FileUser{Name: "n"}, "", "invalid password source type"},
		{"unknown type", model.FileUser{Name: "n", PasswordType: "Unknown"}, "", "invalid password source type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveUser(ctx, tt.user)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbconfig.ErrPasswordResolution)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDatabaseLink(t *testing.T) {
	r := newResolver(map[string]string{
		"APP.REMOTE.DBLinkPassword":    "owner-pw",
		"SHARED.REMOTE.DBLinkPassword": "override-pw",
	})
	ctx := context.Background()

	got, err := r.ResolveDatabaseLink(ctx, model.FileDatabaseLink{Name: "remote", Owner: "APP", SourcePasswordType: "PipelineVariable"})
	require.NoError(t, err)
	assert.Equal(t, "owner-pw", got)

	got, err = r.ResolveDatabaseLink(ctx, model.FileDatabaseLink{Name: "remote", Owner: "APP", SourcePasswordType: "PipelineVariable", SourcePasswordVariableName: "SHARED"})
	require.NoError(t, err)
	assert.Equal(t, "override-pw", got)

	got, err = r.ResolveDatabaseLink(ctx, model.FileDatabaseLink{Name: "remote", Owner: "APP", SourcePasswordType: "CurrentUser"})
	require.NoError(t, err)
	assert.Equal(t, "CURRENT_USER", got)

	_, err = r.ResolveDatabaseLink(ctx, model.FileDatabaseLink{Name: "x", Owner: "APP", SourcePasswordType: "PipelineVariable"})
	assert.ErrorIs(t, err, dbconfig.ErrPasswordResolution)
	assert.ErrorContains(t, err, "APP.X.DBLinkPassword")

	_, err = r.ResolveDatabaseLink(ctx, model.FileDatabaseLink{Name: "x", Owner: "APP"})
	assert.ErrorContains(t, err, "invalid source password type")
}

func TestResolver_LookupFailure(t *testing.T) {
	r := NewResolver(failingLookup{err: errors.New("vault sealed")}, logging.NewNullLogger())

	_, err := r.ResolveUser(context.Background(), model.FileUser{Name: "app", PasswordType: "PipelineVariable"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbconfig.ErrPasswordResolution)
	assert.Contains(t, err.Error(), "vault sealed")
}
