package services

import (
	"context"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// mockResolver treats the directories in repos as repositories.
type mockResolver struct {
	repos map[string]dbconfig.Repository
	err   error
}

func (m *mockResolver) Resolve(_ context.Context, dir string) (dbconfig.Repository, bool, error) {
	if m.err != nil {
		return dbconfig.Repository{}, false, m.err
	}
	repo, ok := m.repos[dir]
	return repo, ok, nil
}
