package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// fakeRunner answers git commands from canned output keyed by
// "<dir>|<args joined by space>". Unknown commands fail.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: make(map[string]string)}
}

func (f *fakeRunner) on(dir string, args string, output string) *fakeRunner {
	f.outputs[dir+"|"+args] = output
	return f
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	key := dir + "|" + strings.Join(args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if name != "git" {
		return nil, errors.New("unexpected command " + name)
	}
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("exit status 128")
	}
	return []byte(out), nil
}

func (f *fakeRunner) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

// mapResolver treats the directories in repos as repositories.
type mapResolver struct {
	repos map[string]dbconfig.Repository
	err   error
	asked []string
}

func (m *mapResolver) Resolve(_ context.Context, dir string) (dbconfig.Repository, bool, error) {
	m.asked = append(m.asked, dir)
	if m.err != nil {
		return dbconfig.Repository{}, false, m.err
	}
	repo, ok := m.repos[dir]
	return repo, ok, nil
}
