package bridge

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/native"
)

// identitySenders passes senders through unchanged. Tests use plain strings
// as both the native source and the abstract sender.
type identitySenders struct{}

func (identitySenders) ToAbstract(src native.Source) command.Sender  { return src }
func (identitySenders) ToNative(sender command.Sender) native.Source { return sender }

type staticEngine struct {
	out []string
}

func (e staticEngine) Suggest(ctx context.Context, sender command.Sender, input string) []string {
	return e.out
}

type fakeParser struct {
	kind string
	vt   reflect.Type
}

func (p fakeParser) Kind() string            { return p.kind }
func (p fakeParser) ValueType() reflect.Type { return p.vt }

func newTestManager(t *testing.T, tree *command.Tree, mutate func(*Config)) (*Manager, *dispatch.Registry) {
	t.Helper()
	reg := dispatch.NewRegistry()
	cfg := Config{
		Tree:     tree,
		Registry: reg,
		Factory:  dispatch.Factory{},
		Senders:  identitySenders{},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := New(cfg)
	require.NoError(t, err)
	return m, reg
}

func noopExec(src native.Source, args []string) error { return nil }
