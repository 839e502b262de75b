package bridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/native"
)

// snap is a comparable picture of a native subtree: shape, node classes and
// which nodes are runnable.
type snap struct {
	Name     string
	Literal  bool
	Runnable bool
	Children []snap
}

func snapshot(n native.Node) snap {
	s := snap{Name: n.Name(), Literal: n.Literal(), Runnable: n.Run() != nil}
	for _, child := range n.Children() {
		s.Children = append(s.Children, snapshot(child))
	}
	return s
}

func snapshotRegistry(r *dispatch.Registry) []snap {
	var out []snap
	for _, child := range r.Root().Children() {
		out = append(out, snapshot(child))
	}
	return out
}

func TestInstallThenRemoveRestoresRegistry(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("fly", command.Literal("fast")))
	m, reg := newTestManager(t, tree, nil)

	before := snapshotRegistry(reg)

	built, err := m.CompileNamed("fly", noopExec)
	require.NoError(t, err)
	m.Install(built)
	require.NotNil(t, reg.Find("fly", "fast"))
	require.True(t, reg.Registered("fly"))

	require.NoError(t, m.Remove("fly"))

	if diff := cmp.Diff(before, snapshotRegistry(reg)); diff != "" {
		t.Fatalf("registry changed after install+remove (-before +after):\n%s", diff)
	}
	require.False(t, reg.Registered("fly"))
	require.Empty(t, reg.Labels())
}

func TestInstallMergesSharedLiteral(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("admin", command.Literal("ban")))
	m, reg := newTestManager(t, tree, nil)

	first, err := m.CompileNamed("admin", noopExec)
	require.NoError(t, err)
	m.Install(first)

	// A second source registers its own subcommand under the same
	// top-level literal.
	tree.Insert(command.Literal("admin", command.Literal("ban"), command.Literal("mute")))
	second, err := m.CompileNamed("admin", noopExec)
	require.NoError(t, err)
	m.Install(second)

	admin := reg.Find("admin")
	require.Len(t, admin.Children(), 2)
	require.NotNil(t, reg.Find("admin", "ban"))
	require.NotNil(t, reg.Find("admin", "mute"))
}

func TestMergeNeverReplacesExistingNodes(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("admin", command.Literal("ban")))
	m, reg := newTestManager(t, tree, nil)

	first, err := m.CompileNamed("admin", noopExec)
	require.NoError(t, err)
	m.Install(first)

	var ran bool
	originalBan := reg.Find("admin", "ban")
	originalBan.SetRun(func(src native.Source, args []string) error {
		ran = true
		return nil
	})

	second, err := m.CompileNamed("admin", noopExec)
	require.NoError(t, err)
	m.Install(second)

	require.Same(t, originalBan, reg.Find("admin", "ban"))
	require.NoError(t, reg.Find("admin", "ban").Run()(nil, nil))
	require.True(t, ran)
}

func TestRemoveUnknownLabelIsNoop(t *testing.T) {
	m, _ := newTestManager(t, command.NewTree(), nil)
	require.NoError(t, m.Remove("ghost"))
}

func TestRemoveStripsNamespace(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("fly"))
	m, reg := newTestManager(t, tree, nil)

	built, err := m.CompileNamed("fly", noopExec)
	require.NoError(t, err)
	m.Install(built)

	require.NoError(t, m.Remove("plugin:fly"))
	require.Nil(t, reg.Find("fly"))
}

// plainRegistry hides the bookkeeping interface of the registry it wraps.
type plainRegistry struct {
	reg *dispatch.Registry
}

func (p plainRegistry) Root() native.Node               { return p.reg.Root() }
func (p plainRegistry) Register(node native.Node)       { p.reg.Register(node) }
func (p plainRegistry) Find(path ...string) native.Node { return p.reg.Find(path...) }

func TestRemoveWithoutBookkeeperLeavesTreeIntact(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("fly"))

	inner := dispatch.NewRegistry()
	m, _ := newTestManager(t, tree, func(cfg *Config) {
		cfg.Registry = plainRegistry{reg: inner}
	})

	built, err := m.CompileNamed("fly", noopExec)
	require.NoError(t, err)
	m.Install(built)

	err = m.Remove("fly")
	require.ErrorIs(t, err, ErrBookkeepingUnavailable)
	require.NotNil(t, inner.Find("fly"))
	require.True(t, inner.Registered("fly"))
}

func TestInstallerEvents(t *testing.T) {
	tree := command.NewTree()
	tree.Insert(command.Literal("fly", command.Literal("fast")))

	var ops []Operation
	m, _ := newTestManager(t, tree, func(cfg *Config) {
		cfg.OnChange = func(e Event) { ops = append(ops, e.Op) }
	})

	built, err := m.CompileNamed("fly", noopExec)
	require.NoError(t, err)
	m.Install(built)

	again, err := m.CompileNamed("fly", noopExec)
	require.NoError(t, err)
	m.Install(again)

	require.NoError(t, m.Remove("fly"))
	require.Equal(t, []Operation{OpInstall, OpMerge, OpRemove}, ops)
}
