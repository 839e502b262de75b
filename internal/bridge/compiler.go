package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
)

// Compile translates the abstract subtree rooted at root into a native
// subtree registered under label. The abstract tree is read lazily: the
// emitted predicates and providers keep consulting the live tree, so the
// result stays correct if the abstract tree mutates after compilation. A nil
// checker falls back to the Manager's default checker.
func (m *Manager) Compile(label string, root *command.Node, executor native.RunFunc, checker command.PermissionChecker) (native.Node, error) {
	if checker == nil {
		checker = m.cfg.Permission
	}
	label = command.StripNamespace(label)

	built := m.cfg.Factory.Literal(label)
	path := []string{label}
	built.SetRequirement(m.requirement(path, checker))
	m.updateRun(built, root, executor)

	for _, child := range root.Children {
		compiled, err := m.compileNode(child, childPath(path, child.Name), executor, checker)
		if err != nil {
			return nil, err
		}
		built.AddChild(compiled)
	}

	m.logger.Debug("compiled command subtree",
		zap.String("label", label),
		zap.Int("children", len(root.Children)))
	return built, nil
}

// CompileNamed resolves label in the live abstract tree and compiles it with
// the Manager's default permission checker.
func (m *Manager) CompileNamed(label string, executor native.RunFunc) (native.Node, error) {
	node := m.cfg.Tree.NamedNode(label)
	if node == nil {
		return nil, fmt.Errorf("no abstract command named %q", label)
	}
	return m.Compile(label, node, executor, nil)
}

func (m *Manager) compileNode(n *command.Node, path []string, executor native.RunFunc, checker command.PermissionChecker) (native.Node, error) {
	if n.Kind == command.KindAggregate {
		return m.compileAggregate(n, path, executor, checker)
	}

	var built native.Node
	switch n.Kind {
	case command.KindLiteral:
		built = m.cfg.Factory.Literal(n.Name)
	default:
		res := m.mappings.resolve(n.Parser, m.cfg.Factory)
		built = m.cfg.Factory.Argument(n.Name, res.argType)
		built.SetProvider(m.provider(res))
	}
	built.SetRequirement(m.requirement(path, checker))
	m.updateRun(built, n, executor)

	for _, child := range n.Children {
		compiled, err := m.compileNode(child, childPath(path, child.Name), executor, checker)
		if err != nil {
			return nil, err
		}
		built.AddChild(compiled)
	}
	return built, nil
}

// compileAggregate flattens an aggregate node into a chain of argument
// fragments. The chain is linked right to left: a fragment cannot be touched
// once it has been attached as a child, so the tail is finished first. Only
// the tail receives the node's real children and the general run policy;
// earlier fragments become independently runnable only under the
// force-executable policy.
func (m *Manager) compileAggregate(n *command.Node, path []string, executor native.RunFunc, checker command.PermissionChecker) (native.Node, error) {
	if len(n.Components) == 0 {
		return nil, fmt.Errorf("aggregate %q: %w", n.Name, ErrEmptyAggregate)
	}

	fragments := make([]native.Node, 0, len(n.Components))
	for _, comp := range n.Components {
		res := m.mappings.resolve(comp.Parser, m.cfg.Factory)
		fragment := m.cfg.Factory.Argument(comp.Name, res.argType)
		fragment.SetProvider(m.provider(res))
		fragment.SetRequirement(m.requirement(path, checker))
		fragments = append(fragments, fragment)
	}

	tail := fragments[len(fragments)-1]
	for _, child := range n.Children {
		compiled, err := m.compileNode(child, childPath(path, child.Name), executor, checker)
		if err != nil {
			return nil, err
		}
		tail.AddChild(compiled)
	}
	m.updateRun(tail, n, executor)

	for i := len(fragments) - 1; i > 0; i-- {
		if m.forceExecutable {
			fragments[i-1].SetRun(executor)
		}
		fragments[i-1].AddChild(fragments[i])
	}
	return fragments[0], nil
}

// updateRun installs the run callback wherever the grammar allows a valid
// command to end: leaves, optional nodes, nodes that terminate a registered
// command, and nodes with at least one optional child (traversal may stop
// before such a child). The force-executable policy overrides all of it.
func (m *Manager) updateRun(built native.Node, n *command.Node, executor native.RunFunc) {
	if m.forceExecutable || len(n.Children) == 0 || n.Optional || n.OwningCommand || anyOptional(n.Children) {
		built.SetRun(executor)
	}
}

func anyOptional(children []*command.Node) bool {
	for _, child := range children {
		if child.Optional {
			return true
		}
	}
	return false
}

// childPath extends a name-path without aliasing the parent's backing array.
func childPath(path []string, name string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = name
	return out
}
