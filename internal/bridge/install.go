package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
)

// Install grafts a compiled subtree into the native registry. A fresh label
// attaches directly; an existing one is merged child by child, so commands
// registered under a shared top-level literal by independent sources keep
// each other's behavior intact. Merging only ever attaches net-new children;
// it never replaces an existing node's predicate or run callback.
func (m *Manager) Install(root native.Node) {
	m.installMu.Lock()
	defer m.installMu.Unlock()

	existing := m.cfg.Registry.Find(root.Name())
	if existing == nil {
		m.cfg.Registry.Register(root)
		m.logger.Info("installed command subtree", zap.String("label", root.Name()))
		m.notify(OpInstall, root.Name())
		return
	}

	mergeChildren(existing, root)
	m.logger.Info("merged command subtree", zap.String("label", root.Name()))
	m.notify(OpMerge, root.Name())
}

func mergeChildren(existing, incoming native.Node) {
	for _, child := range incoming.Children() {
		if current := existing.Child(child.Name()); current != nil {
			mergeChildren(current, child)
		} else {
			existing.AddChild(child)
		}
	}
}

// Remove excises the subtree installed under label and purges the registry's
// registration record for it. Removing a label that is not installed is a
// no-op. Detach and purge form one logical operation: if the registry does
// not expose its bookkeeping, nothing is touched and the caller gets
// ErrBookkeepingUnavailable, because a leaked record means phantom command
// visibility and unbounded growth over the process lifetime.
func (m *Manager) Remove(label string) error {
	label = command.StripNamespace(label)

	m.installMu.Lock()
	defer m.installMu.Unlock()

	if m.cfg.Registry.Find(label) == nil {
		return nil
	}

	keeper, ok := m.cfg.Registry.(native.Bookkeeper)
	if !ok {
		return fmt.Errorf("remove %q: %w", label, ErrBookkeepingUnavailable)
	}

	if err := keeper.DetachChild(label); err != nil {
		return fmt.Errorf("remove %q: detach: %w", label, err)
	}
	if err := keeper.Forget(label); err != nil {
		return fmt.Errorf("remove %q: purge bookkeeping: %w", label, err)
	}

	m.logger.Info("removed command subtree", zap.String("label", label))
	m.notify(OpRemove, label)
	return nil
}
