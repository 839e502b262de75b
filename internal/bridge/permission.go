package bridge

import (
	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
)

// requirement builds the gating predicate for the abstract node at path. The
// predicate re-resolves the node through the live tree on every call: a node
// that has been removed out-of-band denies instead of serving a stale grant.
// Checker failures of any kind deny; a permission check that cannot complete
// must never read as access granted.
func (m *Manager) requirement(path []string, checker command.PermissionChecker) native.Predicate {
	tree := m.cfg.Tree
	senders := m.cfg.Senders
	logger := m.logger

	return func(src native.Source) (ok bool) {
		defer func() {
			if r := recover(); r != nil {
				logger.Warn("permission check panicked, denying",
					zap.Strings("path", path),
					zap.Any("panic", r))
				ok = false
			}
		}()

		node := tree.NodeAt(path)
		if node == nil {
			return false
		}
		if checker == nil {
			return true
		}

		granted, err := checker(senders.ToAbstract(src), node.Permission)
		if err != nil {
			logger.Debug("permission check failed, denying",
				zap.Strings("path", path),
				zap.Error(err))
			return false
		}
		return granted
	}
}
