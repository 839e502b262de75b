// Package bridge compiles the abstract command tree into the native dispatch
// tree and keeps the installed result reconciled with it.
//
// The compiler walks abstract nodes and emits native nodes through the
// engine's factory, mapping each parser to a native argument type, deciding
// per node whether it is independently executable, and wiring gating
// predicates and suggestion providers that keep consulting the live abstract
// tree after compilation. The installer grafts compiled subtrees into the
// engine's registry without clobbering siblings, and prunes them again on
// unregistration.
package bridge

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
)

// SenderMapper translates between the engine's source type and the abstract
// sender type.
type SenderMapper interface {
	ToAbstract(src native.Source) command.Sender
	ToNative(sender command.Sender) native.Source
}

// Operation labels a change the installer made to the native tree.
type Operation string

const (
	OpInstall Operation = "install"
	OpMerge   Operation = "merge"
	OpRemove  Operation = "remove"
)

// Event describes one installer operation, for observers such as the
// registration journal.
type Event struct {
	Op    Operation
	Label string
	At    time.Time
}

// Config wires a Manager to its collaborators. Tree, Registry, Factory and
// Senders are required.
type Config struct {
	// Tree is the live abstract command tree. Compiled predicates
	// re-resolve nodes through it on every invocation.
	Tree *command.Tree

	// Registry owns the native tree that compiled subtrees are grafted
	// into.
	Registry native.Registry

	// Factory creates native nodes during compilation.
	Factory native.Factory

	// Senders maps between native sources and abstract senders.
	Senders SenderMapper

	// Engine answers delegated suggestion queries. Required only if any
	// mapping uses delegated suggestions, which includes the universal
	// fallback.
	Engine command.SuggestionEngine

	// Permission is the default permission checker, used when a compile
	// call does not supply one. Nil means allow.
	Permission command.PermissionChecker

	// OnChange observes installer operations. Optional.
	OnChange func(Event)

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Manager is the compilation and installation front door. Compile and
// Install/Remove are serialized; the predicates and providers it emits are
// safe for the engine's concurrent query path.
type Manager struct {
	cfg      Config
	mappings *Mappings
	logger   *zap.Logger

	// forceExecutable makes every aggregate fragment and compiled node
	// independently runnable. Configure before compiling.
	forceExecutable bool

	// installMu serializes all mutation of the native tree.
	installMu sync.Mutex
}

// New validates the configuration and builds a Manager with an empty mapping
// registry.
func New(cfg Config) (*Manager, error) {
	if cfg.Tree == nil {
		return nil, errors.New("bridge: Config.Tree is required")
	}
	if cfg.Registry == nil {
		return nil, errors.New("bridge: Config.Registry is required")
	}
	if cfg.Factory == nil {
		return nil, errors.New("bridge: Config.Factory is required")
	}
	if cfg.Senders == nil {
		return nil, errors.New("bridge: Config.Senders is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Manager{
		cfg:      cfg,
		mappings: NewMappings(),
		logger:   cfg.Logger,
	}, nil
}

// Mappings exposes the argument mapping registry for configuration.
func (m *Manager) Mappings() *Mappings { return m.mappings }

// SetForceExecutable toggles the force-executable policy. It is evaluated per
// node at compile time; already-installed subtrees are unaffected.
func (m *Manager) SetForceExecutable(v bool) { m.forceExecutable = v }

// ForceExecutable returns the current force-executable policy.
func (m *Manager) ForceExecutable() bool { return m.forceExecutable }

func (m *Manager) notify(op Operation, label string) {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(Event{Op: op, Label: label, At: time.Now()})
	}
}
