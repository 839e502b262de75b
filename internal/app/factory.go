// Package app wires the graft CLI together: configuration, logging, the
// abstract demo command set, the compiler and the dispatch engine.
package app

import (
	"database/sql"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grafter-tools/grafter/internal/bridge"
	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/dispatch"
	"github.com/grafter-tools/grafter/internal/journal"
	"github.com/grafter-tools/grafter/internal/native"
	"github.com/grafter-tools/grafter/internal/parsers"
)

// App holds the wired application.
type App struct {
	Config   Config
	Logger   *zap.Logger
	Tree     *command.Tree
	Registry *dispatch.Registry
	Manager  *bridge.Manager

	// Journal is nil when journaling is disabled.
	Journal *sql.DB

	out io.Writer
}

// roleSenders passes the role string through as both source and sender.
type roleSenders struct{}

func (roleSenders) ToAbstract(src native.Source) command.Sender  { return src }
func (roleSenders) ToNative(sender command.Sender) native.Source { return sender }

// checkPermission grants everything to operators and only unrestricted
// commands to anyone else.
func checkPermission(sender command.Sender, permission string) (bool, error) {
	if permission == "" {
		return true, nil
	}
	role, ok := sender.(string)
	if !ok {
		return false, fmt.Errorf("unexpected sender type %T", sender)
	}
	return role == "operator", nil
}

// New builds the application from configuration. Output of executed demo
// commands goes to out.
func New(cfg Config, out io.Writer) (*App, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	tree := command.NewTree()
	registry := dispatch.NewRegistry()
	engine := NewEngine(tree, Samples())

	var db *sql.DB
	var onChange func(bridge.Event)
	if cfg.JournalPath != "" {
		db, err = journal.Open(cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		onChange = journal.Recorder(db, logger)
	}

	manager, err := bridge.New(bridge.Config{
		Tree:       tree,
		Registry:   registry,
		Factory:    dispatch.Factory{},
		Senders:    roleSenders{},
		Engine:     engine,
		Permission: checkPermission,
		OnChange:   onChange,
		Logger:     logger,
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	parsers.RegisterBuiltins(manager.Mappings())
	parsers.RegisterDefaultTypes(manager.Mappings())
	manager.SetForceExecutable(cfg.ForceExecutable)
	if cfg.NativeNumberSuggestions {
		if err := parsers.SetNativeNumberSuggestions(manager.Mappings(), true); err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Tree:     tree,
		Registry: registry,
		Manager:  manager,
		Journal:  db,
		out:      out,
	}

	// Removing an abstract command prunes its native subtree.
	tree.OnRemove(func(label string) {
		if err := manager.Remove(label); err != nil {
			logger.Warn("prune after removal failed",
				zap.String("label", label),
				zap.Error(err))
		}
	})
	return a, nil
}

// InstallDemo registers and installs the demo command set.
func (a *App) InstallDemo() error {
	for _, root := range demoCommands() {
		a.Tree.Insert(root)
		built, err := a.Manager.CompileNamed(root.Name, executor(a.out, root.Name))
		if err != nil {
			return fmt.Errorf("compile %q: %w", root.Name, err)
		}
		a.Manager.Install(built)
	}
	return nil
}

// Close releases the journal handle and flushes the logger.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	if a.Journal != nil {
		return a.Journal.Close()
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
