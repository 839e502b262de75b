package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/grafter-tools/grafter/internal/app"
	"github.com/grafter-tools/grafter/internal/journal"
	"github.com/grafter-tools/grafter/internal/native"
	"github.com/grafter-tools/grafter/internal/playground"
	"github.com/grafter-tools/grafter/internal/ui/style"
	"github.com/grafter-tools/grafter/internal/usage"
)

func main() {
	args := os.Args[1:]

	noColor := false
	var rest []string
	for _, a := range args {
		if a == "--no-color" {
			noColor = true
			continue
		}
		rest = append(rest, a)
	}

	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !noColor
	style.Init(enableColor)

	if err := run(rest); err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, style.Error(ue.Error()))
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if err := a.InstallDemo(); err != nil {
		return err
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "play":
		return playground.Run(a.Registry, cfg.Role)
	case "run":
		if len(rest) == 0 {
			return usage.MissingArgument("line")
		}
		if err := a.Registry.Execute(cfg.Role, strings.Join(rest, " ")); err != nil {
			return usage.Dispatch(err)
		}
		return nil
	case "complete":
		if len(rest) == 0 {
			return usage.MissingArgument("line")
		}
		line := strings.Join(rest, " ")
		for _, s := range a.Registry.Complete(context.Background(), cfg.Role, line) {
			fmt.Println(s)
		}
		return nil
	case "tree":
		printTree(a.Registry.Root(), 0)
		return nil
	case "remove":
		if len(rest) == 0 {
			return usage.MissingArgument("label")
		}
		a.Tree.Remove(rest[0])
		fmt.Println(style.Success("removed " + rest[0]))
		return nil
	case "log":
		if a.Journal == nil {
			return usage.JournalUnavailable(fmt.Errorf("set GRAFT_JOURNAL to enable it"))
		}
		limit := 20
		if len(rest) > 0 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				limit = n
			}
		}
		entries, err := journal.List(a.Journal, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %-8s %s\n",
				style.Muted(e.CreatedAt.Format("2006-01-02 15:04:05")),
				e.Op, style.Literal(e.Label))
		}
		return nil
	case "help", "--help", "-h":
		printHelp()
		return nil
	default:
		return usage.UnknownVerb(verb)
	}
}

func printTree(n native.Node, depth int) {
	for _, child := range n.Children() {
		name := child.Name()
		if child.Literal() {
			name = style.Literal(name)
		} else {
			name = style.Argument("<" + name + ">")
		}
		marker := ""
		if child.Run() != nil {
			marker = " " + style.Muted("*")
		}
		fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), name, marker)
		printTree(child, depth+1)
	}
}

func printHelp() {
	fmt.Println(style.Header("graft") + " - command tree compiler demo")
	fmt.Println()
	fmt.Println("Usage: graft <verb> [args]")
	fmt.Println()
	fmt.Println("Verbs:")
	fmt.Println("  play              interactive completion playground")
	fmt.Println("  run <line>        execute a command line")
	fmt.Println("  complete <line>   print completions for a command line")
	fmt.Println("  tree              print the installed dispatch tree")
	fmt.Println("  remove <label>    unregister a command and prune its subtree")
	fmt.Println("  log [limit]       show recent installer operations")
	fmt.Println()
	fmt.Println("Environment: GRAFT_ROLE, GRAFT_JOURNAL, GRAFT_LOG_LEVEL,")
	fmt.Println("  GRAFT_FORCE_EXECUTABLE, GRAFT_NATIVE_NUMBER_SUGGESTIONS")
}
