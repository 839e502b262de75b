package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/grafter-tools/grafter/internal/command"
	"github.com/grafter-tools/grafter/internal/native"
	"github.com/grafter-tools/grafter/internal/parsers"
	"github.com/grafter-tools/grafter/internal/ui/style"
)

// Samples returns the completion sample values for the demo command set,
// keyed by argument name.
func Samples() map[string][]string {
	return map[string][]string{
		"player":  {"steve", "alex", "herobrine"},
		"item":    {"stone", "oak_log", "torch", "iron_ingot"},
		"amount":  {"1", "16", "32", "64"},
		"message": {"server restarting", "welcome"},
	}
}

// demoCommands builds the demo abstract command set.
//
//	give <item> <amount>
//	admin ban <player> | admin broadcast <message...>
//	fly [speed]
//	wait <delay>
func demoCommands() []*command.Node {
	give := command.Literal("give",
		command.Aggregate("item_stack", []command.Component{
			{Name: "item", Parser: parsers.Str{}},
			{Name: "amount", Parser: parsers.Integer{Min: 1, HasMin: true, Max: 64, HasMax: true}},
		}))
	give.OwningCommand = true

	ban := command.Literal("ban",
		command.Variable("player", parsers.Str{}))
	broadcast := command.Literal("broadcast",
		command.Variable("message", parsers.Str{Mode: parsers.ModeGreedy}))
	admin := command.Literal("admin", ban, broadcast)
	admin.Permission = "graft.admin"

	speed := command.Variable("speed", parsers.Float{Min: 0, HasMin: true, Max: 10, HasMax: true})
	speed.Optional = true
	fly := command.Literal("fly", speed)

	wait := command.Literal("wait",
		command.Variable("delay", parsers.Duration{}))

	return []*command.Node{give, admin, fly, wait}
}

// executor builds the run callback for one demo command: it reports the
// label and whatever tokens the engine handed over.
func executor(out io.Writer, label string) native.RunFunc {
	return func(src native.Source, args []string) error {
		line := label
		if len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		fmt.Fprintf(out, "%s %s (as %v)\n", style.Success("ran"), line, src)
		return nil
	}
}
