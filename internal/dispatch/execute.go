package dispatch

import (
	"fmt"
	"strings"

	"github.com/grafter-tools/grafter/internal/native"
)

const maxSimilar = 3

// UnknownCommandError reports an input that matched no executable path.
type UnknownCommandError struct {
	Token       string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown command %q", e.Token)
	}
	return fmt.Sprintf("unknown command %q (did you mean: %s?)", e.Token, strings.Join(e.Suggestions, ", "))
}

// Execute walks the tree as far as the input allows and invokes the run
// callback of the node it stops at. Leftover tokens are handed to the
// callback as arguments. Stopping at a node without a run callback is an
// error: the grammar does not allow a command to end there.
func (r *Registry) Execute(src native.Source, line string) error {
	buffer := strings.TrimSpace(strings.TrimPrefix(line, "/"))
	if buffer == "" {
		return &UnknownCommandError{Token: ""}
	}
	tokens := strings.Split(buffer, " ")

	var current native.Node = r.root
	consumed := 0
	for consumed < len(tokens) {
		next, ate := match(current, tokens[consumed], src)
		if next == nil {
			break
		}
		current = next
		if ate {
			// The greedy argument owns the remaining tokens; they are
			// handed to the run callback untouched.
			break
		}
		consumed++
	}

	if current == r.root {
		return &UnknownCommandError{
			Token:       tokens[0],
			Suggestions: similar(tokens[0], r.root, src, maxSimilar),
		}
	}

	run := current.Run()
	if run == nil {
		return fmt.Errorf("incomplete command %q", strings.Join(tokens[:consumed], " "))
	}
	return run(src, tokens[consumed:])
}
