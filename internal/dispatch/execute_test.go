package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafter-tools/grafter/internal/native"
)

func TestExecuteRunsDeepestNode(t *testing.T) {
	r := testTree(t)
	var got []string
	amount := r.Find("give", "amount")
	amount.SetRun(func(src native.Source, args []string) error {
		got = args
		return nil
	})

	require.NoError(t, r.Execute(nil, "give 32"))
	require.Empty(t, got)
}

func TestExecuteLeftoverTokensBecomeArgs(t *testing.T) {
	r := testTree(t)
	var got []string
	give := r.Find("give")
	give.SetRun(func(src native.Source, args []string) error {
		got = args
		return nil
	})

	// 999 is outside the range, so the amount child rejects it and give
	// keeps the token as a plain argument.
	require.NoError(t, r.Execute(nil, "give 999"))
	require.Equal(t, []string{"999"}, got)
}

func TestExecuteGreedyRemainder(t *testing.T) {
	r := testTree(t)
	var got []string
	message := r.Find("admin", "broadcast", "message")
	message.SetRun(func(src native.Source, args []string) error {
		got = args
		return nil
	})

	require.NoError(t, r.Execute(nil, "admin broadcast hello there world"))
	require.Equal(t, []string{"hello", "there", "world"}, got)
}

func TestExecuteIncompleteCommand(t *testing.T) {
	r := testTree(t)
	err := r.Execute(nil, "admin")
	require.EqualError(t, err, `incomplete command "admin"`)
}

func TestExecuteUnknownCommandSuggestsSimilar(t *testing.T) {
	r := testTree(t)
	err := r.Execute(nil, "gove 3")

	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "gove", unknown.Token)
	require.Equal(t, []string{"give"}, unknown.Suggestions)
	require.Contains(t, unknown.Error(), "did you mean: give?")
}

func TestExecuteEmptyInput(t *testing.T) {
	r := testTree(t)
	var unknown *UnknownCommandError
	require.ErrorAs(t, r.Execute(nil, "   "), &unknown)
}

func TestExecutePredicateHidesBranch(t *testing.T) {
	r := testTree(t)
	admin := r.Find("admin")
	admin.SetRequirement(func(src native.Source) bool { return src == "op" })
	admin.SetRun(func(src native.Source, args []string) error { return nil })

	var unknown *UnknownCommandError
	require.ErrorAs(t, r.Execute("guest", "admin"), &unknown)
	require.NoError(t, r.Execute("op", "admin"))
}
