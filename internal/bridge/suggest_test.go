package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafter-tools/grafter/internal/command"
)

func TestTrimToLastToken(t *testing.T) {
	cases := []struct {
		name       string
		suggestion string
		input      string
		want       string
		ok         bool
	}{
		{"bare token no space", "give", "gi", "give", true},
		{"empty suggestion", "", "gi", "", false},
		{"bare token after space", "give", "cmd gi", "give", true},
		{"echoes consumed input", "cmd give", "cmd gi", "give", true},
		{"case insensitive alignment", "CMD give", "cmd gi", "give", true},
		{"aligned remainder keeps spaces", "cmd give all", "cmd gi", "give all", true},
		{"misaligned multi token dropped", "other thing", "cmd gi", "", false},
		{"trims to nothing", "cmd ", "cmd ", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TrimToLastToken(tc.suggestion, tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestProviderNilForNativeStrategy(t *testing.T) {
	m, _ := newTestManager(t, command.NewTree(), nil)
	require.Nil(t, m.provider(resolved{strategy: SuggestNative}))
	require.NotNil(t, m.provider(resolved{strategy: SuggestDelegated}))
}

func TestDelegatedTrimsAndKeepsOrder(t *testing.T) {
	engine := staticEngine{out: []string{"cmd give", "cmd grant", "other thing", "bare"}}
	m, _ := newTestManager(t, command.NewTree(), func(cfg *Config) {
		cfg.Engine = engine
	})

	provider := m.delegated()
	got := provider(context.Background(), "anyone", "/cmd g")
	require.Equal(t, []string{"give", "grant", "bare"}, got)
}

func TestDelegatedForwardsQueryWithoutSlash(t *testing.T) {
	var seen string
	engine := recordingEngine{seen: &seen}
	m, _ := newTestManager(t, command.NewTree(), func(cfg *Config) {
		cfg.Engine = engine
	})

	m.delegated()(context.Background(), "anyone", "/cmd g")
	require.Equal(t, "cmd g", seen)
}

func TestDelegatedNilEngine(t *testing.T) {
	m, _ := newTestManager(t, command.NewTree(), nil)
	require.Nil(t, m.delegated()(context.Background(), "anyone", "cmd g"))
}

type recordingEngine struct {
	seen *string
}

func (e recordingEngine) Suggest(ctx context.Context, sender command.Sender, input string) []string {
	*e.seen = input
	return nil
}
