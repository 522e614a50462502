package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/imposter/internal/factory"
	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/configurator"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

var errInputClosed = errors.New("input closed before the round finished")

type playOptions struct {
	players      int
	imposters    int
	word         string
	category     string
	seed         uint64
	wordBankFile string
	noClear      bool
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round in this terminal",
		Long: `Deal a round locally and pass the keyboard around.

Each player presses Enter to see their card and Enter again to hide it before
handing over. Once everyone has looked, start the discussion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{
				WordBankPath: opts.wordBankFile,
				Seed:         opts.seed,
				StrictReveal: true,
			})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			t := &terminal{
				in:    bufio.NewReader(cmd.InOrStdin()),
				out:   cmd.OutOrStdout(),
				clear: !opts.noClear,
			}
			unsubscribe := app.Engine.Subscribe(t.render)
			defer unsubscribe()

			snap, err := app.Table.Start(cmd.Context(), model.SessionConfig{
				PlayerCount:   opts.players,
				ImposterCount: opts.imposters,
				Source: model.SecretSource{
					CustomWord: opts.word,
					Category:   model.CategoryID(opts.category),
				},
			})
			if err != nil {
				return withHint(err)
			}

			for snap.Phase == model.PhasePlaying {
				if err := t.waitForEnter(); err != nil {
					return err
				}
				if snap, err = app.Table.Reveal(snap.RoundID); err != nil {
					return err
				}
				if err := t.waitForEnter(); err != nil {
					return err
				}
				if snap, err = app.Table.Advance(snap.RoundID); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.players, "players", "p", 5, "Number of players (env: IMPOSTER_PLAYERS)")
	cmd.Flags().IntVarP(&opts.imposters, "imposters", "i", 1, "Number of imposters (env: IMPOSTER_IMPOSTERS)")
	cmd.Flags().StringVar(&opts.word, "word", "", "Custom secret word, overrides --category")
	cmd.Flags().StringVar(&opts.category, "category", string(model.CategoryAll), "Category to draw the secret word from (env: IMPOSTER_CATEGORY)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible round, 0 for a random seed (env: IMPOSTER_SEED)")
	cmd.Flags().StringVar(&opts.wordBankFile, "wordbank-file", "", "YAML, JSON or TOML word bank to use instead of the built-in one (env: IMPOSTER_WORDBANK_FILE)")
	cmd.Flags().BoolVar(&opts.noClear, "no-clear", false, "Do not clear the screen between players")

	return cmd
}

// withHint names the flag value that would fix a rejected count
func withHint(err error) error {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	flag := "--players"
	if verr.Field == configurator.FieldImposterCount {
		flag = "--imposters"
	}
	return fmt.Errorf("%w\nhint: use %s %d", err, flag, verr.Suggested)
}

// terminal renders engine transitions and reads key presses
type terminal struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

func (t *terminal) render(tr model.Transition) {
	s := tr.Snapshot

	switch tr.Type {
	case model.TransitionStarted:
		t.clearScreen()
		t.printf("Dealt %d cards with %s.\n\n", s.PlayerCount, imposterPhrase(s.ImposterCount))
		t.prompt(s)
	case model.TransitionRevealed:
		if s.Role.IsImposter() {
			t.printf("You are the %s. Blend in!\n", model.ImposterMarker)
		} else {
			t.printf("The secret word is: %s\n", s.Value)
		}
		t.printf("Press Enter to hide your card.\n")
	case model.TransitionAdvanced:
		t.clearScreen()
		t.printf("Pass the device to player %d.\n\n", s.PlayerNumber)
		t.prompt(s)
	case model.TransitionFinished:
		t.clearScreen()
		t.printf("Everyone has seen their card. There %s among %d players.\n", hidingPhrase(s.ImposterCount), s.PlayerCount)
		t.printf("Start the discussion!\n")
	}
}

func (t *terminal) prompt(s model.Snapshot) {
	t.printf("Player %d of %d, press Enter to reveal.\n", s.PlayerNumber, s.PlayerCount)
}

func (t *terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *terminal) clearScreen() {
	if t.clear {
		_, _ = io.WriteString(t.out, clearScreen)
	}
}

// waitForEnter blocks until a line is read. A final line without a newline
// still counts.
func (t *terminal) waitForEnter() error {
	line, err := t.in.ReadString('\n')
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(line) != "" {
			return nil
		}
		return errInputClosed
	}
	return fmt.Errorf("read input: %w", err)
}

func imposterPhrase(n int) string {
	if n == 1 {
		return "1 imposter"
	}
	return fmt.Sprintf("%d imposters", n)
}

func hidingPhrase(n int) string {
	if n == 1 {
		return "is 1 imposter"
	}
	return fmt.Sprintf("are %d imposters", n)
}
