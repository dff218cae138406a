package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"traduz/internal/core/locale"
	"traduz/internal/data/stores"
	"traduz/internal/tui"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Flags returns the edit-specific flags for registration on the root command
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "directory to scan for translation documents",
			Sources:     cli.EnvVars("TRADUZ_DIR"),
			Destination: &cmd.flags.Dir,
		},
	}
}

// Register adds the edit command to the application. The same action also
// runs as the root default, with the flags registered there.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the interactive translation editor",
		UsageText: "traduz edit [--dir <path>]",
		Action:    cmd.run,
	})

	return app
}

// Run executes the interactive editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *EditCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; the editor needs an interactive session")
	}

	cfg := cmd.flags.Config
	dir := cfg.Documents.Dir
	if cmd.flags.Dir != "" {
		dir = cmd.flags.Dir
	}

	ledgers := stores.NewLedgerStore()
	deps := tui.Deps{
		Config:     cfg,
		Translator: locale.New(cfg.Locale),
		Sources:    stores.NewSourceStore(dir, cfg.Documents.Pattern, cfg.Documents.TranslatedSuffix),
		Snapshots:  stores.NewSnapshotStore(cfg.Documents.TranslatedSuffix, ledgers),
		Ledgers:    ledgers,
	}

	documents, err := deps.Sources.List()
	if err != nil {
		return fmt.Errorf("scan documents: %w", err)
	}

	log.Info().
		Str("dir", dir).
		Int("documents", len(documents)).
		Msg("starting editor")

	m := tui.New(deps, tui.Opts{Documents: documents})
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}
