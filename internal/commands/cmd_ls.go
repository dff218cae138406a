package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"traduz/internal/core/catalog"
	"traduz/internal/data/stores"
	"traduz/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List translation documents and their progress",
		UsageText: "traduz ls [--json]",
		Description: `Displays a table of translation documents in the configured directory
with key counts and how many keys are marked done.

Use --json for machine-readable output, one document per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "directory to scan for translation documents",
				Sources:     cli.EnvVars("TRADUZ_DIR"),
				Destination: &cmd.flags.Dir,
			},
		},
		Action: cmd.run,
	})

	return app
}

// documentRow is the JSON output format for traduz ls --json.
type documentRow struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Keys       int    `json:"keys"`
	Translated int    `json:"translated"`
	Snapshot   bool   `json:"snapshot"`
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	dir := cfg.Documents.Dir
	if cmd.flags.Dir != "" {
		dir = cmd.flags.Dir
	}

	var (
		sources   = stores.NewSourceStore(dir, cfg.Documents.Pattern, cfg.Documents.TranslatedSuffix)
		ledgers   = stores.NewLedgerStore()
		snapshots = stores.NewSnapshotStore(cfg.Documents.TranslatedSuffix, ledgers)
	)

	documents, err := sources.List()
	if err != nil {
		return fmt.Errorf("scan documents: %w", err)
	}

	if len(documents) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No documents matching %q in %s\n", cfg.Documents.Pattern, dir)
		}
		return nil
	}

	var rows []documentRow
	for _, doc := range documents {
		src, err := sources.Load(doc.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", doc.Path).Msg("skipping unreadable document")
			continue
		}

		done := ledgers.Load(doc.Path)
		_, statErr := os.Stat(snapshots.Path(doc.Path))

		rows = append(rows, documentRow{
			Name:       doc.Name,
			Path:       doc.Path,
			Keys:       len(src.Pairs),
			Translated: countKnown(src, done),
			Snapshot:   statErr == nil,
		})
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, row := range rows {
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode document: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKEYS\tDONE\tSNAPSHOT")

	for _, row := range rows {
		snapshot := "-"
		if row.Snapshot {
			snapshot = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", row.Name, row.Keys, row.Translated, snapshot)
	}

	return w.Flush()
}

// countKnown counts ledger keys that still exist in the source document,
// so stale ledger entries never inflate the done count.
func countKnown(src catalog.Source, done map[string]struct{}) int {
	n := 0
	for _, pair := range src.Pairs {
		if _, ok := done[pair.Key]; ok {
			n++
		}
	}
	return n
}
