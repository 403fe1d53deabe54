package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mama165/sdk-go/logs"
	"github.com/nvandessel/readscore/internal/analysis"
	"github.com/nvandessel/readscore/internal/config"
	"github.com/nvandessel/readscore/internal/document"
	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/render"
	"github.com/nvandessel/readscore/internal/scoring"
	"github.com/nvandessel/readscore/internal/store"
	"github.com/spf13/cobra"
)

const selectionPrompt = "Enter the score you want to calculate (ARI, FK, SMOG, CL, all): "

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Count a text and compute its readability scores",
		Long: `Read a plain-text document, print its word, sentence, character, syllable
and polysyllable counts, then the selected readability scores with the
estimated reader age and the average age over all four scores.

With no file, or "-", the text is read from stdin.

Examples:
  readscore analyze essay.txt
  readscore analyze essay.txt --metric SMOG
  readscore analyze essay.txt --prompt          # ask which score to show
  cat essay.txt | readscore analyze --format table --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			prompt, _ := cmd.Flags().GetBool("prompt")
			quiet, _ := cmd.Flags().GetBool("quiet")
			save, _ := cmd.Flags().GetBool("save")
			root, _ := cmd.Flags().GetString("root")

			source := models.StdinSource
			if len(args) == 1 {
				source = args[0]
			}
			if prompt && source == models.StdinSource {
				return errors.New("--prompt needs a file argument: stdin is already used for the document")
			}
			if prompt && settings.Format != string(render.FormatText) {
				return fmt.Errorf("--prompt only works with text output, not %s", settings.Format)
			}

			log := logs.GetLoggerFromString(settings.LogLevel)

			doc, err := readDocument(cmd, source)
			if err != nil {
				return err
			}

			var reports store.ReportStore
			save = save || settings.History
			if save {
				if _, err := store.EnsureDataDir(root); err != nil {
					return err
				}
				sqlite, err := store.NewSQLiteReportStore(cmd.Context(), store.HistoryPath(root))
				if err != nil {
					return err
				}
				defer sqlite.Close()
				reports = sqlite
			}

			analyzer := analysis.NewAnalyzer(reports, log, &analysis.AnalyzerConfig{
				NegativeAge:    scoring.NegativeAgePolicy(settings.NegativeAgePolicy),
				DetectLanguage: settings.DetectLanguage,
				Save:           save,
			})
			res, err := analyzer.Analyze(cmd.Context(), doc)
			if err != nil {
				return err
			}

			view := render.View{
				Report:   res.Report,
				Lines:    doc.Lines,
				ShowText: !quiet,
				Color:    settings.Color,
			}
			out := cmd.OutOrStdout()

			if prompt {
				return renderWithPrompt(cmd, view)
			}

			view.Selection, err = scoring.ParseSelection(settings.Metric)
			if err != nil {
				return err
			}
			renderer, err := render.New(render.Format(settings.Format))
			if err != nil {
				return err
			}
			return renderer.Render(out, view)
		},
	}

	cmd.Flags().String("metric", "", "Score to show: ARI, FK, SMOG, CL or all (default from config: all)")
	cmd.Flags().String("format", "", "Output format: text, table or json (default from config: text)")
	cmd.Flags().String("negative-age", "", "Age for scores below zero: clamp or fail (default from config: clamp)")
	cmd.Flags().Bool("prompt", false, "Ask which score to show after printing the counts")
	cmd.Flags().Bool("save", false, "Save the report to the project history")
	cmd.Flags().Bool("quiet", false, "Do not echo the text before the counts")
	cmd.Flags().Bool("color", false, "Highlight ages in text output")

	return cmd
}

// renderWithPrompt prints the counts, asks for a metric on the command's
// input, then prints the chosen scores.
func renderWithPrompt(cmd *cobra.Command, view render.View) error {
	out := cmd.OutOrStdout()
	text := render.TextRenderer{}

	if err := text.RenderCounts(out, view); err != nil {
		return err
	}
	fmt.Fprint(out, selectionPrompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("failed to read metric selection: %w", err)
	}
	fmt.Fprintln(out)

	view.Selection, err = scoring.ParseSelection(strings.TrimSpace(line))
	if err != nil {
		return err
	}
	return text.RenderScores(out, view)
}

func readDocument(cmd *cobra.Command, source string) (models.Document, error) {
	if source == models.StdinSource {
		return document.Read(source, cmd.InOrStdin())
	}
	return document.Load(source)
}

// loadSettings layers command flags over the project config and environment.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	root, _ := cmd.Flags().GetString("root")
	cfg, err := config.Load(store.LocalDataPath(root))
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Flags().Lookup("metric"); f != nil && f.Changed {
		selection, err := scoring.ParseSelection(f.Value.String())
		if err != nil {
			return config.Config{}, err
		}
		cfg.Metric = selectionToken(selection)
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("negative-age"); f != nil && f.Changed {
		cfg.NegativeAgePolicy = f.Value.String()
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cfg.Color, _ = cmd.Flags().GetBool("color")
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		cfg.Format = string(render.FormatJSON)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// selectionToken turns a parsed selection back into its canonical token.
func selectionToken(selection []models.Metric) string {
	if len(selection) == 1 {
		return string(selection[0])
	}
	return scoring.SelectAll
}
