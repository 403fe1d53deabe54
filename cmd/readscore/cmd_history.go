package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nvandessel/readscore/internal/render"
	"github.com/nvandessel/readscore/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List reports saved with analyze --save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			limit, _ := cmd.Flags().GetInt("limit")
			jsonOut, _ := cmd.Flags().GetBool("json")

			reports, err := openHistory(cmd, root)
			if err != nil {
				return err
			}
			defer reports.Close()

			list, err := reports.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"reports": list,
					"count":   len(list),
				})
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved reports. Run 'readscore analyze --save <file>' to record one.")
				return nil
			}
			render.RenderHistory(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of reports to list (0 for all)")
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")

			reports, err := openHistory(cmd, root)
			if err != nil {
				return err
			}
			defer reports.Close()

			report, err := reports.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no report with id %s", args[0])
				}
				return err
			}

			format := render.FormatText
			if jsonOut {
				format = render.FormatJSON
			}
			renderer, err := render.New(format)
			if err != nil {
				return err
			}
			return renderer.Render(cmd.OutOrStdout(), render.View{Report: *report})
		},
	}
}

// openHistory opens the project history without creating it.
func openHistory(cmd *cobra.Command, root string) (store.ReportStore, error) {
	path := store.HistoryPath(root)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return store.NewInMemoryReportStore(), nil
		}
		return nil, fmt.Errorf("failed to stat history: %w", err)
	}
	return store.NewSQLiteReportStore(cmd.Context(), path)
}
