package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nvandessel/readscore/internal/config"
	"github.com/nvandessel/readscore/internal/store"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "readscore",
		Short: "Readability scores for plain-text documents",
		Long: `readscore counts words, sentences, characters and syllables in a text and
computes four readability indices (ARI, Flesch–Kincaid, SMOG, Coleman–Liau),
each mapped to an estimated reader age.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for agent consumption)")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newAnalyzeCmd(),
		newHistoryCmd(),
		newMCPServerCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "readscore version %s\n", version)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a .readscore directory with a default config in the project root",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")

			dataDir, err := store.EnsureDataDir(root)
			if err != nil {
				return err
			}
			created, err := config.WriteTemplate(dataDir)
			if err != nil {
				return err
			}
			if err := store.EnsureGitignore(dataDir); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"status":         "initialized",
					"path":           dataDir,
					"config_created": created,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s/ in %s\n", store.DataDirName, root)
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "  Kept existing %s\n", filepath.Join(dataDir, config.FileName))
			}
			return nil
		},
	}
}
