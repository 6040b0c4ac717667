package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samzong/gsc/internal/committype"
	"github.com/samzong/gsc/internal/config"
	"github.com/samzong/gsc/internal/git"
	"github.com/samzong/gsc/internal/llm"
	"github.com/samzong/gsc/internal/ui"
	"github.com/samzong/gsc/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	typesFile string
	verbose   bool
	dryRun    bool
	suggest   bool
	configErr error

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "gsc [files...]",
		Short: "gsc - Git Sync Commit",
		Long: `gsc standardizes the team commit workflow: it checks for pending changes, ` +
			`syncs the current branch with its remote, collects a conventional commit ` +
			`message through guided prompts, commits, and pushes.

Trailing file paths scope the commit to those files.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return handleErrors(runWorkflow(cmd.Context(), args))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

// SetContext installs the signal-aware context used for every git operation.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is $HOME/.gsc.yaml)")
	rootCmd.Flags().StringVar(&typesFile, "types", "", "Commit type catalog file (overrides the configured catalog)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show detailed git command output")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Collect the message but do not commit or push")
	rootCmd.Flags().BoolVar(&suggest, "suggest", false, "Prefill the subject prompt with an LLM suggestion")
}

func initConfig() {
	configErr = config.Init(cfgFile)
}

// handleErrors maps the recoverable error taxonomy to styled warnings while
// keeping the non-zero exit status. Backend failures pass through untouched.
func handleErrors(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, workflow.ErrNoPendingChanges):
		fmt.Fprintln(errWriter(), ui.Warn("No changes detected in the working tree or staging area."))
	case errors.Is(err, workflow.ErrMergeConflict):
		fmt.Fprintln(errWriter(), ui.Warn("Merge conflict while syncing with the remote."))
		fmt.Fprintln(errWriter(), "Resolve the conflicted files, then run gsc again.")
	case errors.Is(err, workflow.ErrPromptCanceled):
		fmt.Fprintln(errWriter(), ui.Warn("Commit canceled."))
	default:
		return err
	}
	return errExit
}

// errExit terminates the process with status 1 without re-printing a message.
var errExit = errors.New("")

// IsSilentExit reports whether err was already reported to the user.
func IsSilentExit(err error) bool {
	return errors.Is(err, errExit)
}

func runWorkflow(ctx context.Context, files []string) error {
	gitClient := git.NewClient(git.Options{Verbose: verbose, Logger: errWriter()})
	if err := gitClient.CheckGitRepository(); err != nil {
		return err
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	if typesFile != "" {
		catalog, err = committype.LoadFile(typesFile)
		if err != nil {
			return err
		}
	}

	flow := workflow.New(gitClient, catalog, workflow.Options{
		Remote:      cfg.Remote,
		DefaultType: cfg.DefaultType,
		DryRun:      dryRun,
		Suggest:     suggest,
		OutWriter:   outWriter(),
		ErrWriter:   errWriter(),
	})

	if suggest {
		flow.SetSuggester(llm.NewClient(llm.Options{
			Model:   cfg.Suggest.Model,
			APIKey:  cfg.Suggest.APIKey,
			APIBase: cfg.Suggest.APIBase,
			Timeout: 30 * time.Second,
		}))
	}

	return flow.Run(ctx, files)
}
