package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tkc/tasklist-checker/internal/checker"
	"github.com/tkc/tasklist-checker/internal/notify"
)

var (
	watchRepo     string
	watchPR       int
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a pull request until its checklist is completed",
	Long: `Watch a pull request and re-evaluate its task list at regular intervals.

The report is printed whenever it changes. When every task is checked a
desktop notification is sent (macOS) and the command exits. Check runs are
not published while watching.

Press Ctrl+C to stop watching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("repo") {
			cfg.Repository = watchRepo
		}
		if watchPR <= 0 {
			return fmt.Errorf("--pr is required")
		}
		if watchInterval <= 0 {
			return fmt.Errorf("--interval must be positive")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "👀 Watching %s#%d...\n", cfg.Repository, watchPR)
		fmt.Fprintf(w, "   Interval: %s\n", watchInterval)
		fmt.Fprintln(w, "   Press Ctrl+C to stop")
		fmt.Fprintln(w)

		return watch(cmd.Context(), w, svc, cfg.Repository, watchPR, watchInterval)
	},
}

// watch はチェックリストが完了するかコンテキストが終了するまでポーリングする
func watch(ctx context.Context, w io.Writer, svc *checker.Service, repo string, number int, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last string
	for {
		result, err := svc.Run(ctx, checker.Request{PullNumber: number, DryRun: true})
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			logger.Warningf("failed to evaluate checklist: %v", err)
		case result.Check.Output.Text != last:
			last = result.Check.Output.Text
			fmt.Fprintf(w, "[%s]\n", time.Now().Format("15:04:05"))
			printResult(w, result)
			fmt.Fprintln(w)
		}

		if err == nil && !result.Tasks.Empty() && result.Tasks.IsComplete() {
			fmt.Fprintln(w, "🎉 All tasks are completed!")
			if err := notify.SendComplete(repo, number, result.Tasks.Total()); err != nil {
				logger.Warningf("failed to send notification: %v", err)
			}
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			fmt.Fprintln(w, "\n👋 Stopping watch...")
			return nil
		}
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchRepo, "repo", "", "Repository as owner/name")
	watchCmd.Flags().IntVar(&watchPR, "pr", 0, "Pull request number")
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", time.Minute, "Polling interval")
}
