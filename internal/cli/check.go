package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkc/tasklist-checker/internal/checker"
	"github.com/tkc/tasklist-checker/internal/config"
	"github.com/tkc/tasklist-checker/internal/event"
	"github.com/tkc/tasklist-checker/internal/github"
	"github.com/tkc/tasklist-checker/internal/markdown"
)

var (
	checkRepo               string
	checkPR                 int
	checkEventName          string
	checkEventPath          string
	checkName               string
	checkScanComments       bool
	checkUncompletedAsError bool
	checkDryRun             bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a pull request checklist and publish a check run",
	Long: `Evaluate the task list of a pull request and publish the result as a
check run on its head commit.

Inside GitHub Actions the pull request is taken from the triggering event
(GITHUB_EVENT_NAME / GITHUB_EVENT_PATH). Events for plain issues are skipped.

Examples:
  tasklist-checker check                          # Use the Actions event
  tasklist-checker check --repo tkc/app --pr 12   # Check a specific PR
  tasklist-checker check --pr 12 --dry-run        # Preview without publishing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyCheckFlags(cmd, cfg)

		number := checkPR
		if number == 0 {
			target, repo, err := eventTarget()
			if err != nil {
				return fmt.Errorf("no --pr given and no event available: %w", err)
			}
			if target.Skip {
				logger.Infof("skipped: %s", target.Reason)
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %s\n", target.Reason)
				return nil
			}
			number = target.PullNumber
			if cfg.Repository == "" {
				cfg.Repository = repo
			}
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		result, err := svc.Run(cmd.Context(), checker.Request{
			PullNumber: number,
			DryRun:     checkDryRun,
		})
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

// applyCheckFlags は明示されたフラグで設定を上書きする
func applyCheckFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("repo") {
		c.Repository = checkRepo
	}
	if flags.Changed("name") {
		c.CheckName = checkName
	}
	if flags.Changed("scan-comments") {
		c.ScanComments = checkScanComments
	}
	if flags.Changed("uncompleted-as-error") {
		c.UncompletedAsError = checkUncompletedAsError
	}
}

// eventTarget はActionsのイベントから対象PRとリポジトリを取得する
func eventTarget() (event.Target, string, error) {
	name := checkEventName
	if name == "" {
		name = os.Getenv(event.EnvEventName)
	}
	path := checkEventPath
	if path == "" {
		path = os.Getenv(event.EnvEventPath)
	}

	ev, err := event.Load(name, path)
	if err != nil {
		return event.Target{}, "", err
	}

	return ev.Target(), ev.Repository(), nil
}

// newService は設定からチェックサービスを作成する
func newService(c *config.Config) (*checker.Service, error) {
	owner, name, err := c.OwnerAndName()
	if err != nil {
		return nil, err
	}

	client := github.NewClient(c.GitHubToken, owner, name)
	if c.GraphQLURL != "" {
		client = github.NewEnterpriseClient(c.GraphQLURL, c.GitHubToken, owner, name)
	}

	return checker.NewService(checker.ServiceConfig{
		GitHub:             client,
		Tokenizer:          markdown.NewTokenizer(),
		Logger:             logger,
		CheckName:          c.CheckName,
		ScanComments:       c.ScanComments,
		UncompletedAsError: c.UncompletedAsError,
	})
}

func printResult(w io.Writer, result *checker.Result) {
	fmt.Fprintln(w, strings.TrimRight(result.Check.Output.Text, "\n"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%d/%d completed)\n", result.Check.Output.Summary, len(result.Tasks.Completed), result.Tasks.Total())
	if result.CheckURL != "" {
		fmt.Fprintf(w, "Check run: %s\n", result.CheckURL)
	}
}

func init() {
	checkCmd.Flags().StringVar(&checkRepo, "repo", "", "Repository as owner/name (default $GITHUB_REPOSITORY or the event repository)")
	checkCmd.Flags().IntVar(&checkPR, "pr", 0, "Pull request number (default from the Actions event)")
	checkCmd.Flags().StringVar(&checkEventName, "event-name", "", "Event name (default $GITHUB_EVENT_NAME)")
	checkCmd.Flags().StringVar(&checkEventPath, "event-path", "", "Event payload file (default $GITHUB_EVENT_PATH)")
	checkCmd.Flags().StringVar(&checkName, "name", "", "Check run name")
	checkCmd.Flags().BoolVar(&checkScanComments, "scan-comments", false, "Include tasks from comments and reviews")
	checkCmd.Flags().BoolVar(&checkUncompletedAsError, "uncompleted-as-error", false, "Fail the check while tasks remain")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "Evaluate without publishing the check run")
}
