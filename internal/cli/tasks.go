package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkc/tasklist-checker/internal/domain"
	"github.com/tkc/tasklist-checker/internal/markdown"
	"github.com/tkc/tasklist-checker/internal/tasklist"
)

// ErrUncompleted は未完了タスクが残っていることを示す
var ErrUncompleted = errors.New("uncompleted tasks remain")

var (
	tasksFailOnUncompleted bool
)

var tasksCmd = &cobra.Command{
	Use:   "tasks [file]",
	Short: "Evaluate the task list of a local markdown file",
	Long: `Evaluate the task list of a markdown file, or of stdin when no file
is given, and print the same report the check run would show.

Examples:
  tasklist-checker tasks PULL_REQUEST.md
  gh pr view 12 --json body -q .body | tasklist-checker tasks --fail-on-uncompleted`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		extractor, err := tasklist.NewExtractor(markdown.NewTokenizer())
		if err != nil {
			return err
		}

		tasks, err := extractor.Tasks(text)
		if err != nil {
			return fmt.Errorf("failed to extract tasks: %w", err)
		}
		logger.Debugf("found %d tasks", tasks.Total())

		w := cmd.OutOrStdout()
		report := tasklist.Render(tasks)
		if tasks.Empty() {
			report = domain.NoTaskListText
		}
		fmt.Fprintln(w, strings.TrimRight(report, "\n"))
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s (%d/%d completed)\n", domain.Summary(tasks), len(tasks.Completed), tasks.Total())

		if tasksFailOnUncompleted && !tasks.IsComplete() {
			return fmt.Errorf("%d of %d: %w", len(tasks.Uncompleted), tasks.Total(), ErrUncompleted)
		}
		return nil
	},
}

// readInput は引数のファイル、無ければ標準入力を読み込む
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	tasksCmd.Flags().BoolVar(&tasksFailOnUncompleted, "fail-on-uncompleted", false, "Exit with an error while tasks remain")
}
