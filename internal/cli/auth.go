package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkc/tasklist-checker/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to GitHub",
	Long: `Login to GitHub using a personal access token.

For Classic tokens (https://github.com/settings/tokens):
  Required scopes:
    - repo

For Fine-grained tokens (https://github.com/settings/tokens?type=beta):
  Repository permissions:
    - Checks: Read and write
    - Pull requests: Read-only

Inside GitHub Actions no login is needed, the workflow token is read from
INPUT_REPO-TOKEN or GITHUB_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "GitHub Personal Access Token を入力してください")
		fmt.Fprintln(w, "(必要な権限: checks: write, pull-requests: read)")
		fmt.Fprintln(w)
		fmt.Fprint(w, "Token: ")

		reader := bufio.NewReader(cmd.InOrStdin())
		token, err := reader.ReadString('\n')
		if err != nil && token == "" {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(token)

		if token == "" {
			return fmt.Errorf("token cannot be empty")
		}

		// 環境変数の値を保存しないようにファイルの設定だけを更新する
		fileCfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		fileCfg.GitHubToken = token
		if err := fileCfg.Save(cfgPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintln(w, "✓ Token saved successfully")
		if fileCfg.Repository == "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Next step: tasklist-checker check --repo <owner/name> --pr <number>")
		}
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg.GitHubToken == "" {
			fmt.Fprintln(w, "✗ Not logged in")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Run: tasklist-checker auth login")
			return nil
		}

		fmt.Fprintf(w, "✓ Logged in (token: %s)\n", maskToken(cfg.GitHubToken))
		if cfg.Repository != "" {
			fmt.Fprintf(w, "  Repository: %s\n", cfg.Repository)
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from GitHub",
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		fileCfg.GitHubToken = ""
		if err := fileCfg.Save(cfgPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Logged out successfully")
		return nil
	},
}

// maskToken はトークンの先頭と末尾4文字だけを表示する
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
}
