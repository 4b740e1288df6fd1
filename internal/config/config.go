package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tkc/tasklist-checker/internal/domain"
)

// Config はアプリケーション設定
type Config struct {
	GitHubToken        string `yaml:"github_token,omitempty"`
	Repository         string `yaml:"repository,omitempty"` // owner/name
	CheckName          string `yaml:"check_name,omitempty"`
	ScanComments       bool   `yaml:"scan_comments"`         // コメントのタスクも集計する
	UncompletedAsError bool   `yaml:"uncompleted_as_error"`  // 未完了タスクを失敗扱いにする
	GraphQLURL         string `yaml:"graphql_url,omitempty"` // GitHub Enterprise の場合のみ
}

// 環境変数名
// Actions の入力は INPUT_<名前> で渡される
const (
	EnvRepoToken          = "INPUT_REPO-TOKEN"
	EnvGitHubToken        = "GITHUB_TOKEN"
	EnvRepository         = "GITHUB_REPOSITORY"
	EnvCheckName          = "INPUT_CHECK-NAME"
	EnvScanComments       = "INPUT_SCAN-COMMENTS"
	EnvUncompletedAsError = "INPUT_UNCOMPLETED-AS-ERROR"
	EnvGraphQLURL         = "GITHUB_GRAPHQL_URL"
)

// defaultGraphQLURL は github.com の GraphQL エンドポイント
const defaultGraphQLURL = "https://api.github.com/graphql"

// configFileName は設定ファイル名
const configFileName = "config.yaml"

// configDirName は設定ディレクトリ名
const configDirName = ".tasklist-checker"

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{CheckName: domain.DefaultCheckName}
}

// DefaultPath はデフォルトの設定ファイルパスを返す
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load は設定ファイルを読み込む
// ファイルが無ければデフォルト設定を返す
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CheckName == "" {
		cfg.CheckName = domain.DefaultCheckName
	}

	return cfg, nil
}

// LoadWithPrecedence はデフォルト < 設定ファイル < 環境変数 の順で設定を読み込む
func LoadWithPrecedence(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	// トークンは INPUT_REPO-TOKEN を優先する
	for _, key := range []string{EnvGitHubToken, EnvRepoToken} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			c.GitHubToken = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvRepository); ok && strings.TrimSpace(v) != "" {
		c.Repository = strings.TrimSpace(v)
	}

	// Actions ランナーは github.com でも GITHUB_GRAPHQL_URL を設定する
	if v, ok := lookup(EnvGraphQLURL); ok && strings.TrimSpace(v) != "" && strings.TrimSpace(v) != defaultGraphQLURL {
		c.GraphQLURL = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvCheckName); ok && strings.TrimSpace(v) != "" {
		c.CheckName = strings.TrimSpace(v)
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{key: EnvScanComments, dst: &c.ScanComments},
		{key: EnvUncompletedAsError, dst: &c.UncompletedAsError},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	return nil
}

// ParseBool は Actions の boolean 入力と同じ規則で真偽値を解釈する
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "True", "TRUE":
		return true, nil
	case "false", "False", "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean, use true or false: %w", s, domain.ErrNotValid)
}

// Save は設定ファイルを保存する
func (c *Config) Save(path string) error {
	// ディレクトリ作成
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate は設定が有効かどうかを検証する
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("github_token is required. Run: tasklist-checker auth login: %w", domain.ErrNotValid)
	}
	if _, _, err := c.OwnerAndName(); err != nil {
		return err
	}
	return nil
}

// OwnerAndName はリポジトリを owner と name に分割する
func (c *Config) OwnerAndName() (string, string, error) {
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("repository must be owner/name, got %q: %w", c.Repository, domain.ErrNotValid)
	}
	return owner, name, nil
}
