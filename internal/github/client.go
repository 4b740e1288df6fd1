package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// pageSize は1回のクエリで取得する件数
const pageSize = 100

// Client はGitHub GraphQL APIクライアント
type Client struct {
	gql   *githubv4.Client
	owner string
	name  string
}

// NewClient は新しいClientを作成する
func NewClient(token, owner, name string) *Client {
	return newClient(githubv4.NewClient(tokenHTTPClient(token)), owner, name)
}

// NewEnterpriseClient はGitHub Enterprise (またはテスト用サーバー) 向けのClientを作成する
func NewEnterpriseClient(url, token, owner, name string) *Client {
	return newClient(githubv4.NewEnterpriseClient(url, tokenHTTPClient(token)), owner, name)
}

func newClient(gql *githubv4.Client, owner, name string) *Client {
	return &Client{
		gql:   gql,
		owner: owner,
		name:  name,
	}
}

func tokenHTTPClient(token string) *http.Client {
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(context.Background(), src)
}

// repositoryVariables はリポジトリを指定するクエリ変数を返す
func (c *Client) repositoryVariables() map[string]interface{} {
	return map[string]interface{}{
		"owner": githubv4.String(c.owner),
		"name":  githubv4.String(c.name),
	}
}

// wrapError はAPIエラーに権限不足のヒントを付ける
func wrapError(op string, err error) error {
	if strings.Contains(err.Error(), "not accessible by") {
		return fmt.Errorf("%s: token lacks permissions, it needs 'checks: write' and 'pull-requests: read': %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// formatTime はソート用にUTCのISO-8601文字列へ変換する
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
