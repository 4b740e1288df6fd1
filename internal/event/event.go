// Package event はワークフローを起動したGitHub Actionsのイベントを読み込み、対象のPull Requestを特定する
package event

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tkc/tasklist-checker/internal/domain"
)

const (
	// EnvEventName はイベント名の環境変数
	EnvEventName = "GITHUB_EVENT_NAME"
	// EnvEventPath はイベントペイロードのパスの環境変数
	EnvEventPath = "GITHUB_EVENT_PATH"
)

const issueCommentEvent = "issue_comment"

// Event はデコード済みのワークフローイベント
type Event struct {
	Name    string
	payload gjson.Result
}

// Target はイベントが指すPull Request
type Target struct {
	PullNumber int
	// 評価しないイベントでは Skip が立ち、Reason に理由が入る
	Skip   bool
	Reason string
}

// Parse はイベントペイロードをデコードする
func Parse(name string, payload []byte) (*Event, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("event payload is not valid JSON: %w", domain.ErrNotValid)
	}

	return &Event{
		Name:    name,
		payload: gjson.ParseBytes(payload),
	}, nil
}

// Load はペイロードファイルからイベントを読み込む
func Load(name, path string) (*Event, error) {
	if path == "" {
		return nil, fmt.Errorf("event path is missing: %w", domain.ErrNotValid)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read event payload: %w", err)
	}

	return Parse(name, data)
}

// LoadFromEnv はActionsランナーが環境変数で渡すイベントを読み込む
func LoadFromEnv() (*Event, error) {
	return Load(os.Getenv(EnvEventName), os.Getenv(EnvEventPath))
}

// Target はイベントの対象Pull Requestを返す
func (e *Event) Target() Target {
	if pr := e.payload.Get("pull_request"); pr.IsObject() {
		return Target{PullNumber: int(pr.Get("number").Int())}
	}

	// PRへのコメントは issue_comment として届く
	if e.Name == issueCommentEvent {
		issue := e.payload.Get("issue")
		if !issue.Get("pull_request").Exists() {
			return Target{Skip: true, Reason: "triggered for issue rather than PR"}
		}
		return Target{PullNumber: int(issue.Get("number").Int())}
	}

	return Target{Skip: true, Reason: "PR is unknown"}
}

// Repository はペイロード内のリポジトリを "owner/name" で返す
func (e *Event) Repository() string {
	return strings.TrimSpace(e.payload.Get("repository.full_name").String())
}
