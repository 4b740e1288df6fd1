package event_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkc/tasklist-checker/internal/domain"
	"github.com/tkc/tasklist-checker/internal/event"
)

func TestEventTarget(t *testing.T) {
	tests := map[string]struct {
		name          string
		payload       string
		expTarget     event.Target
		expRepository string
	}{
		"Pull request events should target their PR.": {
			name:          "pull_request",
			payload:       `{"pull_request": {"number": 42, "body": "- [ ] a"}, "repository": {"full_name": "tkc/app"}}`,
			expTarget:     event.Target{PullNumber: 42},
			expRepository: "tkc/app",
		},
		"Pull request target events should target their PR.": {
			name:      "pull_request_target",
			payload:   `{"pull_request": {"number": 3, "body": null}}`,
			expTarget: event.Target{PullNumber: 3},
		},
		"Comments on pull requests should target the PR.": {
			name:      "issue_comment",
			payload:   `{"issue": {"number": 7, "pull_request": {"url": "https://api.github.com/repos/tkc/app/pulls/7"}}}`,
			expTarget: event.Target{PullNumber: 7},
		},
		"Comments on issues should be skipped.": {
			name:      "issue_comment",
			payload:   `{"issue": {"number": 7}}`,
			expTarget: event.Target{Skip: true, Reason: "triggered for issue rather than PR"},
		},
		"Other events should be skipped.": {
			name:      "push",
			payload:   `{"ref": "refs/heads/main"}`,
			expTarget: event.Target{Skip: true, Reason: "PR is unknown"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ev, err := event.Parse(test.name, []byte(test.payload))
			require.NoError(err)

			assert.Equal(test.expTarget, ev.Target())
			assert.Equal(test.expRepository, ev.Repository())
		})
	}
}

func TestParseInvalidPayload(t *testing.T) {
	_, err := event.Parse("pull_request", []byte(`{"pull_request": `))
	assert.ErrorIs(t, err, domain.ErrNotValid)
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(os.WriteFile(path, []byte(`{"pull_request": {"number": 9}}`), 0o600))

	ev, err := event.Load("pull_request", path)
	require.NoError(err)
	assert.Equal(t, 9, ev.Target().PullNumber)

	_, err = event.Load("pull_request", "")
	assert.ErrorIs(t, err, domain.ErrNotValid)

	_, err = event.Load("pull_request", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"issue": {"number": 5, "pull_request": {}}}`), 0o600))

	t.Setenv(event.EnvEventName, "issue_comment")
	t.Setenv(event.EnvEventPath, path)

	ev, err := event.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, event.Target{PullNumber: 5}, ev.Target())
}
