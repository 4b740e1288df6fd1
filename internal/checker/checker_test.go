package checker_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tkc/tasklist-checker/internal/checker"
	"github.com/tkc/tasklist-checker/internal/checker/checkermock"
	"github.com/tkc/tasklist-checker/internal/domain"
	"github.com/tkc/tasklist-checker/internal/log"
	"github.com/tkc/tasklist-checker/internal/markdown"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config checker.ServiceConfig
		expErr bool
	}{
		"Valid config should create the service.": {
			config: checker.ServiceConfig{
				GitHub:    &checkermock.MockGitHub{},
				Tokenizer: markdown.NewTokenizer(),
				Logger:    log.Noop,
			},
			expErr: false,
		},
		"Missing GitHub should fail.": {
			config: checker.ServiceConfig{
				Tokenizer: markdown.NewTokenizer(),
			},
			expErr: true,
		},
		"Missing tokenizer should fail.": {
			config: checker.ServiceConfig{
				GitHub: &checkermock.MockGitHub{},
			},
			expErr: true,
		},
		"Missing logger should default to noop.": {
			config: checker.ServiceConfig{
				GitHub:    &checkermock.MockGitHub{},
				Tokenizer: markdown.NewTokenizer(),
			},
			expErr: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := checker.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	startedAt := time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC)
	pr := &domain.PullRequest{RepositoryID: "R_1", Number: 7, HeadSHA: "abc123", Body: "- [x] A\n- [ ] B"}

	tests := map[string]struct {
		scanComments       bool
		uncompletedAsError bool
		req                checker.Request
		mock               func(m *checkermock.MockGitHub)
		expTasks           domain.TaskSet
		expStatus          domain.CheckStatus
		expConclusion      domain.CheckConclusion
		expSummary         string
		expURL             string
		expErr             bool
	}{
		"Body only should publish an in progress check.": {
			req: checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(pr, nil)
				m.On("CreateCheckRun", mock.Anything, mock.MatchedBy(func(c domain.CheckRun) bool {
					return c.HeadSHA == "abc123" && c.RepositoryID == "R_1" && c.ExternalID == "01H2QWERTYASDFGZXCVBNMLKJH"
				})).Once().Return("https://github.com/tkc/app/runs/1", nil)
			},
			expTasks:      domain.TaskSet{Completed: []string{"A"}, Uncompleted: []string{"B"}},
			expStatus:     domain.CheckStatusInProgress,
			expConclusion: domain.CheckConclusionNone,
			expSummary:    "1/2 task still to be completed!",
			expURL:        "https://github.com/tkc/app/runs/1",
		},
		"Uncompleted as error should publish a failed check.": {
			uncompletedAsError: true,
			req:                checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(pr, nil)
				m.On("CreateCheckRun", mock.Anything, mock.Anything).Once().Return("https://github.com/tkc/app/runs/2", nil)
			},
			expTasks:      domain.TaskSet{Completed: []string{"A"}, Uncompleted: []string{"B"}},
			expStatus:     domain.CheckStatusCompleted,
			expConclusion: domain.CheckConclusionFailure,
			expSummary:    "1/2 task still to be completed!",
			expURL:        "https://github.com/tkc/app/runs/2",
		},
		"Scan comments should add comment tasks in time order.": {
			scanComments: true,
			req:          checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(pr, nil)
				m.On("ListIssueComments", mock.Anything, 7).Once().Return([]domain.Source{
					{Body: "- [ ] comment t1", CreatedAt: "2024-01-01T00:00:01Z"},
					{Body: "- [x] comment t4", CreatedAt: "2024-01-01T00:00:04Z"},
				}, nil)
				m.On("ListReviews", mock.Anything, 7).Once().Return([]domain.Source{
					{Body: "- [ ] review t3", SubmittedAt: "2024-01-01T00:00:03Z"},
				}, nil)
				m.On("ListReviewComments", mock.Anything, 7).Once().Return([]domain.Source{
					{Body: "- [x] diff t2", CreatedAt: "2024-01-01T00:00:02Z"},
				}, nil)
				m.On("CreateCheckRun", mock.Anything, mock.Anything).Once().Return("https://github.com/tkc/app/runs/3", nil)
			},
			expTasks: domain.TaskSet{
				Completed:   []string{"A", "diff t2", "comment t4"},
				Uncompleted: []string{"B", "comment t1", "review t3"},
			},
			expStatus:     domain.CheckStatusInProgress,
			expConclusion: domain.CheckConclusionNone,
			expSummary:    "3/6 tasks still to be completed!",
			expURL:        "https://github.com/tkc/app/runs/3",
		},
		"Dry run should not publish.": {
			req: checker.Request{PullNumber: 7, DryRun: true},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(&domain.PullRequest{Number: 7, Body: "- [x] A"}, nil)
			},
			expTasks:      domain.TaskSet{Completed: []string{"A"}, Uncompleted: []string{}},
			expStatus:     domain.CheckStatusCompleted,
			expConclusion: domain.CheckConclusionSuccess,
			expSummary:    "All tasks are completed!",
		},
		"A body without tasks should succeed.": {
			req: checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(&domain.PullRequest{Number: 7}, nil)
				m.On("CreateCheckRun", mock.Anything, mock.MatchedBy(func(c domain.CheckRun) bool {
					return c.Output.Text == domain.NoTaskListText
				})).Once().Return("", nil)
			},
			expTasks:      domain.NewTaskSet(),
			expStatus:     domain.CheckStatusCompleted,
			expConclusion: domain.CheckConclusionSuccess,
			expSummary:    "No task list",
		},
		"Invalid pull request number should fail.": {
			req:    checker.Request{PullNumber: 0},
			mock:   func(m *checkermock.MockGitHub) {},
			expErr: true,
		},
		"Pull request errors should propagate.": {
			req: checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(nil, fmt.Errorf("api error"))
			},
			expErr: true,
		},
		"Comment errors should propagate.": {
			scanComments: true,
			req:          checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(pr, nil)
				m.On("ListIssueComments", mock.Anything, 7).Maybe().Return(nil, fmt.Errorf("api error"))
				m.On("ListReviews", mock.Anything, 7).Maybe().Return([]domain.Source{}, nil)
				m.On("ListReviewComments", mock.Anything, 7).Maybe().Return([]domain.Source{}, nil)
			},
			expErr: true,
		},
		"Publish errors should propagate.": {
			req: checker.Request{PullNumber: 7},
			mock: func(m *checkermock.MockGitHub) {
				m.On("GetPullRequest", mock.Anything, 7).Once().Return(pr, nil)
				m.On("CreateCheckRun", mock.Anything, mock.Anything).Once().Return("", fmt.Errorf("api error"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			// Setup
			m := &checkermock.MockGitHub{}
			test.mock(m)

			svc, err := checker.NewService(checker.ServiceConfig{
				GitHub:             m,
				Tokenizer:          markdown.NewTokenizer(),
				Logger:             log.Noop,
				ScanComments:       test.scanComments,
				UncompletedAsError: test.uncompletedAsError,
				Now:                func() time.Time { return startedAt },
				NewID:              func() string { return "01H2QWERTYASDFGZXCVBNMLKJH" },
			})
			require.NoError(err)

			// Execute
			result, err := svc.Run(context.Background(), test.req)

			// Verify
			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(test.expTasks, result.Tasks)
				assert.Equal(test.expStatus, result.Check.Status)
				assert.Equal(test.expConclusion, result.Check.Conclusion)
				assert.Equal(test.expSummary, result.Check.Output.Summary)
				assert.Equal(domain.DefaultCheckName, result.Check.Name)
				assert.Equal(startedAt, result.Check.StartedAt)
				assert.Equal(test.expURL, result.CheckURL)
			}

			m.AssertExpectations(t)
		})
	}
}
