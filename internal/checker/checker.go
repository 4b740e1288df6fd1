// Package checker はPull Requestのチェックリストを評価し、結果をチェックランとして公開する
package checker

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tkc/tasklist-checker/internal/domain"
	"github.com/tkc/tasklist-checker/internal/log"
	"github.com/tkc/tasklist-checker/internal/tasklist"
)

// GitHub はチェックに使うPull RequestのAPI
type GitHub interface {
	GetPullRequest(ctx context.Context, number int) (*domain.PullRequest, error)
	ListIssueComments(ctx context.Context, number int) ([]domain.Source, error)
	ListReviews(ctx context.Context, number int) ([]domain.Source, error)
	ListReviewComments(ctx context.Context, number int) ([]domain.Source, error)
	CreateCheckRun(ctx context.Context, check domain.CheckRun) (string, error)
}

//go:generate mockery --case underscore --output checkermock --outpkg checkermock --name GitHub --structname MockGitHub

// ServiceConfig はチェックサービスの設定
type ServiceConfig struct {
	GitHub    GitHub
	Tokenizer tasklist.Tokenizer
	Logger    log.Logger
	// CheckName はチェックランの名前とタイトル
	CheckName string
	// ScanComments はコメントとレビューのタスクも集計する
	ScanComments bool
	// UncompletedAsError は未完了タスクがあればチェックを失敗にする
	UncompletedAsError bool
	// テストで差し替える
	Now   func() time.Time
	NewID func() string
}

func (c *ServiceConfig) defaults() error {
	if c.GitHub == nil {
		return fmt.Errorf("github is required")
	}

	if c.Tokenizer == nil {
		return fmt.Errorf("tokenizer is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.CheckName == "" {
		c.CheckName = domain.DefaultCheckName
	}

	if c.Now == nil {
		c.Now = time.Now
	}

	if c.NewID == nil {
		now := c.Now
		c.NewID = func() string { return ulid.MustNew(ulid.Timestamp(now()), rand.Reader).String() }
	}

	return nil
}

// Service はPull Requestのチェックリストを評価する
type Service struct {
	github             GitHub
	extractor          *tasklist.Extractor
	logger             log.Logger
	checkName          string
	scanComments       bool
	uncompletedAsError bool
	now                func() time.Time
	newID              func() string
}

// NewService は新しいServiceを作成する
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	extractor, err := tasklist.NewExtractor(cfg.Tokenizer)
	if err != nil {
		return nil, fmt.Errorf("could not create extractor: %w", err)
	}

	return &Service{
		github:             cfg.GitHub,
		extractor:          extractor,
		logger:             cfg.Logger,
		checkName:          cfg.CheckName,
		scanComments:       cfg.ScanComments,
		uncompletedAsError: cfg.UncompletedAsError,
		now:                cfg.Now,
		newID:              cfg.NewID,
	}, nil
}

// Request はチェックのリクエスト
type Request struct {
	PullNumber int
	// DryRun はチェックランを公開せずに評価だけ行う
	DryRun bool
}

// Result はチェックの結果
type Result struct {
	PullRequest domain.PullRequest
	Tasks       domain.TaskSet
	Report      string
	Check       domain.CheckRun
	// ドライランでは空
	CheckURL string
}

// Run はPull Requestのチェックリストを評価してチェックランを公開する
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.PullNumber <= 0 {
		return nil, fmt.Errorf("invalid pull request number %d: %w", req.PullNumber, domain.ErrNotValid)
	}

	startedAt := s.now()
	runID := s.newID()
	ctx = s.logger.SetValuesOnCtx(ctx, log.Kv{"pr": req.PullNumber, "run-id": runID})
	logger := s.logger.WithCtxValues(ctx)

	pr, err := s.github.GetPullRequest(ctx, req.PullNumber)
	if err != nil {
		return nil, fmt.Errorf("could not get pull request: %w", err)
	}

	tasks, err := s.extractor.Tasks(pr.Body)
	if err != nil {
		return nil, fmt.Errorf("could not extract pull request tasks: %w", err)
	}
	logger.Debugf("found %d completed and %d uncompleted tasks in the body", len(tasks.Completed), len(tasks.Uncompleted))

	if s.scanComments {
		sources, err := s.listSources(ctx, req.PullNumber)
		if err != nil {
			return nil, err
		}
		logger.Debugf("scanning %d comments", len(sources))

		tasks, err = s.extractor.Aggregate(tasks, sources)
		if err != nil {
			return nil, fmt.Errorf("could not extract comment tasks: %w", err)
		}
	}

	report := tasklist.Render(tasks)
	check := domain.NewCheckRun(*pr, tasks, report, domain.CheckOptions{
		Name:               s.checkName,
		UncompletedAsError: s.uncompletedAsError,
		StartedAt:          startedAt,
		Now:                s.now(),
	})
	check.ExternalID = runID

	logger.Infof("%s", check.Output.Summary)

	result := &Result{
		PullRequest: *pr,
		Tasks:       tasks,
		Report:      report,
		Check:       check,
	}

	if req.DryRun {
		logger.Infof("dry run, check run not published")
		return result, nil
	}

	url, err := s.github.CreateCheckRun(ctx, check)
	if err != nil {
		return nil, fmt.Errorf("could not publish check run: %w", err)
	}
	result.CheckURL = url
	logger.Debugf("check run published: %s", url)

	return result, nil
}

// listSources は3種類のコメントを並行して取得し、古い順にまとめる
func (s *Service) listSources(ctx context.Context, number int) ([]domain.Source, error) {
	var comments, reviews, reviewComments []domain.Source

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		comments, err = s.github.ListIssueComments(gctx, number)
		if err != nil {
			return fmt.Errorf("could not list comments: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		reviews, err = s.github.ListReviews(gctx, number)
		if err != nil {
			return fmt.Errorf("could not list reviews: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		reviewComments, err = s.github.ListReviewComments(gctx, number)
		if err != nil {
			return fmt.Errorf("could not list review comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tasklist.SortSources(comments, reviews, reviewComments), nil
}
