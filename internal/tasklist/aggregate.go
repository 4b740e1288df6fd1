package tasklist

import (
	"fmt"
	"sort"

	"github.com/tkc/tasklist-checker/internal/domain"
)

// SortSources は複数のコレクションを古い順に1つの並びへまとめる
// 同じ時刻のものは渡された順を保つ
func SortSources(collections ...[]domain.Source) []domain.Source {
	total := 0
	for _, c := range collections {
		total += len(c)
	}

	sources := make([]domain.Source, 0, total)
	for _, c := range collections {
		sources = append(sources, c...)
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].SortKey() < sources[j].SortKey()
	})

	return sources
}

// Aggregate は各ソースのタスクを渡された順に primary の末尾へ追加する
func (e *Extractor) Aggregate(primary domain.TaskSet, sources []domain.Source) (domain.TaskSet, error) {
	tasks := domain.NewTaskSet().Append(primary)
	for i, s := range sources {
		st, err := e.Tasks(s.Body)
		if err != nil {
			return domain.TaskSet{}, fmt.Errorf("could not extract tasks from source %d: %w", i, err)
		}
		tasks = tasks.Append(st)
	}

	return tasks, nil
}
