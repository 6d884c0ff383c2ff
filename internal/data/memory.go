package data

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/yola1107/ludo/internal/biz"
)

type memoryRepo struct {
	mu      sync.RWMutex
	wins    map[int32]int64
	results []*biz.Result // 最新的在前
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{wins: make(map[int32]int64)}
}

func (r *memoryRepo) Save(_ context.Context, res *biz.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.wins[res.Winner]++
	r.results = append([]*biz.Result{&cp}, r.results...)
	if len(r.results) > maxResults {
		r.results = r.results[:maxResults]
	}
	return nil
}

func (r *memoryRepo) Wins(context.Context) (map[int32]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Assign(r.wins), nil
}

func (r *memoryRepo) Recent(_ context.Context, n int) ([]*biz.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n <= 0 {
		return []*biz.Result{}, nil
	}
	return lo.Map(r.results[:min(n, len(r.results))], func(res *biz.Result, _ int) *biz.Result {
		cp := *res
		return &cp
	}), nil
}
