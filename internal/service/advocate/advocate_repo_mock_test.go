package advocate

import (
	"context"
	"sync"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

var _ advocateRepo = &advocateRepoMock{}

type advocateRepoMock struct {
	FindFunc  func(ctx context.Context, filter domain.SearchFilter, limit int, offset int) ([]domain.Advocate, error)
	CountFunc func(ctx context.Context, filter domain.SearchFilter) (int, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			Filter domain.SearchFilter
			Limit  int
			Offset int
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.SearchFilter
		}
	}
	lockFind  sync.RWMutex
	lockCount sync.RWMutex
}

func (mock *advocateRepoMock) Find(ctx context.Context, filter domain.SearchFilter, limit int, offset int) ([]domain.Advocate, error) {
	if mock.FindFunc == nil {
		panic("advocateRepoMock.FindFunc: method is nil but advocateRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SearchFilter
		Limit  int
		Offset int
	}{Ctx: ctx, Filter: filter, Limit: limit, Offset: offset}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter, limit, offset)
}

func (mock *advocateRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.SearchFilter
	Limit  int
	Offset int
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *advocateRepoMock) Count(ctx context.Context, filter domain.SearchFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("advocateRepoMock.CountFunc: method is nil but advocateRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SearchFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *advocateRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.SearchFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
