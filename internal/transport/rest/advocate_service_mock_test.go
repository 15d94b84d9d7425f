package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/advocates-backend/internal/service/advocate"
)

var _ advocateService = &advocateServiceMock{}

type advocateServiceMock struct {
	ListFunc   func(ctx context.Context, input advocate.ListInput) (*advocate.PageResult, error)
	SearchFunc func(ctx context.Context, input advocate.SearchInput) (*advocate.SearchResult, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input advocate.ListInput
		}
		Search []struct {
			Ctx   context.Context
			Input advocate.SearchInput
		}
	}
	lockList   sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *advocateServiceMock) List(ctx context.Context, input advocate.ListInput) (*advocate.PageResult, error) {
	if mock.ListFunc == nil {
		panic("advocateServiceMock.ListFunc: method is nil but advocateService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advocate.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *advocateServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input advocate.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *advocateServiceMock) Search(ctx context.Context, input advocate.SearchInput) (*advocate.SearchResult, error) {
	if mock.SearchFunc == nil {
		panic("advocateServiceMock.SearchFunc: method is nil but advocateService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advocate.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *advocateServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input advocate.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
