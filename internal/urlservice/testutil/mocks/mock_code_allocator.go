package mocks

import (
	context "context"

	domain "shortlink/internal/urlservice/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockCodeAllocator is an autogenerated mock type for the CodeAllocator type
type MockCodeAllocator struct {
	mock.Mock
}

type MockCodeAllocator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCodeAllocator) EXPECT() *MockCodeAllocator_Expecter {
	return &MockCodeAllocator_Expecter{mock: &_m.Mock}
}

// Allocate provides a mock function with given fields: ctx, originalURL
func (_m *MockCodeAllocator) Allocate(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	ret := _m.Called(ctx, originalURL)

	if len(ret) == 0 {
		panic("no return value specified for Allocate")
	}

	var r0 *domain.ShortLink
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.ShortLink, error)); ok {
		return rf(ctx, originalURL)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.ShortLink); ok {
		r0 = rf(ctx, originalURL)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ShortLink)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, originalURL)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCodeAllocator_Allocate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Allocate'
type MockCodeAllocator_Allocate_Call struct {
	*mock.Call
}

// Allocate is a helper method to define mock.On call
//   - ctx context.Context
//   - originalURL string
func (_e *MockCodeAllocator_Expecter) Allocate(ctx interface{}, originalURL interface{}) *MockCodeAllocator_Allocate_Call {
	return &MockCodeAllocator_Allocate_Call{Call: _e.mock.On("Allocate", ctx, originalURL)}
}

func (_c *MockCodeAllocator_Allocate_Call) Run(run func(ctx context.Context, originalURL string)) *MockCodeAllocator_Allocate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCodeAllocator_Allocate_Call) Return(_a0 *domain.ShortLink, _a1 error) *MockCodeAllocator_Allocate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCodeAllocator_Allocate_Call) RunAndReturn(run func(context.Context, string) (*domain.ShortLink, error)) *MockCodeAllocator_Allocate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCodeAllocator creates a new instance of MockCodeAllocator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCodeAllocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCodeAllocator {
	mock := &MockCodeAllocator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
