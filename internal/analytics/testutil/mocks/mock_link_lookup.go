package mocks

import (
	context "context"

	domain "shortlink/internal/urlservice/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockLinkLookup is an autogenerated mock type for the LinkLookup type
type MockLinkLookup struct {
	mock.Mock
}

type MockLinkLookup_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLinkLookup) EXPECT() *MockLinkLookup_Expecter {
	return &MockLinkLookup_Expecter{mock: &_m.Mock}
}

// FindByCode provides a mock function with given fields: ctx, code
func (_m *MockLinkLookup) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	ret := _m.Called(ctx, code)

	if len(ret) == 0 {
		panic("no return value specified for FindByCode")
	}

	var r0 *domain.ShortLink
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.ShortLink, error)); ok {
		return rf(ctx, code)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.ShortLink); ok {
		r0 = rf(ctx, code)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ShortLink)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, code)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLinkLookup_FindByCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByCode'
type MockLinkLookup_FindByCode_Call struct {
	*mock.Call
}

// FindByCode is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
func (_e *MockLinkLookup_Expecter) FindByCode(ctx interface{}, code interface{}) *MockLinkLookup_FindByCode_Call {
	return &MockLinkLookup_FindByCode_Call{Call: _e.mock.On("FindByCode", ctx, code)}
}

func (_c *MockLinkLookup_FindByCode_Call) Run(run func(ctx context.Context, code string)) *MockLinkLookup_FindByCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLinkLookup_FindByCode_Call) Return(_a0 *domain.ShortLink, _a1 error) *MockLinkLookup_FindByCode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLinkLookup_FindByCode_Call) RunAndReturn(run func(context.Context, string) (*domain.ShortLink, error)) *MockLinkLookup_FindByCode_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLinkLookup creates a new instance of MockLinkLookup. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLinkLookup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkLookup {
	mock := &MockLinkLookup{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
