package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// MockClickCounter is an autogenerated mock type for the ClickCounter type
type MockClickCounter struct {
	mock.Mock
}

type MockClickCounter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClickCounter) EXPECT() *MockClickCounter_Expecter {
	return &MockClickCounter_Expecter{mock: &_m.Mock}
}

// CountSince provides a mock function with given fields: ctx, code, since
func (_m *MockClickCounter) CountSince(ctx context.Context, code string, since time.Time) (int64, error) {
	ret := _m.Called(ctx, code, since)

	if len(ret) == 0 {
		panic("no return value specified for CountSince")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) (int64, error)); ok {
		return rf(ctx, code, since)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) int64); ok {
		r0 = rf(ctx, code, since)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time) error); ok {
		r1 = rf(ctx, code, since)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickCounter_CountSince_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountSince'
type MockClickCounter_CountSince_Call struct {
	*mock.Call
}

// CountSince is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - since time.Time
func (_e *MockClickCounter_Expecter) CountSince(ctx interface{}, code interface{}, since interface{}) *MockClickCounter_CountSince_Call {
	return &MockClickCounter_CountSince_Call{Call: _e.mock.On("CountSince", ctx, code, since)}
}

func (_c *MockClickCounter_CountSince_Call) Run(run func(ctx context.Context, code string, since time.Time)) *MockClickCounter_CountSince_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time))
	})
	return _c
}

func (_c *MockClickCounter_CountSince_Call) Return(_a0 int64, _a1 error) *MockClickCounter_CountSince_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickCounter_CountSince_Call) RunAndReturn(run func(context.Context, string, time.Time) (int64, error)) *MockClickCounter_CountSince_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClickCounter creates a new instance of MockClickCounter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClickCounter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClickCounter {
	mock := &MockClickCounter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
