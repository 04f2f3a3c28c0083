package mocks

import (
	context "context"

	events "shortlink/internal/shared/events"

	mock "github.com/stretchr/testify/mock"
)

// MockClickRecorder is an autogenerated mock type for the ClickRecorder type
type MockClickRecorder struct {
	mock.Mock
}

type MockClickRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClickRecorder) EXPECT() *MockClickRecorder_Expecter {
	return &MockClickRecorder_Expecter{mock: &_m.Mock}
}

// RecordClick provides a mock function with given fields: ctx, event
func (_m *MockClickRecorder) RecordClick(ctx context.Context, event events.ClickEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for RecordClick")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, events.ClickEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockClickRecorder_RecordClick_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordClick'
type MockClickRecorder_RecordClick_Call struct {
	*mock.Call
}

// RecordClick is a helper method to define mock.On call
//   - ctx context.Context
//   - event events.ClickEvent
func (_e *MockClickRecorder_Expecter) RecordClick(ctx interface{}, event interface{}) *MockClickRecorder_RecordClick_Call {
	return &MockClickRecorder_RecordClick_Call{Call: _e.mock.On("RecordClick", ctx, event)}
}

func (_c *MockClickRecorder_RecordClick_Call) Run(run func(ctx context.Context, event events.ClickEvent)) *MockClickRecorder_RecordClick_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(events.ClickEvent))
	})
	return _c
}

func (_c *MockClickRecorder_RecordClick_Call) Return(_a0 error) *MockClickRecorder_RecordClick_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockClickRecorder_RecordClick_Call) RunAndReturn(run func(context.Context, events.ClickEvent) error) *MockClickRecorder_RecordClick_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClickRecorder creates a new instance of MockClickRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClickRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClickRecorder {
	mock := &MockClickRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
