package mocks

import (
	context "context"
	time "time"

	usecase "shortlink/internal/analytics/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockClickRepository is an autogenerated mock type for the ClickRepository type
type MockClickRepository struct {
	mock.Mock
}

type MockClickRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClickRepository) EXPECT() *MockClickRepository_Expecter {
	return &MockClickRepository_Expecter{mock: &_m.Mock}
}

// CountByDeviceInRange provides a mock function with given fields: ctx, code, from, to
func (_m *MockClickRepository) CountByDeviceInRange(ctx context.Context, code string, from time.Time, to time.Time) ([]usecase.GroupCount, error) {
	ret := _m.Called(ctx, code, from, to)

	if len(ret) == 0 {
		panic("no return value specified for CountByDeviceInRange")
	}

	var r0 []usecase.GroupCount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)); ok {
		return rf(ctx, code, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) []usecase.GroupCount); ok {
		r0 = rf(ctx, code, from, to)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.GroupCount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time, time.Time) error); ok {
		r1 = rf(ctx, code, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickRepository_CountByDeviceInRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByDeviceInRange'
type MockClickRepository_CountByDeviceInRange_Call struct {
	*mock.Call
}

// CountByDeviceInRange is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - from time.Time
//   - to time.Time
func (_e *MockClickRepository_Expecter) CountByDeviceInRange(ctx interface{}, code interface{}, from interface{}, to interface{}) *MockClickRepository_CountByDeviceInRange_Call {
	return &MockClickRepository_CountByDeviceInRange_Call{Call: _e.mock.On("CountByDeviceInRange", ctx, code, from, to)}
}

func (_c *MockClickRepository_CountByDeviceInRange_Call) Run(run func(ctx context.Context, code string, from time.Time, to time.Time)) *MockClickRepository_CountByDeviceInRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time), args[3].(time.Time))
	})
	return _c
}

func (_c *MockClickRepository_CountByDeviceInRange_Call) Return(_a0 []usecase.GroupCount, _a1 error) *MockClickRepository_CountByDeviceInRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_CountByDeviceInRange_Call) RunAndReturn(run func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)) *MockClickRepository_CountByDeviceInRange_Call {
	_c.Call.Return(run)
	return _c
}

// CountByLocationInRange provides a mock function with given fields: ctx, code, from, to
func (_m *MockClickRepository) CountByLocationInRange(ctx context.Context, code string, from time.Time, to time.Time) ([]usecase.GroupCount, error) {
	ret := _m.Called(ctx, code, from, to)

	if len(ret) == 0 {
		panic("no return value specified for CountByLocationInRange")
	}

	var r0 []usecase.GroupCount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)); ok {
		return rf(ctx, code, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) []usecase.GroupCount); ok {
		r0 = rf(ctx, code, from, to)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.GroupCount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time, time.Time) error); ok {
		r1 = rf(ctx, code, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickRepository_CountByLocationInRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByLocationInRange'
type MockClickRepository_CountByLocationInRange_Call struct {
	*mock.Call
}

// CountByLocationInRange is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - from time.Time
//   - to time.Time
func (_e *MockClickRepository_Expecter) CountByLocationInRange(ctx interface{}, code interface{}, from interface{}, to interface{}) *MockClickRepository_CountByLocationInRange_Call {
	return &MockClickRepository_CountByLocationInRange_Call{Call: _e.mock.On("CountByLocationInRange", ctx, code, from, to)}
}

func (_c *MockClickRepository_CountByLocationInRange_Call) Run(run func(ctx context.Context, code string, from time.Time, to time.Time)) *MockClickRepository_CountByLocationInRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time), args[3].(time.Time))
	})
	return _c
}

func (_c *MockClickRepository_CountByLocationInRange_Call) Return(_a0 []usecase.GroupCount, _a1 error) *MockClickRepository_CountByLocationInRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_CountByLocationInRange_Call) RunAndReturn(run func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)) *MockClickRepository_CountByLocationInRange_Call {
	_c.Call.Return(run)
	return _c
}

// CountBySourceInRange provides a mock function with given fields: ctx, code, from, to
func (_m *MockClickRepository) CountBySourceInRange(ctx context.Context, code string, from time.Time, to time.Time) ([]usecase.GroupCount, error) {
	ret := _m.Called(ctx, code, from, to)

	if len(ret) == 0 {
		panic("no return value specified for CountBySourceInRange")
	}

	var r0 []usecase.GroupCount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)); ok {
		return rf(ctx, code, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) []usecase.GroupCount); ok {
		r0 = rf(ctx, code, from, to)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.GroupCount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time, time.Time) error); ok {
		r1 = rf(ctx, code, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickRepository_CountBySourceInRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountBySourceInRange'
type MockClickRepository_CountBySourceInRange_Call struct {
	*mock.Call
}

// CountBySourceInRange is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - from time.Time
//   - to time.Time
func (_e *MockClickRepository_Expecter) CountBySourceInRange(ctx interface{}, code interface{}, from interface{}, to interface{}) *MockClickRepository_CountBySourceInRange_Call {
	return &MockClickRepository_CountBySourceInRange_Call{Call: _e.mock.On("CountBySourceInRange", ctx, code, from, to)}
}

func (_c *MockClickRepository_CountBySourceInRange_Call) Run(run func(ctx context.Context, code string, from time.Time, to time.Time)) *MockClickRepository_CountBySourceInRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time), args[3].(time.Time))
	})
	return _c
}

func (_c *MockClickRepository_CountBySourceInRange_Call) Return(_a0 []usecase.GroupCount, _a1 error) *MockClickRepository_CountBySourceInRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_CountBySourceInRange_Call) RunAndReturn(run func(context.Context, string, time.Time, time.Time) ([]usecase.GroupCount, error)) *MockClickRepository_CountBySourceInRange_Call {
	_c.Call.Return(run)
	return _c
}

// CountInRange provides a mock function with given fields: ctx, code, from, to
func (_m *MockClickRepository) CountInRange(ctx context.Context, code string, from time.Time, to time.Time) (int64, error) {
	ret := _m.Called(ctx, code, from, to)

	if len(ret) == 0 {
		panic("no return value specified for CountInRange")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) (int64, error)); ok {
		return rf(ctx, code, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time, time.Time) int64); ok {
		r0 = rf(ctx, code, from, to)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time, time.Time) error); ok {
		r1 = rf(ctx, code, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickRepository_CountInRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountInRange'
type MockClickRepository_CountInRange_Call struct {
	*mock.Call
}

// CountInRange is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - from time.Time
//   - to time.Time
func (_e *MockClickRepository_Expecter) CountInRange(ctx interface{}, code interface{}, from interface{}, to interface{}) *MockClickRepository_CountInRange_Call {
	return &MockClickRepository_CountInRange_Call{Call: _e.mock.On("CountInRange", ctx, code, from, to)}
}

func (_c *MockClickRepository_CountInRange_Call) Run(run func(ctx context.Context, code string, from time.Time, to time.Time)) *MockClickRepository_CountInRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time), args[3].(time.Time))
	})
	return _c
}

func (_c *MockClickRepository_CountInRange_Call) Return(_a0 int64, _a1 error) *MockClickRepository_CountInRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_CountInRange_Call) RunAndReturn(run func(context.Context, string, time.Time, time.Time) (int64, error)) *MockClickRepository_CountInRange_Call {
	_c.Call.Return(run)
	return _c
}

// CountSince provides a mock function with given fields: ctx, code, since
func (_m *MockClickRepository) CountSince(ctx context.Context, code string, since time.Time) (int64, error) {
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

// MockClickRepository_CountSince_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountSince'
type MockClickRepository_CountSince_Call struct {
	*mock.Call
}

// CountSince is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - since time.Time
func (_e *MockClickRepository_Expecter) CountSince(ctx interface{}, code interface{}, since interface{}) *MockClickRepository_CountSince_Call {
	return &MockClickRepository_CountSince_Call{Call: _e.mock.On("CountSince", ctx, code, since)}
}

func (_c *MockClickRepository_CountSince_Call) Run(run func(ctx context.Context, code string, since time.Time)) *MockClickRepository_CountSince_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time))
	})
	return _c
}

func (_c *MockClickRepository_CountSince_Call) Return(_a0 int64, _a1 error) *MockClickRepository_CountSince_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_CountSince_Call) RunAndReturn(run func(context.Context, string, time.Time) (int64, error)) *MockClickRepository_CountSince_Call {
	_c.Call.Return(run)
	return _c
}

// Insert provides a mock function with given fields: ctx, click
func (_m *MockClickRepository) Insert(ctx context.Context, click usecase.Click) error {
	ret := _m.Called(ctx, click)

	if len(ret) == 0 {
		panic("no return value specified for Insert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.Click) error); ok {
		r0 = rf(ctx, click)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockClickRepository_Insert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Insert'
type MockClickRepository_Insert_Call struct {
	*mock.Call
}

// Insert is a helper method to define mock.On call
//   - ctx context.Context
//   - click usecase.Click
func (_e *MockClickRepository_Expecter) Insert(ctx interface{}, click interface{}) *MockClickRepository_Insert_Call {
	return &MockClickRepository_Insert_Call{Call: _e.mock.On("Insert", ctx, click)}
}

func (_c *MockClickRepository_Insert_Call) Run(run func(ctx context.Context, click usecase.Click)) *MockClickRepository_Insert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.Click))
	})
	return _c
}

func (_c *MockClickRepository_Insert_Call) Return(_a0 error) *MockClickRepository_Insert_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockClickRepository_Insert_Call) RunAndReturn(run func(context.Context, usecase.Click) error) *MockClickRepository_Insert_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, params
func (_m *MockClickRepository) List(ctx context.Context, params usecase.ListClicksParams) (*usecase.ClickPage, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 *usecase.ClickPage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ListClicksParams) (*usecase.ClickPage, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ListClicksParams) *usecase.ClickPage); ok {
		r0 = rf(ctx, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.ClickPage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.ListClicksParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClickRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockClickRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - params usecase.ListClicksParams
func (_e *MockClickRepository_Expecter) List(ctx interface{}, params interface{}) *MockClickRepository_List_Call {
	return &MockClickRepository_List_Call{Call: _e.mock.On("List", ctx, params)}
}

func (_c *MockClickRepository_List_Call) Run(run func(ctx context.Context, params usecase.ListClicksParams)) *MockClickRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.ListClicksParams))
	})
	return _c
}

func (_c *MockClickRepository_List_Call) Return(_a0 *usecase.ClickPage, _a1 error) *MockClickRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_List_Call) RunAndReturn(run func(context.Context, usecase.ListClicksParams) (*usecase.ClickPage, error)) *MockClickRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClickRepository creates a new instance of MockClickRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClickRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClickRepository {
	mock := &MockClickRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
