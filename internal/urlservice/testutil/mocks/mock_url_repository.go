package mocks

import (
	context "context"
	time "time"

	domain "shortlink/internal/urlservice/domain"
	usecase "shortlink/internal/urlservice/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockURLRepository is an autogenerated mock type for the URLRepository type
type MockURLRepository struct {
	mock.Mock
}

type MockURLRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockURLRepository) EXPECT() *MockURLRepository_Expecter {
	return &MockURLRepository_Expecter{mock: &_m.Mock}
}

// CodeTaken provides a mock function with given fields: ctx, code, retiredSince
func (_m *MockURLRepository) CodeTaken(ctx context.Context, code string, retiredSince time.Time) (bool, error) {
	ret := _m.Called(ctx, code, retiredSince)

	if len(ret) == 0 {
		panic("no return value specified for CodeTaken")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) (bool, error)); ok {
		return rf(ctx, code, retiredSince)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) bool); ok {
		r0 = rf(ctx, code, retiredSince)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time) error); ok {
		r1 = rf(ctx, code, retiredSince)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLRepository_CodeTaken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CodeTaken'
type MockURLRepository_CodeTaken_Call struct {
	*mock.Call
}

// CodeTaken is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - retiredSince time.Time
func (_e *MockURLRepository_Expecter) CodeTaken(ctx interface{}, code interface{}, retiredSince interface{}) *MockURLRepository_CodeTaken_Call {
	return &MockURLRepository_CodeTaken_Call{Call: _e.mock.On("CodeTaken", ctx, code, retiredSince)}
}

func (_c *MockURLRepository_CodeTaken_Call) Run(run func(ctx context.Context, code string, retiredSince time.Time)) *MockURLRepository_CodeTaken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time))
	})
	return _c
}

func (_c *MockURLRepository_CodeTaken_Call) Return(_a0 bool, _a1 error) *MockURLRepository_CodeTaken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_CodeTaken_Call) RunAndReturn(run func(context.Context, string, time.Time) (bool, error)) *MockURLRepository_CodeTaken_Call {
	_c.Call.Return(run)
	return _c
}

// Count provides a mock function with given fields: ctx, params
func (_m *MockURLRepository) Count(ctx context.Context, params usecase.CountParams) (int64, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Count")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CountParams) (int64, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CountParams) int64); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.CountParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLRepository_Count_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Count'
type MockURLRepository_Count_Call struct {
	*mock.Call
}

// Count is a helper method to define mock.On call
//   - ctx context.Context
//   - params usecase.CountParams
func (_e *MockURLRepository_Expecter) Count(ctx interface{}, params interface{}) *MockURLRepository_Count_Call {
	return &MockURLRepository_Count_Call{Call: _e.mock.On("Count", ctx, params)}
}

func (_c *MockURLRepository_Count_Call) Run(run func(ctx context.Context, params usecase.CountParams)) *MockURLRepository_Count_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.CountParams))
	})
	return _c
}

func (_c *MockURLRepository_Count_Call) Return(_a0 int64, _a1 error) *MockURLRepository_Count_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_Count_Call) RunAndReturn(run func(context.Context, usecase.CountParams) (int64, error)) *MockURLRepository_Count_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, code
func (_m *MockURLRepository) Delete(ctx context.Context, code string) error {
	ret := _m.Called(ctx, code)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, code)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockURLRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockURLRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
func (_e *MockURLRepository_Expecter) Delete(ctx interface{}, code interface{}) *MockURLRepository_Delete_Call {
	return &MockURLRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, code)}
}

func (_c *MockURLRepository_Delete_Call) Run(run func(ctx context.Context, code string)) *MockURLRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockURLRepository_Delete_Call) Return(_a0 error) *MockURLRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockURLRepository_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockURLRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx, params
func (_m *MockURLRepository) FindAll(ctx context.Context, params usecase.FindAllParams) ([]*domain.ShortLink, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*domain.ShortLink
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.FindAllParams) ([]*domain.ShortLink, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.FindAllParams) []*domain.ShortLink); ok {
		r0 = rf(ctx, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.ShortLink)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.FindAllParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockURLRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
//   - params usecase.FindAllParams
func (_e *MockURLRepository_Expecter) FindAll(ctx interface{}, params interface{}) *MockURLRepository_FindAll_Call {
	return &MockURLRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx, params)}
}

func (_c *MockURLRepository_FindAll_Call) Run(run func(ctx context.Context, params usecase.FindAllParams)) *MockURLRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.FindAllParams))
	})
	return _c
}

func (_c *MockURLRepository_FindAll_Call) Return(_a0 []*domain.ShortLink, _a1 error) *MockURLRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_FindAll_Call) RunAndReturn(run func(context.Context, usecase.FindAllParams) ([]*domain.ShortLink, error)) *MockURLRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// FindByCode provides a mock function with given fields: ctx, code
func (_m *MockURLRepository) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
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

// MockURLRepository_FindByCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByCode'
type MockURLRepository_FindByCode_Call struct {
	*mock.Call
}

// FindByCode is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
func (_e *MockURLRepository_Expecter) FindByCode(ctx interface{}, code interface{}) *MockURLRepository_FindByCode_Call {
	return &MockURLRepository_FindByCode_Call{Call: _e.mock.On("FindByCode", ctx, code)}
}

func (_c *MockURLRepository_FindByCode_Call) Run(run func(ctx context.Context, code string)) *MockURLRepository_FindByCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockURLRepository_FindByCode_Call) Return(_a0 *domain.ShortLink, _a1 error) *MockURLRepository_FindByCode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_FindByCode_Call) RunAndReturn(run func(context.Context, string) (*domain.ShortLink, error)) *MockURLRepository_FindByCode_Call {
	_c.Call.Return(run)
	return _c
}

// Insert provides a mock function with given fields: ctx, code, originalURL, retiredSince
func (_m *MockURLRepository) Insert(ctx context.Context, code string, originalURL string, retiredSince time.Time) (*domain.ShortLink, error) {
	ret := _m.Called(ctx, code, originalURL, retiredSince)

	if len(ret) == 0 {
		panic("no return value specified for Insert")
	}

	var r0 *domain.ShortLink
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Time) (*domain.ShortLink, error)); ok {
		return rf(ctx, code, originalURL, retiredSince)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Time) *domain.ShortLink); ok {
		r0 = rf(ctx, code, originalURL, retiredSince)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ShortLink)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Time) error); ok {
		r1 = rf(ctx, code, originalURL, retiredSince)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLRepository_Insert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Insert'
type MockURLRepository_Insert_Call struct {
	*mock.Call
}

// Insert is a helper method to define mock.On call
//   - ctx context.Context
//   - code string
//   - originalURL string
//   - retiredSince time.Time
func (_e *MockURLRepository_Expecter) Insert(ctx interface{}, code interface{}, originalURL interface{}, retiredSince interface{}) *MockURLRepository_Insert_Call {
	return &MockURLRepository_Insert_Call{Call: _e.mock.On("Insert", ctx, code, originalURL, retiredSince)}
}

func (_c *MockURLRepository_Insert_Call) Run(run func(ctx context.Context, code string, originalURL string, retiredSince time.Time)) *MockURLRepository_Insert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(time.Time))
	})
	return _c
}

func (_c *MockURLRepository_Insert_Call) Return(_a0 *domain.ShortLink, _a1 error) *MockURLRepository_Insert_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_Insert_Call) RunAndReturn(run func(context.Context, string, string, time.Time) (*domain.ShortLink, error)) *MockURLRepository_Insert_Call {
	_c.Call.Return(run)
	return _c
}

// PurgeRetired provides a mock function with given fields: ctx, before
func (_m *MockURLRepository) PurgeRetired(ctx context.Context, before time.Time) (int64, error) {
	ret := _m.Called(ctx, before)

	if len(ret) == 0 {
		panic("no return value specified for PurgeRetired")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) (int64, error)); ok {
		return rf(ctx, before)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) int64); ok {
		r0 = rf(ctx, before)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, before)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockURLRepository_PurgeRetired_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PurgeRetired'
type MockURLRepository_PurgeRetired_Call struct {
	*mock.Call
}

// PurgeRetired is a helper method to define mock.On call
//   - ctx context.Context
//   - before time.Time
func (_e *MockURLRepository_Expecter) PurgeRetired(ctx interface{}, before interface{}) *MockURLRepository_PurgeRetired_Call {
	return &MockURLRepository_PurgeRetired_Call{Call: _e.mock.On("PurgeRetired", ctx, before)}
}

func (_c *MockURLRepository_PurgeRetired_Call) Run(run func(ctx context.Context, before time.Time)) *MockURLRepository_PurgeRetired_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time))
	})
	return _c
}

func (_c *MockURLRepository_PurgeRetired_Call) Return(_a0 int64, _a1 error) *MockURLRepository_PurgeRetired_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockURLRepository_PurgeRetired_Call) RunAndReturn(run func(context.Context, time.Time) (int64, error)) *MockURLRepository_PurgeRetired_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockURLRepository creates a new instance of MockURLRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockURLRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockURLRepository {
	mock := &MockURLRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
