package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockGeoIPResolver is an autogenerated mock type for the GeoIPResolver type
type MockGeoIPResolver struct {
	mock.Mock
}

type MockGeoIPResolver_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGeoIPResolver) EXPECT() *MockGeoIPResolver_Expecter {
	return &MockGeoIPResolver_Expecter{mock: &_m.Mock}
}

// ResolveLocation provides a mock function with given fields: ip
func (_m *MockGeoIPResolver) ResolveLocation(ip string) string {
	ret := _m.Called(ip)

	if len(ret) == 0 {
		panic("no return value specified for ResolveLocation")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(ip)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockGeoIPResolver_ResolveLocation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ResolveLocation'
type MockGeoIPResolver_ResolveLocation_Call struct {
	*mock.Call
}

// ResolveLocation is a helper method to define mock.On call
//   - ip string
func (_e *MockGeoIPResolver_Expecter) ResolveLocation(ip interface{}) *MockGeoIPResolver_ResolveLocation_Call {
	return &MockGeoIPResolver_ResolveLocation_Call{Call: _e.mock.On("ResolveLocation", ip)}
}

func (_c *MockGeoIPResolver_ResolveLocation_Call) Run(run func(ip string)) *MockGeoIPResolver_ResolveLocation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockGeoIPResolver_ResolveLocation_Call) Return(_a0 string) *MockGeoIPResolver_ResolveLocation_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGeoIPResolver_ResolveLocation_Call) RunAndReturn(run func(string) string) *MockGeoIPResolver_ResolveLocation_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGeoIPResolver creates a new instance of MockGeoIPResolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGeoIPResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGeoIPResolver {
	mock := &MockGeoIPResolver{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
