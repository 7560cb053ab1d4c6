package streams

import "github.com/stretchr/testify/mock"

// mockHandler doubles for the terminal callbacks bound at graph leaves.
type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) OnResult(v int) {
	m.Called(v)
}

func (m *mockHandler) OnError(err error) {
	m.Called(err)
}

func (m *mockHandler) OnComplete() {
	m.Called()
}

func newMockHandler() *mockHandler {
	return &mockHandler{}
}
