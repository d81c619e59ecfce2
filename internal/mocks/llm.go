package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMService is a mock implementation of the completion client
type MockLLMService struct {
	mock.Mock
}

// Complete mocks the Complete method
func (m *MockLLMService) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}
