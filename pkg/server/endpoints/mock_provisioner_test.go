package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keyturn/keyturn/pkg/provision"
)

// MockProvisioner implements provision.Provisioner for testing using
// testify/mock
type MockProvisioner struct {
	mock.Mock
}

func NewMockProvisioner() *MockProvisioner {
	return &MockProvisioner{}
}

func (m *MockProvisioner) Provision(ctx context.Context, login, password string) (provision.Result, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(provision.Result), args.Error(1)
}
