package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-summarizer/internal/api/v1/dto"
	"audio-summarizer/internal/app/model"
)

// MockRunService is a mock implementation of services.RunService
type MockRunService struct {
	mock.Mock
}

func NewMockRunService(t *testing.T) *MockRunService {
	m := &MockRunService{}
	m.Test(t)
	return m
}

func (m *MockRunService) CreateRun(ctx context.Context, upload model.UploadedAudio, form dto.CreateRunForm) (*dto.RunResponse, error) {
	args := m.Called(ctx, upload, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RunResponse), args.Error(1)
}

func (m *MockRunService) GetRun(ctx context.Context, id string) (*dto.RunResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RunResponse), args.Error(1)
}

func (m *MockRunService) SaveRun(ctx context.Context, id string) (*dto.SaveResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveResponse), args.Error(1)
}

func (m *MockRunService) ReportFile(ctx context.Context, id string) (*dto.ReportFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportFile), args.Error(1)
}
