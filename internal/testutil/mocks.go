package testutil

import (
	"errors"

	"lastomo-app/internal/llm"
	"lastomo-app/internal/store"
)

// MockProvider is a mock implementation of llm.Provider for testing
type MockProvider struct {
	CompleteFunc func(messages []llm.Message) (string, error)

	// Calls records every message sequence passed to Complete
	Calls [][]llm.Message
}

func (m *MockProvider) Complete(messages []llm.Message) (string, error) {
	m.Calls = append(m.Calls, messages)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(messages)
	}
	return "", errors.New("not implemented")
}

// MockStore is a mock implementation of store.Store for testing
type MockStore struct {
	SaveProfileFunc func(profile *store.ProfileRecord) error
	CloseFunc       func() error

	// Saved records every profile passed to SaveProfile
	Saved []*store.ProfileRecord
}

func (m *MockStore) SaveProfile(profile *store.ProfileRecord) error {
	m.Saved = append(m.Saved, profile)
	if m.SaveProfileFunc != nil {
		return m.SaveProfileFunc(profile)
	}
	return errors.New("not implemented")
}

func (m *MockStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
