package ui

import "github.com/ryo246912/gh-deploy-checklist/internal/models"

// Prompter defines interface for user interaction
type Prompter interface {
	SelectItem(label string, items []models.ChecklistItem) (string, error)
	Confirm(message string) (bool, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// SelectItem prompts user to select a checklist item and returns its URL
func (p *DefaultPrompter) SelectItem(label string, items []models.ChecklistItem) (string, error) {
	return SelectItem(label, items)
}

// Confirm prompts user to answer y/n
func (p *DefaultPrompter) Confirm(message string) (bool, error) {
	return Confirm(message)
}

// MockPrompter for testing
type MockPrompter struct {
	SelectedURL        string
	SelectionError     error
	ConfirmedSelection bool
	ConfirmationError  error

	// Call tracking
	SelectItemCalled bool
	ConfirmCalled    bool
	LastItems        []models.ChecklistItem
	LastMessage      string
}

// SelectItem mocks item selection
func (m *MockPrompter) SelectItem(label string, items []models.ChecklistItem) (string, error) {
	m.SelectItemCalled = true
	m.LastItems = items
	return m.SelectedURL, m.SelectionError
}

// Confirm mocks confirmation
func (m *MockPrompter) Confirm(message string) (bool, error) {
	m.ConfirmCalled = true
	m.LastMessage = message
	return m.ConfirmedSelection, m.ConfirmationError
}
