package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

// SelectItem shows a searchable list of checklist items
func SelectItem(label string, items []models.ChecklistItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no checklist items to select")
	}

	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = FormatItem(item)
	}

	prompt := promptui.Select{
		Label: label,
		Items: rows,
		Size:  12,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(rows[index]), strings.ToLower(input))
		},
		StartInSearchMode: true,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return items[idx].URL, nil
}

// Confirm asks for a y/n answer until one is given
func Confirm(message string) (bool, error) {
	var confirm string
	for {
		fmt.Printf("%s (y/n): ", message)
		if _, err := fmt.Scan(&confirm); err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch strings.ToLower(confirm) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Println("Please enter 'y' or 'n'.")
		}
	}
}
