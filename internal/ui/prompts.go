// Package ui provides interactive prompts and terminal styling.
package ui

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// AskTextValidated prompts for text and re-asks until validate accepts
// the input.
func AskTextValidated(label, defaultValue string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: validate,
	}
	return prompt.Run()
}

// AskSelect prompts for a single choice.
func AskSelect(label string, items []string) (string, error) {
	sel := promptui.Select{
		Label: label,
		Items: items,
	}
	_, value, err := sel.Run()
	return value, err
}

// AskConfirm prompts for yes/no confirmation. Declining is not an
// error.
func AskConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "y",
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
