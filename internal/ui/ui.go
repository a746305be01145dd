// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ui wraps the pterm widgets the screens share: spinners, tables,
// banners, and form prompts.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// Spinner starts a neutral loading indicator and returns a stop function.
// The cursor is hidden while the spinner runs.
func Spinner(text string) func() {
	cursor.Hide()
	sp, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = sp.Stop()
		cursor.Show()
	}
}

// ErrorBanner renders an inline red banner, the CLI equivalent of the web
// client's error box. Used for validation and creation errors; never for
// pure auth/role denials, which redirect silently.
func ErrorBanner(msg string) {
	for _, line := range strings.Split(msg, "\n") {
		pterm.Error.Println(line)
	}
}

// Success prints a confirmation line.
func Success(msg string) {
	pterm.Success.Println(msg)
}

// Info prints an informational line.
func Info(msg string) {
	pterm.Info.Println(msg)
}

// Header prints a screen title.
func Header(title string) {
	pterm.DefaultSection.Println(title)
}

// Table renders rows under a header row.
func Table(header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		// Degrade to plain output when the terminal refuses fancy rendering.
		fmt.Println(strings.Join(header, "\t"))
		for _, row := range rows {
			fmt.Println(strings.Join(row, "\t"))
		}
	}
}

// PromptText asks for a free-form value. Empty input yields defaultValue.
func PromptText(label, defaultValue string) string {
	v, _ := pterm.DefaultInteractiveTextInput.WithDefaultValue(defaultValue).Show(label)
	v = strings.TrimSpace(v)
	if v == "" {
		return defaultValue
	}
	return v
}

// PromptPassword asks for a secret without echoing it.
func PromptPassword(label string) string {
	v, _ := pterm.DefaultInteractiveTextInput.WithMask("*").Show(label)
	return strings.TrimSpace(v)
}

// PromptConfirm asks a yes/no question.
func PromptConfirm(label string) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.Show(label)
	return ok
}

// PromptSelect asks the user to pick one of the options.
func PromptSelect(label string, options []string) string {
	v, _ := pterm.DefaultInteractiveSelect.WithOptions(options).Show(label)
	return v
}

// FormatPrix renders an optional price.
func FormatPrix(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

// FormatDistance renders an optional distance in kilometres.
func FormatDistance(km *float64) string {
	if km == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f km", *km)
}
