package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/tab"
)

const (
	colorBlue     lipgloss.Color = "#89b4fa"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorText     lipgloss.Color = "#cdd6f4"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginTop(1)
	keyStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// renderSettings prints the cached values of t grouped by section.
func renderSettings(t *tab.Tab, label string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", label, t.Slug())))
	b.WriteString("\n")

	width := 0
	for _, field := range t.Fields() {
		if field.Structural() {
			continue
		}
		if n := len(model.Unprefix(t.Slug(), field.FieldID())); n > width {
			width = n
		}
	}

	for _, field := range t.Fields() {
		switch f := field.(type) {
		case model.Title:
			b.WriteString(sectionStyle.Render(f.Title))
			b.WriteString("\n")
			continue
		case model.SectionEnd:
			continue
		}
		id := model.Unprefix(t.Slug(), field.FieldID())
		b.WriteString("  ")
		b.WriteString(keyStyle.Width(width + 2).Render(id))
		b.WriteString(displayValue(t, field, id))
		b.WriteString("\n")
	}
	return b.String()
}

func displayValue(t *tab.Tab, field model.Field, id string) string {
	value, err := t.GetString(id)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	if value == "" {
		return mutedStyle.Render("(empty)")
	}
	if field.FieldType() == model.TypePassword {
		return mutedStyle.Render("********")
	}
	return valueStyle.Render(value)
}

// renderFieldErrors lists validation failures, one per line.
func renderFieldErrors(slug string, errs map[string]string, ids []string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("not saved:"))
	b.WriteString("\n")
	for _, id := range ids {
		msg, ok := errs[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", keyStyle.Render(model.Unprefix(slug, id)), msg)
	}
	return b.String()
}
