// Package scrollbar draws a vertical scrollbar beside a bubbles viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Model is the state of the scrollbar.
type Model struct {
	ContentHeight  int
	ViewportHeight int
	YOffset        int

	ThumbStyle lipgloss.Style
	TrackStyle lipgloss.Style
	ThumbChar  string
	TrackChar  string
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a scrollbar with default characters and colors.
func New(opts ...Option) Model {
	m := Model{
		ThumbChar:  "┃",
		TrackChar:  "│",
		ThumbStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TrackStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithViewport copies the heights and offset of a viewport.
func WithViewport(v viewport.Model) Option {
	return func(m *Model) {
		m.ContentHeight = v.TotalLineCount()
		m.ViewportHeight = v.Height
		m.YOffset = v.YOffset
	}
}

// WithStyles sets the styles for the thumb and track.
func WithStyles(thumb, track lipgloss.Style) Option {
	return func(m *Model) {
		m.ThumbStyle = thumb
		m.TrackStyle = track
	}
}

// WithChars sets the characters for the thumb and track.
func WithChars(thumb, track string) Option {
	return func(m *Model) {
		m.ThumbChar = thumb
		m.TrackChar = track
	}
}

// Thumb returns the first row and the height of the thumb. Content that fits
// the viewport gets a full-height thumb.
func (m Model) Thumb() (top, height int) {
	vh := m.ViewportHeight
	if vh <= 0 {
		return 0, 0
	}
	ch := max(m.ContentHeight, 0)
	if ch <= vh {
		return 0, vh
	}

	// proportional to the visible share, at least one row
	height = min(max(vh*vh/ch, 1), vh)

	maxOffset := ch - vh
	offset := min(max(m.YOffset, 0), maxOffset)
	if maxTop := vh - height; maxTop > 0 {
		top = offset * maxTop / maxOffset
	}
	return top, height
}

// View renders the scrollbar exactly ViewportHeight rows tall.
func (m Model) View() string {
	if m.ViewportHeight <= 0 {
		return ""
	}
	top, height := m.Thumb()

	// lipgloss drops background codes on plain spaces
	thumb, track := nbsp(m.ThumbChar), nbsp(m.TrackChar)

	rows := make([]string, m.ViewportHeight)
	for i := range rows {
		if i >= top && i < top+height {
			rows[i] = m.ThumbStyle.Render(thumb)
		} else {
			rows[i] = m.TrackStyle.Render(track)
		}
	}
	return strings.Join(rows, "\n")
}

func nbsp(s string) string {
	if s == " " {
		return "\u00a0"
	}
	return s
}
