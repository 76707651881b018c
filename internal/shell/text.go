package shell

import (
	"fmt"
	"strings"
)

// PlainText renders a result without styling, for pipes and tool output.
func PlainText(r Result) string {
	var b strings.Builder
	writeTitle := func() {
		if r.Title != "" {
			b.WriteString(r.Title)
			b.WriteByte('\n')
		}
	}
	writeLines := func(prefix string) {
		for _, l := range r.Lines {
			b.WriteString(prefix)
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}
	writeGroups := func() {
		for i, g := range r.Groups {
			if i > 0 {
				b.WriteByte('\n')
			}
			if g.Title != "" {
				b.WriteString(g.Title)
				b.WriteString(":\n")
			}
			for _, item := range g.Items {
				b.WriteString("  ")
				b.WriteString(item.Text)
				b.WriteByte('\n')
			}
		}
	}

	switch r.Kind {
	case KindEmpty:
	case KindText:
		writeLines("")
	case KindList:
		writeTitle()
		writeLines("  ")
	case KindGroups, KindWidget:
		writeTitle()
		writeLines("")
		writeGroups()
	case KindCards:
		writeTitle()
		for i, c := range r.Cards {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(c.Title)
			b.WriteByte('\n')
			if c.Description != "" {
				b.WriteString("  ")
				b.WriteString(c.Description)
				b.WriteByte('\n')
			}
			if len(c.Tags) > 0 {
				fmt.Fprintf(&b, "  [%s]\n", strings.Join(c.Tags, ", "))
			}
			for _, l := range c.Links {
				fmt.Fprintf(&b, "  %s: %s\n", l.Key, l.Value)
			}
		}
	case KindTable:
		writeTitle()
		width := 0
		for _, row := range r.Rows {
			width = max(width, len(row.Key))
		}
		for _, row := range r.Rows {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, row.Key, row.Value)
		}
	case KindMarkdown:
		b.WriteString(r.Markdown)
		if !strings.HasSuffix(r.Markdown, "\n") {
			b.WriteByte('\n')
		}
	case KindError:
		if r.Err != nil {
			b.WriteString(r.Err.Message)
			b.WriteByte('\n')
		}
		writeLines("")
	}
	return b.String()
}

// PlainEntry renders a log entry with its prompt line.
func PlainEntry(prompt string, e LogEntry) string {
	var b strings.Builder
	if e.Command != "" || e.Output.Kind == KindEmpty {
		fmt.Fprintf(&b, "%s %s\n", prompt, e.Command)
	}
	b.WriteString(PlainText(e.Output))
	return b.String()
}
