package portfolio

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/joeycumines/termfolio/internal/shell"
)

// The virtual home directory. Only ls, cat, find and file look at it.
var homeListing = []shell.Line{
	{Text: "projects/", Tone: shell.ToneDirectory},
	{Text: ".hidden/", Tone: shell.ToneMuted},
	{Text: "resume.txt", Tone: shell.ToneSuccess},
	{Text: "contact.sh", Tone: shell.ToneSuccess},
	{Text: "skills.json", Tone: shell.ToneWarning},
	{Text: "secrets.enc", Tone: shell.ToneDanger},
}

var findListing = []string{"./projects", "./resume.txt", "./contact.sh", "./skills.json", "./.hidden"}

func (c *commands) ls(args []string) shell.Result {
	if len(args) == 0 {
		return shell.List("Directory listing:", homeListing...)
	}
	path := strings.ToLower(args[0])
	switch {
	case path == "projects/" || path == "projects":
		return c.projectCards()
	case path == ".hidden/" || path == ".hidden":
		return shell.List("Hidden directory listing:", shell.Line{Text: "room-explorer.exe", Tone: shell.ToneDanger})
	case strings.HasPrefix(path, "skills/"):
		category := strings.TrimSuffix(strings.TrimPrefix(path, "skills/"), "/")
		if !IsCategory(category) {
			return shell.Fail(shell.ErrNotFound, args[0], "Error: Directory %s not found.", args[0])
		}
		items := make([]shell.Line, 0)
		for _, s := range c.catalog.SkillsIn(category) {
			items = append(items, shell.Line{Text: s.Name, Tone: shell.ToneSuccess})
		}
		return shell.List(titleCase(category)+" Skills:", items...)
	}
	return shell.List("Directory listing:", homeListing...)
}

func (c *commands) cat(args []string) shell.Result {
	if len(args) == 0 {
		return shell.Fail(shell.ErrUsage, "cat", "Usage: cat [file]")
	}
	path := strings.ToLower(args[0])
	switch {
	case path == "resume.txt":
		return shell.Markdown("RESUME.TXT", ResumeMarkdown(c.catalog.Resume))
	case strings.HasPrefix(path, "projects/"):
		name := args[0][len("projects/"):]
		if strings.HasSuffix(strings.ToLower(name), ".md") {
			name = name[:len(name)-len(".md")]
		}
		p, ok := c.catalog.Project(name)
		if !ok {
			return shell.Fail(shell.ErrNotFound, name, "Error: Project %s not found.", name)
		}
		return shell.Markdown(p.Name, ProjectMarkdown(p))
	case path == "contact.sh":
		return c.contact(nil)
	case path == "skills.json":
		return c.skillsJSON()
	}
	return shell.Fail(shell.ErrNotFound, args[0], "Error: File %s not found.", args[0])
}

func (c *commands) skillsJSON() shell.Result {
	skills := c.catalog.Skills
	if skills == nil {
		skills = []Skill{}
	}
	data, err := json.MarshalIndent(struct {
		Skills []Skill `json:"skills"`
	}{skills}, "", "  ")
	if err != nil {
		return shell.Fail(shell.ErrNotFound, "skills.json", "Error: File skills.json not found.")
	}
	return shell.Text(shell.ToneSuccess, strings.Split(string(data), "\n")...)
}

func (c *commands) grep(args []string) shell.Result {
	if len(args) < 2 {
		return shell.Fail(shell.ErrUsage, "grep", "Usage: grep [pattern] [file]")
	}
	pattern, file := args[0], args[1]
	if file == "*.txt" || file == "*" {
		switch strings.ToLower(pattern) {
		case "hidden", "secret":
			return shell.Text(shell.ToneSuccess,
				"resume.txt: Check out the .hidden directory for more content",
				"system.log: Created .hidden directory for developer tools",
			)
		}
	}
	return shell.Text(shell.ToneWarning, fmt.Sprintf("No matches found for pattern '%s' in %s", pattern, file))
}

func (c *commands) find(args []string) shell.Result {
	if len(args) == 0 {
		return shell.Fail(shell.ErrUsage, "find", "Usage: find [path] -name [pattern]")
	}
	if i := slices.Index(args, "-name"); i != -1 && i+1 < len(args) {
		switch args[i+1] {
		case "*.exe", "*explorer*":
			return shell.Text(shell.ToneSuccess, "./"+SecondaryView)
		}
	}
	switch args[0] {
	case ".", "/", "*":
		return shell.Text(shell.ToneSuccess, findListing...)
	}
	return shell.Text(shell.ToneWarning, "No matching files found")
}

func (c *commands) file(args []string) shell.Result {
	if len(args) == 0 {
		return shell.Fail(shell.ErrUsage, "file", "Usage: file [filename]")
	}
	name := args[0]
	switch {
	case strings.EqualFold(name, SecondaryView):
		return shell.Text(shell.ToneSuccess, SecondaryView+": executable, x86-64, 3D room exploration utility")
	case strings.HasSuffix(strings.ToLower(name), ".exe"):
		return shell.Fail(shell.ErrNotFound, name, "%s: file not found", name)
	case strings.EqualFold(name, ".hidden"):
		return shell.Text(shell.ToneSuccess, ".hidden: directory, contains developer tools and utilities")
	}
	return shell.Text(shell.ToneWarning, fmt.Sprintf("file: cannot determine file type of '%s'", name))
}

// ResumeMarkdown renders the resume as a markdown document.
func ResumeMarkdown(r Resume) string {
	var b strings.Builder
	b.WriteString("# RESUME.TXT\n")
	if len(r.Skills) > 0 {
		b.WriteString("\n## SKILLS\n\n")
		for _, s := range r.Skills {
			fmt.Fprintf(&b, "- **%s:** %s\n", s.Label, s.Values)
		}
	}
	writeItems := func(title string, items []ResumeItem) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n## %s\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "\n**%s**", resumeHeading(item))
			if item.Period != "" {
				fmt.Fprintf(&b, "  \n%s", item.Period)
			}
			if item.Description != "" {
				fmt.Fprintf(&b, "  \n%s", item.Description)
			}
			b.WriteByte('\n')
		}
	}
	writeItems("EXPERIENCE", r.Experience)
	writeItems("EDUCATION", r.Education)
	return b.String()
}

// ProjectMarkdown renders one project as a markdown document.
func ProjectMarkdown(p Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", p.Name)
	if p.Image != "" {
		fmt.Fprintf(&b, "\n![%s](%s)\n", p.Name, p.Image)
	}
	fmt.Fprintf(&b, "\n## DESCRIPTION\n\n%s\n", p.Description)
	if len(p.Technologies) > 0 {
		b.WriteString("\n## TECHNOLOGIES\n\n")
		for _, t := range p.Technologies {
			fmt.Fprintf(&b, "`%s` ", t)
		}
		b.WriteByte('\n')
	}
	if p.GitHub != "" || p.Link != "" {
		b.WriteByte('\n')
		if p.GitHub != "" {
			fmt.Fprintf(&b, "- [GitHub Repository](%s)\n", p.GitHub)
		}
		if p.Link != "" {
			fmt.Fprintf(&b, "- [Live Demo](%s)\n", p.Link)
		}
	}
	return b.String()
}
