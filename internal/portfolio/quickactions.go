package portfolio

import (
	"github.com/joeycumines/termfolio/internal/shell"
)

// QuickActions returns the button set of every context.
func QuickActions(catalog *Catalog) shell.QuickActionSets {
	projects := []shell.QuickAction{{Command: "ls projects/", Label: "List Projects"}}
	for _, p := range catalog.Projects {
		projects = append(projects, shell.QuickAction{
			Command: "cat projects/" + p.Name + ".md",
			Label:   p.Label(),
		})
	}

	return shell.QuickActionSets{
		shell.ContextMain: {
			{Command: "whoami", Label: "About Me"},
			{Command: "skills", Label: "Skills"},
			{Command: "projects", Label: "Projects"},
			{Command: "contact", Label: "Contact"},
			{Command: "help", Label: "Help"},
		},
		shell.ContextHelp: {
			{Command: "ls", Label: "List Files"},
			{Command: "cat resume.txt", Label: "View Resume"},
			{Command: "theme dark", Label: "Dark Theme"},
			{Command: "theme synth", Label: "Synth Theme"},
			{Command: "matrix", Label: "Matrix Effect"},
		},
		shell.ContextProjects: projects,
		shell.ContextSkills: {
			{Command: "ls skills/frontend", Label: "Frontend"},
			{Command: "ls skills/backend", Label: "Backend"},
			{Command: "ls skills/devops", Label: "DevOps"},
			{Command: "ls skills/other", Label: "Other Skills"},
		},
		shell.ContextFiles: {
			{Command: "cat resume.txt", Label: "Resume"},
			{Command: "cat contact.sh", Label: "Contact"},
			{Command: "cat skills.json", Label: "Skills"},
			{Command: "./" + SecondaryView, Label: "Room Explorer"},
		},
	}
}

// NewSession builds a shell session over the portfolio command set.
func NewSession(catalog *Catalog, opts ...shell.SessionOption) *shell.Session {
	reg := shell.NewRegistry()
	Register(reg, catalog)
	opts = append([]shell.SessionOption{shell.WithQuickActions(QuickActions(catalog))}, opts...)
	return shell.NewSession(reg, opts...)
}
