// Package portfolio holds the closed command set of the portfolio shell and
// the static data tables those commands read.
package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var builtinCatalog []byte

// Categories are the skill categories, in display order.
var Categories = []string{"frontend", "backend", "devops", "other"}

// Profile is the owner of the portfolio.
type Profile struct {
	Name    string   `yaml:"name"`
	Tagline string   `yaml:"tagline"`
	Bio     []string `yaml:"bio"`
	Avatar  string   `yaml:"avatar"`
}

// Contact is one way of reaching the owner.
type Contact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Project is one portfolio entry. Name is the slug used in file paths.
type Project struct {
	Name         string   `yaml:"name"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Link         string   `yaml:"link,omitempty"`
	GitHub       string   `yaml:"github,omitempty"`
	Image        string   `yaml:"image,omitempty"`
}

// Label returns the display title, falling back to the slug.
func (p Project) Label() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// Skill is one entry of the tech stack.
type Skill struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// ResumeSkill is a labelled line of the resume's skill section.
type ResumeSkill struct {
	Label  string `yaml:"label"`
	Values string `yaml:"values"`
}

// ResumeItem is a position or a degree.
type ResumeItem struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Period       string `yaml:"period"`
	Description  string `yaml:"description,omitempty"`
}

// Resume is the structured resume behind resume.txt and the visual resume.
type Resume struct {
	Skills     []ResumeSkill `yaml:"skills"`
	Experience []ResumeItem  `yaml:"experience"`
	Education  []ResumeItem  `yaml:"education"`
}

// Catalog is the read-only content every command is built from.
type Catalog struct {
	Profile  Profile   `yaml:"profile"`
	Contacts []Contact `yaml:"contacts"`
	Projects []Project `yaml:"projects"`
	Skills   []Skill   `yaml:"skills"`
	Resume   Resume    `yaml:"resume"`
}

// DefaultCatalog returns the built-in content.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("portfolio: built-in catalog: %v", err))
	}
	return c
}

// LoadCatalog reads content from path, or returns the built-in content when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates YAML content.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants commands rely on.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("project %d: missing name", i))
		case strings.ContainsAny(p.Name, "/ \t"):
			errs = append(errs, fmt.Errorf("project %q: name must be a single path segment", p.Name))
		case seen[strings.ToLower(p.Name)]:
			errs = append(errs, fmt.Errorf("project %q: duplicate name", p.Name))
		}
		seen[strings.ToLower(p.Name)] = true
	}
	for _, s := range c.Skills {
		if !IsCategory(s.Category) {
			errs = append(errs, fmt.Errorf("skill %q: unknown category %q", s.Name, s.Category))
		}
	}
	return errors.Join(errs...)
}

// IsCategory reports whether name is a skill category.
func IsCategory(name string) bool {
	return slices.Contains(Categories, name)
}

// Project finds a project by slug, ignoring case.
func (c *Catalog) Project(name string) (Project, bool) {
	for _, p := range c.Projects {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Project{}, false
}

// SkillsIn returns the skills of one category in table order.
func (c *Catalog) SkillsIn(category string) []Skill {
	var out []Skill
	for _, s := range c.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
