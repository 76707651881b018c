package shell

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ContextState selects the quick-action set shown under the input line.
type ContextState int

const (
	ContextMain ContextState = iota
	ContextHelp
	ContextProjects
	ContextSkills
	ContextFiles
)

func (c ContextState) String() string {
	switch c {
	case ContextMain:
		return "main"
	case ContextHelp:
		return "help"
	case ContextProjects:
		return "projects"
	case ContextSkills:
		return "skills"
	case ContextFiles:
		return "files"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// Rule maps a predicate over the last dispatched command to a context.
// Predicates are expr-lang expressions over RuleEnv.
type Rule struct {
	Expr  string
	State ContextState
}

// RuleEnv is the environment rule predicates are evaluated against.
type RuleEnv struct {
	Name  string
	Args  []string
	First string
}

// DefaultRules is the classifier table, evaluated top to bottom.
var DefaultRules = []Rule{
	{Expr: `Name == "help"`, State: ContextHelp},
	{Expr: `Name == "projects" || (Name == "ls" && First startsWith "projects")`, State: ContextProjects},
	{Expr: `Name == "skills"`, State: ContextSkills},
	{Expr: `Name == "ls" && (len(Args) == 0 || First startsWith ".")`, State: ContextFiles},
}

type compiledRule struct {
	program *vm.Program
	state   ContextState
	source  string
}

// Classifier derives the context from the last dispatched command. When no
// rule matches, the current context is kept.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles rules once.
func NewClassifier(rules []Rule) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		program, err := expr.Compile(r.Expr, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile context rule %q: %w", r.Expr, err)
		}
		c.rules = append(c.rules, compiledRule{program: program, state: r.State, source: r.Expr})
	}
	return c, nil
}

// MustClassifier is NewClassifier that panics on a bad rule table.
func MustClassifier(rules []Rule) *Classifier {
	c, err := NewClassifier(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the context following a command. It depends only on the
// command name and arguments, never on the command's output.
func (c *Classifier) Classify(name string, args []string, current ContextState) ContextState {
	env := RuleEnv{Name: name, Args: args}
	if len(args) > 0 {
		env.First = args[0]
	}
	for _, r := range c.rules {
		out, err := expr.Run(r.program, env)
		if err != nil {
			continue
		}
		if matched, ok := out.(bool); ok && matched {
			return r.state
		}
	}
	return current
}
