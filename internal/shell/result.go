package shell

import (
	"fmt"
)

// Kind tags the variant held by a Result.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindList
	KindGroups
	KindCards
	KindTable
	KindMarkdown
	KindWidget
	KindError
)

var kindNames = [...]string{
	KindEmpty:    "empty",
	KindText:     "text",
	KindList:     "list",
	KindGroups:   "groups",
	KindCards:    "cards",
	KindTable:    "table",
	KindMarkdown: "markdown",
	KindWidget:   "widget",
	KindError:    "error",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Tone is a presentation hint for a line of output. Hosts map tones onto
// their own palette; the engine never looks at them.
type Tone int

const (
	ToneNormal Tone = iota
	ToneHighlight
	ToneCommand
	ToneSuccess
	ToneWarning
	ToneDanger
	ToneMuted
	ToneDirectory
)

// Line is a single line of text output.
type Line struct {
	Text string
	Tone Tone
}

// Group is a titled list of items, e.g. skills of one category or one
// section of a widget.
type Group struct {
	Title string
	Items []Line
}

// Card describes one entry of a card listing (one project).
type Card struct {
	Title       string
	Description string
	Tags        []string
	Links       []Row
}

// Row is a key/value pair of a table.
type Row struct {
	Key   string
	Value string
}

// Result is the renderable output of a command. The engine stores and hands
// results to hosts without inspecting them; only Kind, Err and Effects carry
// meaning outside of rendering.
type Result struct {
	Kind     Kind
	Title    string
	Lines    []Line
	Groups   []Group
	Cards    []Card
	Rows     []Row
	Markdown string
	// Widget names the embedded component for KindWidget results
	// (e.g. "contact", "matrix", "interactive-resume").
	Widget  string
	Err     *Error
	Effects []Effect
}

// Empty returns a result that renders nothing.
func Empty() Result {
	return Result{Kind: KindEmpty}
}

// Text returns a result made of lines sharing one tone.
func Text(tone Tone, lines ...string) Result {
	r := Result{Kind: KindText, Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		r.Lines = append(r.Lines, Line{Text: l, Tone: tone})
	}
	return r
}

// Lines returns a text result from pre-toned lines.
func Lines(lines ...Line) Result {
	return Result{Kind: KindText, Lines: lines}
}

// List returns a titled list.
func List(title string, items ...Line) Result {
	return Result{Kind: KindList, Title: title, Lines: items}
}

// Groups returns a titled set of groups.
func Groups(title string, groups ...Group) Result {
	return Result{Kind: KindGroups, Title: title, Groups: groups}
}

// Cards returns a card listing.
func Cards(title string, cards ...Card) Result {
	return Result{Kind: KindCards, Title: title, Cards: cards}
}

// Table returns a key/value table.
func Table(title string, rows ...Row) Result {
	return Result{Kind: KindTable, Title: title, Rows: rows}
}

// Markdown returns a document the host may render with a markdown renderer.
func Markdown(title, source string) Result {
	return Result{Kind: KindMarkdown, Title: title, Markdown: source}
}

// Widget returns a reference to an embedded component. Title, Lines and
// Groups carry the data the component displays.
func Widget(name, title string, groups ...Group) Result {
	return Result{Kind: KindWidget, Widget: name, Title: title, Groups: groups}
}

// Fail returns an error result.
func Fail(kind ErrorKind, subject, format string, args ...any) Result {
	return Result{Kind: KindError, Err: &Error{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}}
}

// WithLines returns a copy of r with extra detail lines appended.
func (r Result) WithLines(lines ...Line) Result {
	r.Lines = append(append([]Line(nil), r.Lines...), lines...)
	return r
}

// WithEffect returns a copy of r that also requests the given effect.
func (r Result) WithEffect(e Effect) Result {
	r.Effects = append(append([]Effect(nil), r.Effects...), e)
	return r
}

// IsError reports whether r is an error result.
func (r Result) IsError() bool {
	return r.Kind == KindError && r.Err != nil
}

// ErrorKind reports the error kind, or ErrNone for non-error results.
func (r Result) ErrorKind() ErrorKind {
	if r.Err == nil {
		return ErrNone
	}
	return r.Err.Kind
}

// HasEffect reports whether r requests an effect of the given kind.
func (r Result) HasEffect(kind EffectKind) bool {
	for _, e := range r.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
