package shell

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// WelcomeBanner is the text of the entry a fresh session log starts with.
var WelcomeBanner = []string{
	"Welcome to Terminal Portfolio v1.0.0",
	"Type help to see available commands",
}

// WelcomeEntry returns the synthetic entry seeding a new session log.
func WelcomeEntry() LogEntry {
	return LogEntry{Output: Text(ToneHighlight, WelcomeBanner...)}
}

// Outcome is what a submission produced.
type Outcome struct {
	Entry   LogEntry
	Context ContextState
	// Effects are the effects the host still has to apply. Clear has
	// already been applied by the session and is not repeated here.
	Effects []Effect
}

// Session owns one independent instance of every engine component. A
// session is safe for concurrent use; each submission runs to completion
// before the next one starts.
type Session struct {
	mu         sync.Mutex
	id         string
	dispatcher *Dispatcher
	history    *History
	log        *Scrollback
	classifier *Classifier
	actions    QuickActionSets
	context    ContextState
	logger     *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	logger     *slog.Logger
	classifier *Classifier
	actions    QuickActionSets
	seed       []LogEntry
	id         string
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(o *sessionOptions) { o.logger = logger }
}

// WithClassifier replaces the default context rules.
func WithClassifier(c *Classifier) SessionOption {
	return func(o *sessionOptions) { o.classifier = c }
}

// WithQuickActions sets the per-context button sets.
func WithQuickActions(sets QuickActionSets) SessionOption {
	return func(o *sessionOptions) { o.actions = sets }
}

// WithSeed replaces the welcome entry the log starts with. No arguments
// means the log starts empty.
func WithSeed(entries ...LogEntry) SessionOption {
	return func(o *sessionOptions) { o.seed = entries }
}

// WithID fixes the session identifier instead of generating one.
func WithID(id string) SessionOption {
	return func(o *sessionOptions) { o.id = id }
}

// NewSession starts a session over the given registry.
func NewSession(registry *Registry, opts ...SessionOption) *Session {
	o := sessionOptions{seed: []LogEntry{WelcomeEntry()}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.classifier == nil {
		o.classifier = MustClassifier(DefaultRules)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	logger := o.logger.With(slog.String("session", o.id))
	return &Session{
		id:         o.id,
		dispatcher: NewDispatcher(registry, logger),
		history:    NewHistory(),
		log:        NewScrollback(o.seed...),
		classifier: o.classifier,
		actions:    o.actions,
		context:    ContextMain,
		logger:     logger,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit runs one raw line: history push, dispatch, log append, context
// update and engine-side effects, in that order and without interleaving.
// Empty lines are logged but not recorded in history.
func (s *Session) Submit(raw string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Push(raw)

	parsed := Parse(raw)
	result := s.dispatcher.Dispatch(parsed)
	entry := LogEntry{Command: raw, Output: result}
	s.log.Append(raw, result)

	s.context = s.classifier.Classify(parsed.Name, parsed.Args, s.context)

	var hostEffects []Effect
	for _, e := range result.Effects {
		if e.Kind == EffectClear {
			s.log.Clear()
			continue
		}
		hostEffects = append(hostEffects, e)
	}

	s.logger.Debug("dispatched",
		slog.String("command", parsed.Name),
		slog.String("kind", result.Kind.String()),
		slog.String("context", s.context.String()),
	)

	return Outcome{Entry: entry, Context: s.context, Effects: hostEffects}
}

// Navigate browses history and returns the text the input line should show.
func (s *Session) Navigate(dir Direction) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Navigate(dir)
}

// Context returns the active context.
func (s *Session) Context() ContextState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context
}

// ResetContext returns to the main context without dispatching anything.
func (s *Session) ResetContext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ContextMain
}

// QuickActions returns the buttons for the active context.
func (s *Session) QuickActions() []QuickAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.For(s.context)
}

// Entries returns a copy of the session log, oldest first.
func (s *Session) Entries() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Entries()
}

// History returns a copy of the recorded commands, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Clear empties the session log.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Clear()
}

// Registry returns the commands the session dispatches to.
func (s *Session) Registry() *Registry {
	return s.dispatcher.Registry()
}
