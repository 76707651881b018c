package shell

// EffectKind names a request a command makes of its host. Effects replace
// shared global flags: they travel with the result that caused them.
type EffectKind int

const (
	// EffectClear empties the session log. The session applies it itself.
	EffectClear EffectKind = iota + 1
	// EffectLaunchSecondaryView asks the host to open the room explorer.
	EffectLaunchSecondaryView
	// EffectReboot asks the host to start over with a fresh session.
	EffectReboot
	// EffectSetTheme asks the host to switch (and persist) the theme in Value.
	EffectSetTheme
)

func (k EffectKind) String() string {
	switch k {
	case EffectClear:
		return "clear"
	case EffectLaunchSecondaryView:
		return "launch-secondary-view"
	case EffectReboot:
		return "reboot"
	case EffectSetTheme:
		return "set-theme"
	default:
		return "unknown"
	}
}

// Effect is one host-side request.
type Effect struct {
	Kind  EffectKind
	Value string
}

// ClearRequested is the effect of the clear command.
func ClearRequested() Effect { return Effect{Kind: EffectClear} }

// LaunchSecondaryView is the effect of running the room explorer.
func LaunchSecondaryView() Effect { return Effect{Kind: EffectLaunchSecondaryView} }

// RebootRequested is the effect of the reboot command.
func RebootRequested() Effect { return Effect{Kind: EffectReboot} }

// SetTheme is the effect of a successful theme switch.
func SetTheme(name string) Effect { return Effect{Kind: EffectSetTheme, Value: name} }
