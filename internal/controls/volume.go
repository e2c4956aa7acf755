package controls

import "math"

// DefaultLevel is the volume level every mount starts with.
const DefaultLevel = 100

// VolumeMode is the audible state of the volume control.
type VolumeMode int

const (
	// VolumeUnmuted is audible output at a non-zero level.
	VolumeUnmuted VolumeMode = iota
	// VolumeMuted is silent output with a non-zero level kept for restore.
	VolumeMuted
	// VolumeZero is silent output because the level itself is zero.
	VolumeZero
)

// String returns the mode name.
func (m VolumeMode) String() string {
	switch m {
	case VolumeUnmuted:
		return "unmuted"
	case VolumeMuted:
		return "muted"
	case VolumeZero:
		return "zero"
	default:
		return "unknown"
	}
}

// VolumeState is the level in [0,100] and the mute flag. Muting never
// changes Level.
type VolumeState struct {
	Level float64
	Muted bool
}

// Effective returns the output volume in [0,1].
func (v VolumeState) Effective() float64 {
	if v.Muted {
		return 0
	}
	return v.Level / 100
}

// Mode classifies the state.
func (v VolumeState) Mode() VolumeMode {
	switch {
	case v.Level == 0:
		return VolumeZero
	case v.Muted:
		return VolumeMuted
	default:
		return VolumeUnmuted
	}
}

// volume owns the volume state and the popover flag, and pushes the
// effective volume to its sink after every change.
type volume struct {
	state   VolumeState
	popover bool
	sink    func(float64)
}

func newVolume() volume {
	return volume{state: VolumeState{Level: DefaultLevel}}
}

// setLevel sets the level from a slider percentage. Zero mutes, anything
// else unmutes.
func (v *volume) setLevel(percentage float64) {
	if math.IsNaN(percentage) {
		return
	}
	percentage = math.Max(0, math.Min(100, percentage))
	v.state.Level = percentage
	v.state.Muted = percentage == 0
	v.apply()
}

func (v *volume) toggleMute() {
	v.state.Muted = !v.state.Muted
	v.apply()
}

func (v *volume) togglePopover() {
	v.popover = !v.popover
}

func (v *volume) apply() {
	if v.sink != nil {
		v.sink(v.state.Effective())
	}
}
