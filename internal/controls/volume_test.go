package controls

import "testing"

func TestVolumeStateMode(t *testing.T) {
	tests := []struct {
		state VolumeState
		want  VolumeMode
	}{
		{VolumeState{Level: 60}, VolumeUnmuted},
		{VolumeState{Level: 60, Muted: true}, VolumeMuted},
		{VolumeState{Level: 0, Muted: true}, VolumeZero},
		{VolumeState{Level: 0}, VolumeZero},
	}

	for _, tt := range tests {
		if got := tt.state.Mode(); got != tt.want {
			t.Errorf("%+v.Mode() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestVolumeStateEffective(t *testing.T) {
	if got := (VolumeState{Level: 60}).Effective(); got != 0.6 {
		t.Errorf("Effective() = %v, want 0.6", got)
	}
	if got := (VolumeState{Level: 60, Muted: true}).Effective(); got != 0 {
		t.Errorf("Effective() muted = %v, want 0", got)
	}
}

func TestSetLevelCouplesMute(t *testing.T) {
	var applied []float64
	v := newVolume()
	v.sink = func(x float64) { applied = append(applied, x) }

	v.setLevel(0)
	if !v.state.Muted {
		t.Error("Muted = false after level 0, want true")
	}

	v.setLevel(35)
	if v.state.Muted {
		t.Error("Muted = true after level 35, want false")
	}

	v.setLevel(140)
	if v.state.Level != 100 {
		t.Errorf("Level = %v, want clamped 100", v.state.Level)
	}

	want := []float64{0, 0.35, 1}
	if len(applied) != len(want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Errorf("applied[%d] = %v, want %v", i, applied[i], want[i])
		}
	}
}

func TestToggleMuteRoundTrip(t *testing.T) {
	starts := []VolumeState{
		{Level: 100},
		{Level: 60},
		{Level: 60, Muted: true},
		{Level: 0, Muted: true},
		{Level: 0},
	}

	for _, start := range starts {
		v := volume{state: start}
		v.toggleMute()
		if v.state.Level != start.Level {
			t.Errorf("toggle from %+v changed level to %v", start, v.state.Level)
		}
		v.toggleMute()
		if v.state != start {
			t.Errorf("double toggle from %+v = %+v", start, v.state)
		}
	}
}

func TestVolumeModeString(t *testing.T) {
	if VolumeMuted.String() != "muted" || VolumeZero.String() != "zero" || VolumeUnmuted.String() != "unmuted" {
		t.Error("unexpected VolumeMode names")
	}
}
