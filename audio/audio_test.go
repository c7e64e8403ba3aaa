package audio

import "testing"

func TestChimesBeforeStartAreSafe(t *testing.T) {
	e := NewEngine(true)
	// Nothing initialized yet; none of these may touch the speaker
	e.Click()
	e.Success()
	e.Warn()
	e.Error()
	e.Notify()
	e.Stop()
}

func TestMuteSwitch(t *testing.T) {
	e := NewEngine(false)
	if !e.Muted() {
		t.Fatal("disabled engine should start muted")
	}
	e.SetMuted(false)
	if e.Muted() {
		t.Fatal("unmute did not stick")
	}
	e.SetMuted(true)
	if !e.Muted() {
		t.Fatal("mute did not stick")
	}
}

func TestTakeRejectsBadFrequency(t *testing.T) {
	if s := take(-1, 0, 0); s != nil {
		t.Fatal("negative frequency must not build a streamer")
	}
}
