package constants

import "time"

// Role cycler timing
const (
	// TypeInterval is the delay between typed characters
	TypeInterval = 90 * time.Millisecond

	// DeleteInterval is the delay between deleted characters, faster than typing
	DeleteInterval = 45 * time.Millisecond

	// HoldFull is the pause after a role is fully typed
	HoldFull = 1400 * time.Millisecond

	// HoldEmpty is the pause after a role is fully deleted, before the next role
	HoldEmpty = 350 * time.Millisecond
)

// Skill bar timing
const (
	// SettleDelay lets the zero-width starting state survive at least one
	// frame before the fill transition begins
	SettleDelay = 120 * time.Millisecond

	// BarTransition is the duration of the 0→target width tween
	BarTransition = 900 * time.Millisecond
)

// Cursor follower
const (
	// SmoothingFactor is the per-frame interpolation fraction toward the
	// live pointer position. Must stay in (0,1); small values lag more
	SmoothingFactor = 0.12
)

// Form submission
const (
	// SubmitDelay simulates the round trip of a message submission
	SubmitDelay = 1500 * time.Millisecond
)

// Blinking
const (
	// CursorBlinkFrames is the full on/off period of the typed-role cursor
	CursorBlinkFrames = 20
)

// Notifications
const (
	// ToastFrames is the auto-dismiss countdown in frames
	ToastFrames = 110

	// MaxToasts caps the visible toast stack
	MaxToasts = 3
)

// Reveal
const (
	// RevealFadeFrames is the fade-in length after a target reveals
	RevealFadeFrames = 18
)
