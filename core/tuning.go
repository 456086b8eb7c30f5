package core

// Tuning holds every physics constant and feature flag the simulation reads.
// Values are Q8.8 unless the name says frames or pixels. The zero value is
// not usable; start from DefaultTuning and override (the config package
// layers YAML files on top of it).
type Tuning struct {
	Gravity      Fixed `yaml:"gravity"`
	JumpImpulse  Fixed `yaml:"jumpImpulse"`
	MaxSpeed     Fixed `yaml:"maxSpeed"`
	Acceleration Fixed `yaml:"acceleration"`
	// Air friction is intentionally weaker than ground friction so momentum
	// carries through jumps.
	GroundFriction Fixed `yaml:"groundFriction"`
	AirFriction    Fixed `yaml:"airFriction"`

	DashSpeed          Fixed `yaml:"dashSpeed"`
	DashFrames         int   `yaml:"dashFrames"`
	DashCooldownFrames int   `yaml:"dashCooldownFrames"`

	// CoyoteFrames is the grace window for jumping after walking off a
	// ledge. 0 disables the mechanic.
	CoyoteFrames int `yaml:"coyoteFrames"`

	// MaxFallSpeed caps vy after gravity. 0 disables the cap.
	MaxFallSpeed Fixed `yaml:"maxFallSpeed"`

	// JumpBufferFrames remembers a jump press made shortly before landing
	// and fires it on touchdown. 0 disables.
	JumpBufferFrames int `yaml:"jumpBufferFrames"`
	// JumpReleaseDivisor cuts upward velocity when the jump button is
	// released mid-rise, for variable jump height. 0 disables.
	JumpReleaseDivisor int `yaml:"jumpReleaseDivisor"`
	// ApexThreshold and ApexGravityDivisor soften gravity while |vy| is
	// below the threshold, giving the jump a floatier peak. 0 disables.
	ApexThreshold      Fixed `yaml:"apexThreshold"`
	ApexGravityDivisor int   `yaml:"apexGravityDivisor"`

	// Contact assists.
	LedgePopMax    Fixed `yaml:"ledgePopMax"`    // max dash ledge-pop height
	BonkNudgeRange Fixed `yaml:"bonkNudgeRange"` // max corner-correction nudge

	Radius   int `yaml:"radius"`   // half side of the square collision box, px
	TileSize int `yaml:"tileSize"` // px per tile

	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`

	// FlatGround switches collision to the historical single-plane world:
	// no tile scan, x clamped to the screen, ground at FlatGroundY pixels.
	FlatGround  bool `yaml:"flatGround"`
	FlatGroundY int  `yaml:"flatGroundY"`
}

// DefaultTuning returns the shipped feel. The optional jump-feel mechanics
// (buffer, variable height, apex relief) default off.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        One / 2,
		JumpImpulse:    5 * One,
		MaxSpeed:       3 * One,
		Acceleration:   One,
		GroundFriction: One / 6,
		AirFriction:    One / 8,

		DashSpeed:          5 * One,
		DashFrames:         8,
		DashCooldownFrames: 30,

		CoyoteFrames: 6,
		MaxFallSpeed: 6 * One,

		LedgePopMax:    6 * One,
		BonkNudgeRange: 6 * One,

		Radius:   8,
		TileSize: 8,

		ScreenWidth:  240,
		ScreenHeight: 160,

		FlatGroundY: 130,
	}
}
