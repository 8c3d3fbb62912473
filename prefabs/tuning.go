package prefabs

import (
	"errors"
	"fmt"
)

const TuningFile = "tuning.yaml"

type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity float64 `yaml:"gravity"`
	TPS     int     `yaml:"tps"`
}

type PlayerSpec struct {
	Spawn     Vec2    `yaml:"spawn"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Bounce    float64 `yaml:"bounce"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

type CollectibleSpec struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BounceMin float64 `yaml:"bounce_min"`
	BounceMax float64 `yaml:"bounce_max"`
	Score     int     `yaml:"score"`
}

type HazardSpec struct {
	Radius       float64 `yaml:"radius"`
	SpawnY       float64 `yaml:"spawn_y"`
	SplitX       int     `yaml:"split_x"`
	MinX         int     `yaml:"min_x"`
	MaxX         int     `yaml:"max_x"`
	VelocityXMin int     `yaml:"velocity_x_min"`
	VelocityXMax int     `yaml:"velocity_x_max"`
	VelocityY    float64 `yaml:"velocity_y"`
	Bounce       float64 `yaml:"bounce"`
}

type AnimationSpec struct {
	FirstFrame int     `yaml:"first_frame"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type OverlaySpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Align string  `yaml:"align"`
}

type PaletteSpec struct {
	SkyTop    YAMLColor `yaml:"sky_top"`
	SkyBottom YAMLColor `yaml:"sky_bottom"`
	Platform  YAMLColor `yaml:"platform"`
	Star      YAMLColor `yaml:"star"`
	Bomb      YAMLColor `yaml:"bomb"`
	Player    YAMLColor `yaml:"player"`
	Tint      YAMLColor `yaml:"tint"`
	Text      YAMLColor `yaml:"text"`
}

// Tuning is every number the game is built from. Speeds, scoring and hazard
// spawning are read live; layout is read once when the scene is built.
type Tuning struct {
	Screen       ScreenSpec               `yaml:"screen"`
	Physics      PhysicsSpec              `yaml:"physics"`
	Player       PlayerSpec               `yaml:"player"`
	Platforms    []PlatformSpec           `yaml:"platforms"`
	Collectibles CollectibleSpec          `yaml:"collectibles"`
	Hazards      HazardSpec               `yaml:"hazards"`
	Animations   map[string]AnimationSpec `yaml:"animations"`
	Overlays     map[string]OverlaySpec   `yaml:"overlays"`
	Palette      PaletteSpec              `yaml:"palette"`
}

// DefaultTuning mirrors the embedded tuning.yaml so partial overrides have
// something to land on.
func DefaultTuning() Tuning {
	return Tuning{
		Screen:  ScreenSpec{Width: 800, Height: 600},
		Physics: PhysicsSpec{Gravity: 300, TPS: 60},
		Player: PlayerSpec{
			Spawn:     Vec2{X: 100, Y: 450},
			Width:     32,
			Height:    48,
			Bounce:    0.2,
			MoveSpeed: 160,
			JumpSpeed: 330,
		},
		Platforms: []PlatformSpec{
			{X: 400, Y: 568, Width: 400, Height: 32, Scale: 2},
			{X: 600, Y: 400, Width: 400, Height: 32, Scale: 1},
			{X: 50, Y: 250, Width: 400, Height: 32, Scale: 1},
			{X: 750, Y: 220, Width: 400, Height: 32, Scale: 1},
		},
		Collectibles: CollectibleSpec{
			Count:     12,
			StartX:    12,
			StepX:     70,
			Y:         0,
			Width:     24,
			Height:    22,
			BounceMin: 0.4,
			BounceMax: 0.8,
			Score:     10,
		},
		Hazards: HazardSpec{
			Radius:       7,
			SpawnY:       16,
			SplitX:       400,
			MinX:         0,
			MaxX:         800,
			VelocityXMin: -200,
			VelocityXMax: 200,
			VelocityY:    20,
			Bounce:       1,
		},
		Animations: map[string]AnimationSpec{
			"left":  {FirstFrame: 0, FrameCount: 4, FPS: 10, Loop: true},
			"turn":  {FirstFrame: 4, FrameCount: 1, FPS: 20, Loop: false},
			"right": {FirstFrame: 5, FrameCount: 4, FPS: 10, Loop: true},
		},
		Overlays: map[string]OverlaySpec{
			"score": {X: 16, Y: 16, Align: "left"},
			"level": {X: 600, Y: 16, Align: "left"},
		},
		Palette: PaletteSpec{
			SkyTop:    RGB(0x4f, 0xa4, 0xe0),
			SkyBottom: RGB(0xc9, 0xe8, 0xff),
			Platform:  RGB(0x3c, 0x8d, 0x2f),
			Star:      RGB(0xff, 0xd7, 0x00),
			Bomb:      RGB(0x22, 0x22, 0x22),
			Player:    RGB(0x8a, 0x4b, 0xc9),
			Tint:      RGB(0xff, 0x00, 0x00),
			Text:      RGB(0x00, 0x00, 0x00),
		},
	}
}

// LoadTuning reads path when given, otherwise the tuning prefab, on top of
// DefaultTuning, and validates the result.
func LoadTuning(path string) (*Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if path != "" {
		t, err = LoadSpecFile(path, DefaultTuning())
	} else {
		t, err = LoadSpec(TuningFile, DefaultTuning())
	}
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func (t *Tuning) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
	}

	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		fail("screen must be positive, got %dx%d", t.Screen.Width, t.Screen.Height)
	}
	if t.Physics.TPS <= 0 {
		fail("physics.tps must be positive, got %d", t.Physics.TPS)
	}
	if len(t.Platforms) != 4 {
		fail("want 4 platforms, got %d", len(t.Platforms))
	}
	for i, p := range t.Platforms {
		if p.Width <= 0 || p.Height <= 0 || p.Scale <= 0 {
			fail("platform %d has non-positive size or scale", i)
		}
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		fail("player size must be positive")
	}
	if t.Player.MoveSpeed < 0 || t.Player.JumpSpeed < 0 {
		fail("player speeds must not be negative")
	}
	c := t.Collectibles
	if c.Count < 1 {
		fail("collectibles.count must be at least 1, got %d", c.Count)
	}
	if c.BounceMin < 0 || c.BounceMin > c.BounceMax {
		fail("collectible bounce range [%v, %v] is invalid", c.BounceMin, c.BounceMax)
	}
	if c.Score < 0 {
		fail("collectibles.score must not be negative")
	}
	h := t.Hazards
	if h.Radius <= 0 {
		fail("hazards.radius must be positive")
	}
	if !(h.MinX <= h.SplitX && h.SplitX <= h.MaxX) {
		fail("hazard spawn range %d..%d..%d is not ordered", h.MinX, h.SplitX, h.MaxX)
	}
	if h.VelocityXMin > h.VelocityXMax {
		fail("hazard velocity range [%d, %d] is invalid", h.VelocityXMin, h.VelocityXMax)
	}
	for _, name := range []string{"left", "right", "turn"} {
		a, ok := t.Animations[name]
		if !ok {
			fail("missing animation %q", name)
			continue
		}
		if a.FrameCount < 1 || a.FPS <= 0 {
			fail("animation %q needs frames and a positive fps", name)
		}
	}
	for _, name := range []string{"score", "level"} {
		o, ok := t.Overlays[name]
		if !ok {
			fail("missing overlay %q", name)
			continue
		}
		switch o.Align {
		case "", "left", "right":
		default:
			fail("overlay %q has unknown align %q", name, o.Align)
		}
	}
	return errors.Join(errs...)
}
