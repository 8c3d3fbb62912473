package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		t.Fatalf("read embedded tuning: %v", err)
	}
	got, err := decodeSpec(TuningFile, data, Tuning{})
	if err != nil {
		t.Fatalf("decode embedded tuning: %v", err)
	}
	if want := DefaultTuning(); !reflect.DeepEqual(got, want) {
		t.Fatalf("embedded tuning drifted from DefaultTuning:\n got  %+v\n want %+v", got, want)
	}
}

func TestLoadTuning(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, tu *Tuning)
		wantErr error
	}{
		{
			name: "partial_override_keeps_defaults",
			yaml: "player:\n  move_speed: 200\n",
			check: func(t *testing.T, tu *Tuning) {
				if tu.Player.MoveSpeed != 200 {
					t.Fatalf("move speed = %v, want 200", tu.Player.MoveSpeed)
				}
				if tu.Player.JumpSpeed != 330 || tu.Collectibles.Count != 12 {
					t.Fatalf("defaults lost: %+v", tu.Player)
				}
			},
		},
		{
			name: "two_star_scenario",
			yaml: "collectibles:\n  count: 2\n",
			check: func(t *testing.T, tu *Tuning) {
				if tu.Collectibles.Count != 2 || tu.Collectibles.StepX != 70 {
					t.Fatalf("collectibles = %+v", tu.Collectibles)
				}
			},
		},
		{
			name: "palette_color",
			yaml: "palette:\n  tint: \"#00ff0080\"\n",
			check: func(t *testing.T, tu *Tuning) {
				want := color.NRGBA{R: 0, G: 0xff, B: 0, A: 0x80}
				if tu.Palette.Tint.Color != want {
					t.Fatalf("tint = %v, want %v", tu.Palette.Tint.Color, want)
				}
			},
		},
		{
			name:    "no_collectibles",
			yaml:    "collectibles:\n  count: 0\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "three_platforms",
			yaml:    "platforms:\n  - { x: 1, y: 1, width: 1, height: 1, scale: 1 }\n",
			wantErr: ErrInvalidTuning,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			tu, err := LoadTuning(path)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTuning() failed: %v", err)
			}
			c.check(t, tu)
		})
	}
}

func TestLoadTuningErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("palette:\n  sky_top: \"#12\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if _, err := LoadTuning(bad); err == nil {
		t.Fatalf("expected an error for a malformed color")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(tu *Tuning)
		valid  bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"zero_tps", func(tu *Tuning) { tu.Physics.TPS = 0 }, false},
		{"negative_speed", func(tu *Tuning) { tu.Player.MoveSpeed = -1 }, false},
		{"inverted_bounce", func(tu *Tuning) { tu.Collectibles.BounceMin = 0.9 }, false},
		{"split_outside_range", func(tu *Tuning) { tu.Hazards.SplitX = 900 }, false},
		{"inverted_velocity", func(tu *Tuning) { tu.Hazards.VelocityXMin = 300 }, false},
		{"missing_turn", func(tu *Tuning) { delete(tu.Animations, "turn") }, false},
		{"missing_overlay", func(tu *Tuning) { delete(tu.Overlays, "level") }, false},
		{"bad_align", func(tu *Tuning) { tu.Overlays["score"] = OverlaySpec{X: 1, Y: 1, Align: "middle"} }, false},
		{"right_align", func(tu *Tuning) { tu.Overlays["level"] = OverlaySpec{X: 784, Y: 16, Align: "right"} }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tu := DefaultTuning()
			c.mutate(&tu)
			err := tu.Validate()
			if c.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.valid && !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	var c YAMLColor
	r, g, b, a := c.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Fatalf("unset color = %d %d %d %d, want opaque black", r, g, b, a)
	}
}
