package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings is everything a demo reads at startup. Zero fields in a settings
// file are not special: a file only needs to name the keys it overrides.
type Settings struct {
	Window  Window  `toml:"window"`
	Camera  Camera  `toml:"camera"`
	Frame   Frame   `toml:"frame"`
	Shaders Shaders `toml:"shaders"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	// FBOScale divides the window size to get the offscreen target size; 1 renders at full size.
	FBOScale int `toml:"fbo_scale"`
}

type Camera struct {
	FOVDegrees         float32    `toml:"fov_degrees"`
	Near               float32    `toml:"near"`
	Far                float32    `toml:"far"`
	CursorSensitivityX float32    `toml:"cursor_sensitivity_x"`
	CursorSensitivityY float32    `toml:"cursor_sensitivity_y"`
	MoveStep           float32    `toml:"move_step"`
	PitchLimit         float32    `toml:"pitch_limit"`
	Eye                [3]float32 `toml:"eye"`
}

type Frame struct {
	FPSLimit int `toml:"fps_limit"`
	// UpdateHz and Substeps set the fixed input step: 1/(UpdateHz*Substeps) seconds.
	UpdateHz    int `toml:"update_hz"`
	Substeps    int `toml:"substeps"`
	ReportEvery int `toml:"report_every"`
	// SlowFrameMs logs the top timers when a frame takes longer; 0 disables it.
	SlowFrameMs int `toml:"slow_frame_ms"`
}

type Shaders struct {
	Watch bool `toml:"watch"`
}

// Default returns the settings the demos were tuned with.
func Default() Settings {
	return Settings{
		Window: Window{
			Width:    1024,
			Height:   768,
			Title:    "freelook",
			VSync:    true,
			FBOScale: 4,
		},
		Camera: Camera{
			FOVDegrees:         45,
			Near:               0.1,
			Far:                100,
			CursorSensitivityX: 0.1,
			CursorSensitivityY: 0.1,
			MoveStep:           0.01,
			PitchLimit:         89,
			Eye:                [3]float32{0, 0, 20},
		},
		Frame: Frame{
			FPSLimit:    60,
			UpdateHz:    60,
			Substeps:    10,
			ReportEvery: 30,
			SlowFrameMs: 16,
		},
		Shaders: Shaders{
			Watch: true,
		},
	}
}

// Load reads a TOML settings file on top of Default. An empty path or a
// missing file yields the defaults; unknown keys are an error so typos do
// not silently fall back.
func Load(path string) (Settings, error) {
	return LoadWith(path, Default())
}

// LoadWith is Load with a demo's own defaults as the base.
func LoadWith(path string, base Settings) (Settings, error) {
	s := base
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := Decode(data, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode applies TOML data on top of s and validates the result.
func Decode(data []byte, s *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("decode settings: %s", strict.String())
		}
		return fmt.Errorf("decode settings: %w", err)
	}
	return s.Validate()
}

// Validate reports the first setting that cannot work.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case s.Window.FBOScale < 1:
		return fmt.Errorf("window.fbo_scale %d must be at least 1", s.Window.FBOScale)
	case s.Camera.FOVDegrees <= 0 || s.Camera.FOVDegrees >= 180:
		return fmt.Errorf("camera.fov_degrees %v must be in (0, 180)", s.Camera.FOVDegrees)
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("camera near/far %v/%v must satisfy 0 < near < far", s.Camera.Near, s.Camera.Far)
	case s.Camera.PitchLimit <= 0 || s.Camera.PitchLimit >= 90:
		return fmt.Errorf("camera.pitch_limit %v must be in (0, 90)", s.Camera.PitchLimit)
	case s.Camera.MoveStep < 0:
		return fmt.Errorf("camera.move_step %v must not be negative", s.Camera.MoveStep)
	case s.Frame.FPSLimit < 0:
		return fmt.Errorf("frame.fps_limit %d must not be negative", s.Frame.FPSLimit)
	case s.Frame.UpdateHz <= 0 || s.Frame.Substeps <= 0:
		return fmt.Errorf("frame.update_hz %d and frame.substeps %d must be positive", s.Frame.UpdateHz, s.Frame.Substeps)
	case s.Frame.ReportEvery <= 0:
		return fmt.Errorf("frame.report_every %d must be positive", s.Frame.ReportEvery)
	}
	return nil
}

// Encode renders s as TOML, e.g. to write out a starting settings file.
func (s Settings) Encode() ([]byte, error) {
	return toml.Marshal(s)
}
