package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ROCKETVIZ_AUDIO_ENABLED.
	EnvPrefix = "ROCKETVIZ"
	// EnvConfigDir names the directory holding rocketviz.toml when no path is given.
	EnvConfigDir = "ROCKETVIZ_CONFIG"

	fileName = "rocketviz"
)

// ErrInvalid is returned when a loaded configuration cannot drive the visualizer.
var ErrInvalid = errors.New("invalid configuration")

// Load reads rocketviz.toml from dir (or $ROCKETVIZ_CONFIG, or the working
// directory), applies ROCKETVIZ_* overrides and validates the result. A missing
// file is not an error.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	if dir == "" {
		dir = "."
	}
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s/.env: %w", dir, err)
	}

	v := viper.New()
	setDefaults(v, Defaults())
	v.SetConfigName(fileName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading %s/%s.toml: %w", dir, fileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)

	v.SetDefault("physics.exhaust_velocity", d.Physics.ExhaustVelocity)
	v.SetDefault("physics.dry_mass", d.Physics.DryMass)
	v.SetDefault("physics.delta_v", d.Physics.DeltaV)

	v.SetDefault("sliders.dry_mass.min", d.Sliders.DryMass.Min)
	v.SetDefault("sliders.dry_mass.max", d.Sliders.DryMass.Max)
	v.SetDefault("sliders.dry_mass.step", d.Sliders.DryMass.Step)
	v.SetDefault("sliders.delta_v.min", d.Sliders.DeltaV.Min)
	v.SetDefault("sliders.delta_v.max", d.Sliders.DeltaV.Max)
	v.SetDefault("sliders.delta_v.step", d.Sliders.DeltaV.Step)

	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("camera.near", d.Camera.Near)
	v.SetDefault("camera.far", d.Camera.Far)
	v.SetDefault("camera.z", d.Camera.Z)

	v.SetDefault("labels.offset_x", d.Labels.OffsetX)
	v.SetDefault("labels.offset_y", d.Labels.OffsetY)

	v.SetDefault("animation.easing", d.Animation.Easing)
	v.SetDefault("animation.factor", d.Animation.Factor)
	v.SetDefault("animation.spring_frequency", d.Animation.SpringFrequency)
	v.SetDefault("animation.spring_damping", d.Animation.SpringDamping)
	v.SetDefault("animation.tps", d.Animation.TPS)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("log.level", d.Log.Level)
}

// Validate reports the first setting that would break the model or the scene.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if !(c.Physics.ExhaustVelocity > 0) || math.IsInf(c.Physics.ExhaustVelocity, 0) {
		return fmt.Errorf("%w: exhaust velocity must be positive, got %v", ErrInvalid, c.Physics.ExhaustVelocity)
	}
	if err := c.Sliders.DryMass.validate("dry_mass", c.Physics.DryMass); err != nil {
		return err
	}
	if err := c.Sliders.DeltaV.validate("delta_v", c.Physics.DeltaV); err != nil {
		return err
	}
	if c.Sliders.DryMass.Min <= 0 {
		return fmt.Errorf("%w: dry mass minimum must be positive", ErrInvalid)
	}
	if c.Sliders.DeltaV.Min < 0 {
		return fmt.Errorf("%w: delta-v minimum must not be negative", ErrInvalid)
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < 180) {
		return fmt.Errorf("%w: camera fov %v outside (0,180)", ErrInvalid, c.Camera.FOV)
	}
	if !(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near) {
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	switch c.Animation.Easing {
	case "lerp", "spring":
	default:
		return fmt.Errorf("%w: unknown easing %q", ErrInvalid, c.Animation.Easing)
	}
	if !(c.Animation.Factor > 0 && c.Animation.Factor <= 1) {
		return fmt.Errorf("%w: ease factor %v outside (0,1]", ErrInvalid, c.Animation.Factor)
	}
	if c.Animation.Easing == "spring" && !(c.Animation.SpringFrequency > 0 && c.Animation.SpringDamping > 0) {
		return fmt.Errorf("%w: spring frequency %v and damping %v must be positive", ErrInvalid, c.Animation.SpringFrequency, c.Animation.SpringDamping)
	}
	if c.Animation.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error", "none":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample rate must be positive", ErrInvalid)
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

func (r Range) validate(name string, initial float64) error {
	if !(r.Step > 0) || !(r.Max > r.Min) {
		return fmt.Errorf("%w: slider %s range [%v,%v] step %v", ErrInvalid, name, r.Min, r.Max, r.Step)
	}
	if initial < r.Min || initial > r.Max {
		return fmt.Errorf("%w: initial %s %v outside [%v,%v]", ErrInvalid, name, initial, r.Min, r.Max)
	}
	return nil
}
