package config

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Rocket Equation - drag the sliders, H: help, Esc/Q: Quit"

	// Physics
	ExhaustVelocity = 2800.0 // m/s
	DefaultDryMass  = 1.0    // tons
	DefaultDeltaV   = 7600.0 // m/s

	// Slider ranges
	DryMassMin  = 1.0
	DryMassMax  = 20.0
	DryMassStep = 1.0
	DeltaVMin   = 2000.0
	DeltaVMax   = 12000.0
	DeltaVStep  = 100.0

	// Camera
	CameraFOV  = 90.0 // degrees, vertical
	CameraNear = 0.1
	CameraFar  = 1000.0
	CameraZ    = 8.0

	// Bodies
	DryBodyX = -5.0
	WetBodyX = 4.0

	// Tracking label offset from the projected body centre, in pixels
	LabelOffsetX = -50.0
	LabelOffsetY = -220.0

	// Animation
	EaseFactor      = 0.1
	SpringFrequency = 6.0
	SpringDamping   = 0.8
	TicksPerSecond  = 60

	// Audio
	AudioSampleRate = 44100
	AudioVolume     = 0.2
)

// Config is the runtime configuration. Zero values are never used directly;
// start from Defaults.
type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Physics   PhysicsConfig   `mapstructure:"physics"`
	Sliders   SlidersConfig   `mapstructure:"sliders"`
	Camera    CameraConfig    `mapstructure:"camera"`
	Labels    LabelsConfig    `mapstructure:"labels"`
	Animation AnimationConfig `mapstructure:"animation"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type PhysicsConfig struct {
	ExhaustVelocity float64 `mapstructure:"exhaust_velocity"`
	DryMass         float64 `mapstructure:"dry_mass"`
	DeltaV          float64 `mapstructure:"delta_v"`
}

// Range is a slider domain.
type Range struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Step float64 `mapstructure:"step"`
}

type SlidersConfig struct {
	DryMass Range `mapstructure:"dry_mass"`
	DeltaV  Range `mapstructure:"delta_v"`
}

type CameraConfig struct {
	FOV  float64 `mapstructure:"fov"`
	Near float64 `mapstructure:"near"`
	Far  float64 `mapstructure:"far"`
	Z    float64 `mapstructure:"z"`
}

type LabelsConfig struct {
	OffsetX float64 `mapstructure:"offset_x"`
	OffsetY float64 `mapstructure:"offset_y"`
}

type AnimationConfig struct {
	// Easing is "lerp" or "spring".
	Easing          string  `mapstructure:"easing"`
	Factor          float64 `mapstructure:"factor"`
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
	TPS             int     `mapstructure:"tps"`
}

type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sample_rate"`
	Volume     float64 `mapstructure:"volume"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Defaults returns the configuration the visualizer ships with.
func Defaults() Config {
	return Config{
		Window: WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Physics: PhysicsConfig{
			ExhaustVelocity: ExhaustVelocity,
			DryMass:         DefaultDryMass,
			DeltaV:          DefaultDeltaV,
		},
		Sliders: SlidersConfig{
			DryMass: Range{Min: DryMassMin, Max: DryMassMax, Step: DryMassStep},
			DeltaV:  Range{Min: DeltaVMin, Max: DeltaVMax, Step: DeltaVStep},
		},
		Camera: CameraConfig{FOV: CameraFOV, Near: CameraNear, Far: CameraFar, Z: CameraZ},
		Labels: LabelsConfig{OffsetX: LabelOffsetX, OffsetY: LabelOffsetY},
		Animation: AnimationConfig{
			Easing:          "lerp",
			Factor:          EaseFactor,
			SpringFrequency: SpringFrequency,
			SpringDamping:   SpringDamping,
			TPS:             TicksPerSecond,
		},
		Audio: AudioConfig{Enabled: false, SampleRate: AudioSampleRate, Volume: AudioVolume},
		Log:   LogConfig{Level: "info"},
	}
}
