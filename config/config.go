package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity is created on
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // simulation ticks per second
	Title  string `yaml:"title"`
}

// LaunchConfig contains launch (rocket) configuration values
type LaunchConfig struct {
	InitialSpeed  float64 `yaml:"initialSpeed"`
	SpeedGrowth   float64 `yaml:"speedGrowth"` // multiplied into speed every tick, > 1
	TrailLength   int     `yaml:"trailLength"`
	BrightnessMin float64 `yaml:"brightnessMin"`
	BrightnessMax float64 `yaml:"brightnessMax"`

	// Pulsing target indicator
	RadiusMin  float64 `yaml:"radiusMin"`
	RadiusMax  float64 `yaml:"radiusMax"`
	RadiusStep float64 `yaml:"radiusStep"`
}

// SparkConfig contains detonation spark configuration values
type SparkConfig struct {
	BurstCount    int     `yaml:"burstCount"`
	TrailLength   int     `yaml:"trailLength"`
	SpeedMin      float64 `yaml:"speedMin"`
	SpeedMax      float64 `yaml:"speedMax"`
	Friction      float64 `yaml:"friction"` // multiplied into speed every tick, < 1
	Gravity       float64 `yaml:"gravity"`  // pixels per tick added to y
	HueSpread     float64 `yaml:"hueSpread"`
	BrightnessMin float64 `yaml:"brightnessMin"`
	BrightnessMax float64 `yaml:"brightnessMax"`
	DecayMin      float64 `yaml:"decayMin"`
	DecayMax      float64 `yaml:"decayMax"`

	// Sparkle variant
	SparkleChance        float64 `yaml:"sparkleChance"`
	SparkleBrightnessMin float64 `yaml:"sparkleBrightnessMin"`
	SparkleBrightnessMax float64 `yaml:"sparkleBrightnessMax"`
	FlareChance          float64 `yaml:"flareChance"`
	FlareWidth           float64 `yaml:"flareWidth"`
}

// SchedulerConfig contains launch cadence configuration (ticks)
type SchedulerConfig struct {
	AutoLaunchPeriod int `yaml:"autoLaunchPeriod"`
	PointerRateLimit int `yaml:"pointerRateLimit"`
}

// SurfaceConfig contains compositing configuration
type SurfaceConfig struct {
	FadeAlpha   float64    `yaml:"fadeAlpha"` // alpha of the erase rectangle drawn each tick
	StrokeWidth float64    `yaml:"strokeWidth"`
	Background  color.RGBA `yaml:"-"` // shows through wherever the surface has faded
}

// HueConfig contains global colour drift configuration
type HueConfig struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"` // degrees per tick
}

// CountdownConfig contains countdown display configuration
type CountdownConfig struct {
	TextColor  color.RGBA `yaml:"-"`
	LabelColor color.RGBA `yaml:"-"`
	FontSize   float64    `yaml:"fontSize"`
	LabelSize  float64    `yaml:"labelSize"`
	Label      string     `yaml:"label"`
}

// GreetingConfig contains greeting overlay configuration
type GreetingConfig struct {
	// Sampling bounds and central exclusion zone, in percent of the viewport
	SampleMin   float64    `yaml:"sampleMin"`
	SampleMax   float64    `yaml:"sampleMax"`
	ExcludeTop  [2]float64 `yaml:"excludeTop"`
	ExcludeLeft [2]float64 `yaml:"excludeLeft"`
	MaxAttempts int        `yaml:"maxAttempts"` // bound on rejection sampling per greeting
	FallbackTop float64    `yaml:"fallbackTop"` // used when MaxAttempts is exhausted

	RotationMax     float64 `yaml:"rotationMax"` // degrees either way
	ScaleMin        float64 `yaml:"scaleMin"`
	ScaleMax        float64 `yaml:"scaleMax"`
	MainScale       float64 `yaml:"mainScale"`
	BaseFontSize    float64 `yaml:"baseFontSize"`
	PopInSeconds    float32 `yaml:"popInSeconds"`
	PulseDelayMax   float64 `yaml:"pulseDelayMax"`
	PulseSecondsMin float64 `yaml:"pulseSecondsMin"`
	PulseSecondsMax float64 `yaml:"pulseSecondsMax"`
	PulseAmount     float32 `yaml:"pulseAmount"` // peak extra scale during a pulse
	ShineDelayMax   float64 `yaml:"shineDelayMax"`
	ShinePeriod     float64 `yaml:"shinePeriod"`
	ShineSeconds    float64 `yaml:"shineSeconds"`
	ShineBoost      float32 `yaml:"shineBoost"`
}

// InstructionConfig contains the "click to launch" banner configuration
type InstructionConfig struct {
	Text        string     `yaml:"text"`
	FadeSeconds float32    `yaml:"fadeSeconds"`
	FontSize    float64    `yaml:"fontSize"`
	TextColor   color.RGBA `yaml:"-"`
	BoxColor    color.RGBA `yaml:"-"`
	BottomInset int        `yaml:"bottomInset"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed     int64         // 0 = seed from the clock
	TargetIn time.Duration // > 0 overrides the New Year target with now+TargetIn
	Overlay  bool          // start with the stats overlay shown (F3 toggles)
}

// Global configuration instances
var C *Config
var Launch LaunchConfig
var Spark SparkConfig
var Scheduler SchedulerConfig
var Surface SurfaceConfig
var Hue HueConfig
var Countdown CountdownConfig
var Greeting GreetingConfig
var Instruction InstructionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Ruby         = color.RGBA{R: 255, G: 70, B: 100, A: 255}
	Sapphire     = color.RGBA{R: 70, G: 140, B: 255, A: 255}
	Amethyst     = color.RGBA{R: 190, G: 110, B: 255, A: 255}
	Emerald      = color.RGBA{R: 60, G: 230, B: 140, A: 255}
	Cyber        = color.RGBA{R: 0, G: 255, B: 240, A: 255}
	SoftWhite    = color.RGBA{R: 220, G: 220, B: 235, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Happy New Year",
	}

	Launch = LaunchConfig{
		InitialSpeed:  2,
		SpeedGrowth:   1.05,
		TrailLength:   3,
		BrightnessMin: 50,
		BrightnessMax: 70,

		RadiusMin:  1,
		RadiusMax:  8,
		RadiusStep: 0.3,
	}

	Spark = SparkConfig{
		BurstCount:    150,
		TrailLength:   5,
		SpeedMin:      5,
		SpeedMax:      25, // big bursts
		Friction:      0.95,
		Gravity:       1,
		HueSpread:     50,
		BrightnessMin: 50,
		BrightnessMax: 80,
		DecayMin:      0.003, // slow fade so bursts linger
		DecayMax:      0.01,

		SparkleChance:        0.3,
		SparkleBrightnessMin: 50,
		SparkleBrightnessMax: 100,
		FlareChance:          0.1,
		FlareWidth:           2,
	}

	Scheduler = SchedulerConfig{
		AutoLaunchPeriod: 80,
		PointerRateLimit: 5,
	}

	Surface = SurfaceConfig{
		FadeAlpha:   0.5,
		StrokeWidth: 1,
		Background:  Black,
	}

	Hue = HueConfig{
		Start: 120,
		Step:  0.5,
	}

	Countdown = CountdownConfig{
		TextColor:  White,
		LabelColor: SoftWhite,
		FontSize:   64,
		LabelSize:  20,
		Label:      "Countdown to the New Year",
	}

	Greeting = GreetingConfig{
		SampleMin:   10,
		SampleMax:   90,
		ExcludeTop:  [2]float64{35, 65},
		ExcludeLeft: [2]float64{30, 70},
		MaxAttempts: 64,
		FallbackTop: 15,

		RotationMax:     25,
		ScaleMin:        1.5,
		ScaleMax:        3.5,
		MainScale:       4,
		BaseFontSize:    12,
		PopInSeconds:    0.8,
		PulseDelayMax:   2,
		PulseSecondsMin: 1.8,
		PulseSecondsMax: 2.2,
		PulseAmount:     0.06,
		ShineDelayMax:   5,
		ShinePeriod:     4,
		ShineSeconds:    0.6,
		ShineBoost:      0.5,
	}

	Instruction = InstructionConfig{
		Text:        "Click and hold to launch fireworks",
		FadeSeconds: 1,
		FontSize:    18,
		TextColor:   White,
		BoxColor:    BlackOverlay,
		BottomInset: 48,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Seed:     0,
		TargetIn: 0,
		Overlay:  false,
	}
}
