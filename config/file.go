package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the sections of the package-level configuration that can be
// overridden from a YAML file. Missing keys keep their built-in defaults.
type File struct {
	Window      *Config            `yaml:"window"`
	Launch      *LaunchConfig      `yaml:"launch"`
	Spark       *SparkConfig       `yaml:"spark"`
	Scheduler   *SchedulerConfig   `yaml:"scheduler"`
	Surface     *SurfaceConfig     `yaml:"surface"`
	Hue         *HueConfig         `yaml:"hue"`
	Countdown   *CountdownConfig   `yaml:"countdown"`
	Greeting    *GreetingConfig    `yaml:"greeting"`
	Instruction *InstructionConfig `yaml:"instruction"`
}

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the global configuration and validates the result.
// On error the globals are left untouched.
func Apply(data []byte) error {
	window := *C
	launch, spark, scheduler := Launch, Spark, Scheduler
	surface, hue, countdown := Surface, Hue, Countdown
	greeting, instruction := Greeting, Instruction

	f := File{
		Window:      &window,
		Launch:      &launch,
		Spark:       &spark,
		Scheduler:   &scheduler,
		Surface:     &surface,
		Hue:         &hue,
		Countdown:   &countdown,
		Greeting:    &greeting,
		Instruction: &instruction,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// A section with no value ("launch:" or "launch: null") unmarshals to nil
	// and keeps the current values.
	if f.Window == nil {
		f.Window = &window
	}
	if f.Launch == nil {
		f.Launch = &launch
	}
	if f.Spark == nil {
		f.Spark = &spark
	}
	if f.Scheduler == nil {
		f.Scheduler = &scheduler
	}
	if f.Surface == nil {
		f.Surface = &surface
	}
	if f.Hue == nil {
		f.Hue = &hue
	}
	if f.Countdown == nil {
		f.Countdown = &countdown
	}
	if f.Greeting == nil {
		f.Greeting = &greeting
	}
	if f.Instruction == nil {
		f.Instruction = &instruction
	}

	if err := f.validate(); err != nil {
		return err
	}

	C = f.Window
	Launch = *f.Launch
	Spark = *f.Spark
	Scheduler = *f.Scheduler
	Surface = *f.Surface
	Hue = *f.Hue
	Countdown = *f.Countdown
	Greeting = *f.Greeting
	Instruction = *f.Instruction
	return nil
}

func (f *File) validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps must be positive, got %d", f.Window.TPS))
	}
	if f.Launch.SpeedGrowth <= 1 {
		errs = append(errs, fmt.Errorf("launch speedGrowth must be > 1, got %v", f.Launch.SpeedGrowth))
	}
	if f.Launch.TrailLength < 1 || f.Spark.TrailLength < 1 {
		errs = append(errs, errors.New("trail lengths must be at least 1"))
	}
	if f.Spark.Friction <= 0 || f.Spark.Friction >= 1 {
		errs = append(errs, fmt.Errorf("spark friction must be in (0,1), got %v", f.Spark.Friction))
	}
	if f.Spark.DecayMin <= 0 || f.Spark.DecayMax < f.Spark.DecayMin {
		errs = append(errs, fmt.Errorf("spark decay range [%v,%v] is invalid", f.Spark.DecayMin, f.Spark.DecayMax))
	}
	if f.Scheduler.AutoLaunchPeriod < 1 || f.Scheduler.PointerRateLimit < 1 {
		errs = append(errs, errors.New("scheduler periods must be at least 1 tick"))
	}
	if f.Greeting.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("greeting maxAttempts must be at least 1, got %d", f.Greeting.MaxAttempts))
	}
	return errors.Join(errs...)
}
