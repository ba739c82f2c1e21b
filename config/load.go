package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked for in the working directory when no explicit
// config path is given.
const DefaultFileName = "catdash.yaml"

// FileOverrides mirrors the tunable subset of the configuration that can be
// set from a YAML file. Pointer fields distinguish absent keys from zero
// values; only present keys override the built-in defaults.
type FileOverrides struct {
	Difficulty struct {
		BaseSpeed            *float64 `yaml:"base_speed"`
		SpeedStep            *float64 `yaml:"speed_step"`
		SpeedStepScore       *int     `yaml:"speed_step_score"`
		MaxSpeed             *float64 `yaml:"max_speed"`
		SpeedJitter          *float64 `yaml:"speed_jitter"`
		BaseIntervalFrames   *int     `yaml:"base_interval_frames"`
		IntervalStepFrames   *int     `yaml:"interval_step_frames"`
		IntervalStepScore    *int     `yaml:"interval_step_score"`
		MinIntervalFrames    *int     `yaml:"min_interval_frames"`
		IntervalJitterFrames *int     `yaml:"interval_jitter_frames"`
	} `yaml:"difficulty"`
	Scoring struct {
		ShotThreshold *int `yaml:"shot_threshold"`
		BalloonBonus  *int `yaml:"balloon_bonus"`
	} `yaml:"scoring"`
	Window struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
}

// LoadFile applies overrides from the YAML file at path on top of the
// built-in defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var o FileOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	o.apply()
	return nil
}

// LoadDefaultFile behaves like LoadFile on DefaultFileName, except a missing
// file is not an error.
func LoadDefaultFile() error {
	err := LoadFile(DefaultFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (o *FileOverrides) apply() {
	d := &o.Difficulty
	setFloat(&Difficulty.BaseSpeed, d.BaseSpeed)
	setFloat(&Difficulty.SpeedStep, d.SpeedStep)
	setInt(&Difficulty.SpeedStepScore, d.SpeedStepScore)
	setFloat(&Difficulty.MaxSpeed, d.MaxSpeed)
	setFloat(&Difficulty.SpeedJitter, d.SpeedJitter)
	setInt(&Difficulty.BaseIntervalFrames, d.BaseIntervalFrames)
	setInt(&Difficulty.IntervalStepFrames, d.IntervalStepFrames)
	setInt(&Difficulty.IntervalStepScore, d.IntervalStepScore)
	setInt(&Difficulty.MinIntervalFrames, d.MinIntervalFrames)
	setInt(&Difficulty.IntervalJitterFrames, d.IntervalJitterFrames)

	s := &o.Scoring
	setInt(&Scoring.ShotThreshold, s.ShotThreshold)
	setInt(&Scoring.BalloonBonus, s.BalloonBonus)

	w := &o.Window
	setInt(&C.Width, w.Width)
	setInt(&C.Height, w.Height)
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
