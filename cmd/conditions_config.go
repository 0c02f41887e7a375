package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/neudestifanoes/ltpsim/sim"
)

// Define structs for YAML
type ConditionsConfig struct {
	Base       BaseConfig        `yaml:"base"`
	Conditions []ConditionConfig `yaml:"conditions"`
}

type BaseConfig struct {
	TotalTime    float64 `yaml:"total_time"`
	Dt           float64 `yaml:"dt"`
	WInitial     float64 `yaml:"w_initial"`
	TetanusStart float64 `yaml:"tetanus_start"`
	TetanusEnd   float64 `yaml:"tetanus_end"`
}

type ConditionConfig struct {
	Name         string  `yaml:"name"`
	WMax         float64 `yaml:"w_max"`
	LearningRate float64 `yaml:"learning_rate"`
}

// GetConditions loads condition presets from a YAML file. Base fields present
// in the file override the given defaults; zero-valued fields inherit them.
// Conditions keep file order.
func GetConditions(conditionsFilePath string, defaults sim.BaseParams) ([]sim.Params, error) {
	// Read YAML file
	data, err := os.ReadFile(conditionsFilePath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var cfg ConditionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	base := defaults
	if cfg.Base.TotalTime != 0 {
		base.TotalTime = cfg.Base.TotalTime
	}
	if cfg.Base.Dt != 0 {
		base.Dt = cfg.Base.Dt
	}
	if cfg.Base.WInitial != 0 {
		base.WInitial = cfg.Base.WInitial
	}
	if cfg.Base.TetanusStart != 0 {
		base.TetanusStart = cfg.Base.TetanusStart
	}
	if cfg.Base.TetanusEnd != 0 {
		base.TetanusEnd = cfg.Base.TetanusEnd
	}

	conditions := make([]sim.Params, 0, len(cfg.Conditions))
	for i, c := range cfg.Conditions {
		if c.Name == "" {
			return nil, fmt.Errorf("condition %d has no name", i)
		}
		logrus.Infof("Using preset condition %v", c.Name)
		conditions = append(conditions, sim.NewParams(c.Name, base, c.WMax, c.LearningRate))
	}
	return conditions, nil
}
