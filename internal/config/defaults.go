package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found or the embedded YAML fails to parse.
func Default() Config {
	return Config{
		GridSize:        20,
		CountdownStepMS: 1000,
		Sound:           true,
		Difficulties: Difficulties{
			EasyMS:   200,
			MediumMS: 150,
			HardMS:   100,
		},
		Facts: FactsConfig{
			Endpoint:  "",
			Prompt:    "Tell me a short fun fact about snakes.",
			TimeoutMS: 3000,
		},
	}
}
