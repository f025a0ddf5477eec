package config

var Presets = map[string]*Config{
	"default": {
		DataDir:         ".",
		VisSetPath:      "visset.json",
		DefaultGradient: DefaultGradientSpec,
		Resolution:      DefaultResolution,
		Log:             LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	},
	"sparse": {
		DataDir:         ".",
		VisSetPath:      "visset.json",
		DefaultGradient: DefaultGradientSpec,
		Resolution:      DefaultResolution,
		Decode:          DecodeConfig{DropZeros: true},
		Log:             LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	},
	"debug": {
		DataDir:         ".",
		VisSetPath:      "visset.json",
		DefaultGradient: DefaultGradientSpec,
		Resolution:      DefaultResolution,
		Log:             LogConfig{Level: "debug", Format: "json"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
