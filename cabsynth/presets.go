package cabsynth

// Preset pairs a cabinet model name with the config that synthesizes it.
type Preset struct {
	Name   string
	Config Config
}

// Presets returns the built-in cabinet models, ordered the way they appear
// on the selector.
func Presets() []Preset {
	open112 := DefaultConfig()
	open112.Seed = 11

	closed112 := DefaultConfig()
	closed112.Seed = 12
	closed112.ConeHz = 105.0
	closed112.RolloffHz = 4200.0
	closed112.EarlyCount = 16
	closed112.LateLevel = 0.02
	closed112.LowDecayS = 0.035

	bright110 := DefaultConfig()
	bright110.Seed = 13
	bright110.ConeHz = 120.0
	bright110.Brightness = 1.4
	bright110.RolloffHz = 6500.0
	bright110.DurationS = 0.04

	vintage212 := DefaultConfig()
	vintage212.Seed = 21
	vintage212.ConeHz = 85.0
	vintage212.Brightness = 0.8
	vintage212.RolloffHz = 3800.0
	vintage212.DurationS = 0.08
	vintage212.EarlyCount = 14
	vintage212.LowDecayS = 0.055

	modern212 := DefaultConfig()
	modern212.Seed = 22
	modern212.ConeHz = 90.0
	modern212.Brightness = 1.2
	modern212.RolloffHz = 5200.0
	modern212.DurationS = 0.07

	big412 := DefaultConfig()
	big412.Seed = 41
	big412.ConeHz = 75.0
	big412.Brightness = 0.9
	big412.Density = 2.0
	big412.RolloffHz = 4000.0
	big412.DurationS = 0.12
	big412.EarlyCount = 20
	big412.LateLevel = 0.045
	big412.LowDecayS = 0.075

	dark412 := DefaultConfig()
	dark412.Seed = 42
	dark412.ConeHz = 70.0
	dark412.Brightness = 0.6
	dark412.Density = 2.2
	dark412.RolloffHz = 3200.0
	dark412.DurationS = 0.14
	dark412.EarlyCount = 22
	dark412.LateLevel = 0.05
	dark412.LowDecayS = 0.09

	tight115 := DefaultConfig()
	tight115.Seed = 51
	tight115.ConeHz = 60.0
	tight115.Brightness = 0.85
	tight115.RolloffHz = 3600.0
	tight115.DurationS = 0.09
	tight115.LowDecayS = 0.06

	return []Preset{
		{Name: "112-open", Config: open112},
		{Name: "112-closed", Config: closed112},
		{Name: "110-bright", Config: bright110},
		{Name: "212-vintage", Config: vintage212},
		{Name: "212-modern", Config: modern212},
		{Name: "412-big", Config: big412},
		{Name: "412-dark", Config: dark412},
		{Name: "115-tight", Config: tight115},
	}
}
