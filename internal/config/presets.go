package config

import "sort"

var Presets = map[string]*Config{
	"published": {
		Integrand: "heat", Rule: "simpson13", Start: 0, End: 8,
		Intervals: []int{4, 8, 16, 32}, Round: true,
	},
	"fine": {
		Integrand: "heat", Rule: "simpson13", Start: 0, End: 8,
		Intervals: []int{4, 8, 16, 32, 64, 128, 256}, Round: false,
	},
	"day": {
		Integrand: "heat", Rule: "simpson13", Start: 0, End: 24,
		Intervals: []int{4, 8, 16, 32, 64}, Round: false,
	},
	"odd": {
		Integrand: "heat", Rule: "combined", Start: 0, End: 8,
		Intervals: []int{3, 5, 9, 17, 33}, Round: false,
	},
	"quartic": {
		Integrand: "poly", Params: map[string]float64{"c4": 1}, Rule: "simpson13", Start: 0, End: 2,
		Intervals: []int{2, 4, 8, 16}, Round: false,
	},
}

// GetPreset returns a copy of the named preset over the default plot settings.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Integrand = p.Integrand
	cfg.Rule = p.Rule
	cfg.Start = p.Start
	cfg.End = p.End
	cfg.Intervals = append([]int(nil), p.Intervals...)
	cfg.Round = p.Round
	if len(p.Params) > 0 {
		cfg.Params = make(map[string]float64, len(p.Params))
		for k, v := range p.Params {
			cfg.Params[k] = v
		}
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
