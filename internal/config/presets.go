package config

var Presets = map[string]map[string]*Config{
	"vacuum": {
		"cw": {
			Mode: "tmz", Size: [3]float64{4, 4, 0}, Resolution: 25, Courant: DefaultCourant, Steps: 400,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Sources: []SourceConfig{
				{Component: "ez", Pos: [3]float64{0, 0, 0}, Waveform: "continuous", Freq: 0.8, Amp: 1.0},
			},
			Probes: []ProbeConfig{{Component: "ez", Pos: [3]float64{1, 0, 0}}},
		},
		"pulse": {
			Mode: "tmz", Size: [3]float64{4, 4, 0}, Resolution: 25, Courant: DefaultCourant, Steps: 600,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Sources: []SourceConfig{
				{Component: "ez", Pos: [3]float64{0, 0, 0}, Waveform: "gaussian", Freq: 1.0, Amp: 1.0, Width: 0.4, Delay: 1.2},
			},
			Probes: []ProbeConfig{{Component: "ez", Pos: [3]float64{1, 0, 0}}},
		},
	},
	"dielectric": {
		"slab": {
			Mode: "tmz", Size: [3]float64{6, 4, 0}, Resolution: 25, Courant: DefaultCourant, Steps: 800,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Objects: []ObjectConfig{
				{Shape: "box", Material: MaterialConfig{Type: "dielectric", Index: 2.0},
					Center: [3]float64{1.5, 0, 0}, Size: [3]float64{1.0, 4, 1}},
			},
			Sources: []SourceConfig{
				{Component: "ez", Shape: "line", Axis: "y", Pos: [3]float64{-1.5, 0, 0},
					Waveform: "gaussian", Freq: 1.0, Amp: 1.0, Width: 0.4, Delay: 1.2},
			},
			Probes: []ProbeConfig{
				{Component: "ez", Pos: [3]float64{-1.0, 0, 0}},
				{Component: "ez", Pos: [3]float64{2.5, 0, 0}},
			},
		},
		"sphere": {
			Mode: "3d", Size: [3]float64{3, 3, 3}, Resolution: 12, Courant: DefaultCourant, Steps: 300,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Objects: []ObjectConfig{
				{Shape: "sphere", Material: MaterialConfig{Type: "dielectric", Index: 3.5},
					Center: [3]float64{0.5, 0, 0}, Radius: 0.5},
			},
			Sources: []SourceConfig{
				{Component: "ez", Pos: [3]float64{-1.0, 0, 0}, Waveform: "continuous", Freq: 1.0, Amp: 1.0},
			},
			Probes: []ProbeConfig{{Component: "ez", Pos: [3]float64{1.2, 0, 0}}},
		},
	},
	"metal": {
		"drude": {
			Mode: "tmz", Size: [3]float64{5, 4, 0}, Resolution: 25, Courant: DefaultCourant, Steps: 800,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Objects: []ObjectConfig{
				{Shape: "cylinder", Material: MaterialConfig{Type: "drude", EpsInf: 1.0, Mu: 1.0, OmegaP: 6.0, GammaP: 0.1},
					Center: [3]float64{1.0, 0, 0}, Radius: 0.4, Axis: "z", Height: 1},
			},
			Sources: []SourceConfig{
				{Component: "ez", Pos: [3]float64{-1.5, 0, 0}, Waveform: "gaussian", Freq: 1.5, Amp: 1.0, Width: 0.3, Delay: 1.0},
			},
			Probes: []ProbeConfig{{Component: "ez", Pos: [3]float64{-1.0, 0, 0}}},
		},
	},
	"absorbing": {
		"upml": {
			Mode: "tmz", Size: [3]float64{6, 6, 0}, Resolution: 20, Courant: DefaultCourant, Steps: 800,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Objects: []ObjectConfig{
				{Shape: "box", Material: MaterialConfig{Type: "upml", Eps: 1.0, Mu: 1.0, Thickness: 0.5},
					Center: [3]float64{0, 0, 0}, Size: [3]float64{6, 6, 2}},
			},
			Sources: []SourceConfig{
				{Component: "ez", Pos: [3]float64{0, 0, 0}, Waveform: "gaussian", Freq: 1.0, Amp: 1.0, Width: 0.3, Delay: 1.0},
			},
			Probes: []ProbeConfig{{Component: "ez", Pos: [3]float64{2.0, 0, 0}}},
		},
	},
	"line": {
		"tem": {
			Mode: "temx", Size: [3]float64{8, 0, 0}, Resolution: 40, Courant: DefaultCourant, Steps: 600,
			Medium: MaterialConfig{Type: "dielectric", Index: 1.0},
			Sources: []SourceConfig{
				{Component: "ey", Pos: [3]float64{-3.0, 0, 0}, Waveform: "gaussian", Freq: 1.0, Amp: 1.0, Width: 0.3, Delay: 1.0},
			},
			Probes: []ProbeConfig{{Component: "ey", Pos: [3]float64{3.0, 0, 0}}},
		},
	},
}

func GetPreset(group, preset string) *Config {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	cfg, ok := groupPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(group string) []string {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(groupPresets))
	for name := range groupPresets {
		names = append(names, name)
	}
	return names
}
