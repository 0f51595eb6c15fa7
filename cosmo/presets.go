package cosmo

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mwbrandt/supernova/version"
)

//go:embed presets.yaml
var presetsYAML []byte

type presetFile struct {
	Version string            `yaml:"version"`
	Presets map[string]Params `yaml:"presets"`
}

var presets map[string]Params

// The presets ship inside the binary, so a failure here is a broken build
// rather than a runtime condition and panicking is the right response.
func init() {
	file := &presetFile{}
	if err := yaml.Unmarshal(presetsYAML, file); err != nil {
		panic(fmt.Sprintf("The embedded preset file is malformed: %s",
			err.Error()))
	}
	if err := version.Compatible(file.Version); err != nil {
		panic(fmt.Sprintf("The embedded preset file can't be used: %s",
			err.Error()))
	}
	presets = file.Presets
}

// Preset returns the named built-in parameter set. The second return is
// false if no preset has that name; PresetNames lists the valid ones.
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the names of the built-in parameter sets in sorted
// order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
