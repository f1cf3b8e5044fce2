package m7enc

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile is a named encoder preset (row-prefix variant, previous-grid boot
// state), the Mode 7 analogue of the teacher's paletteSource.
type Profile struct {
	Name             string `yaml:"name"`
	Separated        bool   `yaml:"separated"`
	ZeroFramePreset  bool   `yaml:"zeroFramePreset"`
}

//go:embed profiles.yaml
var profilesYaml []byte

var profiles []Profile

func init() {
	var err error
	profiles, err = parseProfiles(profilesYaml)
	if err != nil {
		panic(fmt.Errorf("parseProfiles failed: %w", err))
	}
	if len(profiles) == 0 {
		panic(fmt.Errorf("no profiles found in %q", "profiles.yaml"))
	}
}

func parseProfiles(in []byte) (out []Profile, err error) {
	if err = yaml.Unmarshal(in, &out); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal failed: %w", err)
	}
	return out, nil
}

// lookupProfile returns the named Profile, defaulting to "standard" when
// name is empty. Returns ErrProfileNotFound for an unknown name.
func lookupProfile(name string) (Profile, error) {
	if name == "" {
		name = "standard"
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// LookupProfile is the exported form of lookupProfile, for callers outside
// the package (cmd/m7probe) that need to reconstruct a boot grid without
// going through NewEncoder.
func LookupProfile(name string) (Profile, error) {
	return lookupProfile(name)
}
