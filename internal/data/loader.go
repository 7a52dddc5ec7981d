package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SheetProvider is the read-only view the roll composition layer depends
// on. Callers never reach into a shared mutable character graph; they ask
// the provider for a sheet by name.
type SheetProvider interface {
	Sheet(name string) (*Character, error)
	SkillAbility(skill string) (string, error)
}

// Loader handles reading and instantiating records from the read-only data layer
type Loader struct {
	dataDirs []string
	skills   map[string]string // skill -> ability, lazily loaded
}

// NewLoader initializes a new Data Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// Sheet constructs a typed Character by searching the data directories sequentially
func (l *Loader) Sheet(name string) (*Character, error) {
	var c Character
	dashName := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	ref := filepath.Join("characters", fmt.Sprintf("%s.yaml", dashName))
	if err := l.load(ref, &c); err != nil {
		return nil, err
	}
	if c.Name == "" {
		c.Name = name
	}
	return &c, nil
}

// SkillAbility resolves which ability score drives a skill. Downloaded SRD
// data (skills.yaml) wins over the built-in mapping.
func (l *Loader) SkillAbility(skill string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(skill))

	if l.skills == nil {
		var loaded map[string]string
		if err := l.load("skills.yaml", &loaded); err == nil {
			l.skills = loaded
		} else {
			l.skills = defaultSkillAbilities
		}
	}

	if ability, ok := l.skills[key]; ok {
		return ability, nil
	}
	if ability, ok := defaultSkillAbilities[key]; ok {
		return ability, nil
	}
	return "", fmt.Errorf("unknown skill: %s", skill)
}

func (l *Loader) load(ref string, target interface{}) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			decoder := yaml.NewDecoder(f)
			if err := decoder.Decode(target); err != nil {
				return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
			}
			return nil
		}
	}
	return fmt.Errorf("could not find or open reference %s in any available data directory", ref)
}
