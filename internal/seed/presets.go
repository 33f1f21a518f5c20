package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named seeding profile loaded from presets.yaml.
type Preset struct {
	Name            string `yaml:"name"`
	Users           int    `yaml:"users"`
	Groups          int    `yaml:"groups"`
	Posts           int    `yaml:"posts"`
	CommentsPerPost int    `yaml:"comments_per_post"`
	FollowsPerUser  int    `yaml:"follows_per_user"`
	SkipBcrypt      bool   `yaml:"skip_bcrypt"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets parses the embedded preset catalogue.
func LoadPresets() ([]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return file.Presets, nil
}

// FindPreset returns the preset with the given name, case-insensitively.
func FindPreset(name string) (*Preset, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if strings.EqualFold(presets[i].Name, name) {
			return &presets[i], nil
		}
	}
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(names, ", "))
}

// ApplyPreset runs a full seed with the named preset's options.
func ApplyPreset(db *gorm.DB, name string, clean bool) error {
	preset, err := FindPreset(name)
	if err != nil {
		return err
	}
	seeder := NewSeeder(db, Options{
		NumUsers:        preset.Users,
		NumGroups:       preset.Groups,
		NumPosts:        preset.Posts,
		CommentsPerPost: preset.CommentsPerPost,
		FollowsPerUser:  preset.FollowsPerUser,
		SkipBcrypt:      preset.SkipBcrypt,
		ShouldClean:     clean,
	})
	return seeder.Run()
}
