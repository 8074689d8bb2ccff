package content

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix selects environment overrides for scalar profile fields:
// TERMFOLIO_PROFILE_OWNER -> owner.
const EnvPrefix = "TERMFOLIO_PROFILE_"

// Load reads a YAML profile from path (when non-empty), overlays
// TERMFOLIO_PROFILE_* environment variables and fills anything left unset
// from Default. The result is validated.
func Load(path string) (Profile, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Profile{}, fmt.Errorf("reading content %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Profile{}, fmt.Errorf("loading content env overrides: %w", err)
	}

	var p Profile
	if err := k.Unmarshal("", &p); err != nil {
		return Profile{}, fmt.Errorf("unmarshalling content: %w", err)
	}
	p = p.withDefaults(Default())

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid content: %w", err)
	}
	return p, nil
}

// withDefaults fills every empty field from def. Lists are replaced
// wholesale, never merged element by element.
func (p Profile) withDefaults(def Profile) Profile {
	if p.Owner == "" {
		p.Owner = def.Owner
	}
	if p.Role == "" {
		p.Role = def.Role
	}
	if p.Email == "" {
		p.Email = def.Email
	}
	if p.Location == "" {
		p.Location = def.Location
	}
	if len(p.Phrases) == 0 {
		p.Phrases = def.Phrases
	}
	if len(p.Sections) == 0 {
		p.Sections = def.Sections
	}
	if len(p.Skills) == 0 {
		p.Skills = def.Skills
	}
	if len(p.Stats) == 0 {
		p.Stats = def.Stats
	}
	if len(p.Projects) == 0 {
		p.Projects = def.Projects
	}
	if len(p.Timeline) == 0 {
		p.Timeline = def.Timeline
	}
	if len(p.Code) == 0 {
		p.Code = def.Code
	}
	return p
}
