// Package content holds the portfolio profile: who the page is about and the
// sections, skills, stats, projects and timeline it renders.
package content

import (
	"errors"
	"fmt"
	"strings"
)

type Section struct {
	ID    string `koanf:"id"`
	Title string `koanf:"title"`
	Body  string `koanf:"body"`
}

type Skill struct {
	Name     string `koanf:"name"`
	Percent  int    `koanf:"percent"`
	Category string `koanf:"category"`
}

type Stat struct {
	Label  string `koanf:"label"`
	Count  int    `koanf:"count"`
	Suffix string `koanf:"suffix"`
}

type Project struct {
	Title   string   `koanf:"title"`
	Summary string   `koanf:"summary"`
	Tags    []string `koanf:"tags"`
}

type Milestone struct {
	Period string `koanf:"period"`
	Title  string `koanf:"title"`
	Detail string `koanf:"detail"`
}

// Link is a navbar entry targeting a section id.
type Link struct {
	Label  string `koanf:"label"`
	Target string `koanf:"target"`
}

// Profile is everything the page renders.
type Profile struct {
	Owner    string      `koanf:"owner"`
	Role     string      `koanf:"role"`
	Email    string      `koanf:"email"`
	Location string      `koanf:"location"`
	Phrases  []string    `koanf:"phrases"`
	Sections []Section   `koanf:"sections"`
	Skills   []Skill     `koanf:"skills"`
	Stats    []Stat      `koanf:"stats"`
	Projects []Project   `koanf:"projects"`
	Timeline []Milestone `koanf:"timeline"`
	Code     []string    `koanf:"code"`
	Nav      []Link      `koanf:"nav"`
}

// NavLinks returns the configured nav links, or one link per section when
// none are configured.
func (p Profile) NavLinks() []Link {
	if len(p.Nav) > 0 {
		out := make([]Link, len(p.Nav))
		copy(out, p.Nav)
		return out
	}
	out := make([]Link, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, Link{Label: s.Title, Target: s.ID})
	}
	return out
}

// Section looks up a section by id.
func (p Profile) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SkillCategories returns categories in first-seen order.
func (p Profile) SkillCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range p.Skills {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

// Validate reports every problem found, joined.
func (p Profile) Validate() error {
	var errs []error
	if len(p.Phrases) == 0 {
		errs = append(errs, errors.New("at least one hero phrase is required"))
	}
	if len(p.Sections) == 0 {
		errs = append(errs, errors.New("at least one section is required"))
	}
	ids := make(map[string]struct{}, len(p.Sections))
	for i, s := range p.Sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("section %d: id is required", i))
			continue
		}
		if _, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("section %q: duplicate id", id))
		}
		ids[id] = struct{}{}
	}
	for _, s := range p.Skills {
		if s.Percent < 0 || s.Percent > 100 {
			errs = append(errs, fmt.Errorf("skill %q: percent %d out of range 0..100", s.Name, s.Percent))
		}
	}
	for _, l := range p.Nav {
		if _, ok := ids[l.Target]; !ok {
			errs = append(errs, fmt.Errorf("nav link %q: unknown section %q", l.Label, l.Target))
		}
	}
	return errors.Join(errs...)
}
