package assignment

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Member is one roster entry for a project.
type Member struct {
	Email  string `toml:"email"`
	Role   string `toml:"role"`
	Status string `toml:"status"`
}

// Roster maps project IDs to their member lists. Lookups are scoped per
// project; unrecognized projects have an empty roster.
type Roster map[string][]Member

// DefaultRoster returns the canonical enterprise roster.
func DefaultRoster() Roster {
	return Roster{
		"PROJ-ALPHA": {
			{Email: "maria.rosa@enterprise.com", Role: "Developer", Status: "Active"},
			{Email: "alice.manfieldr@enterprise.com", Role: "Project Manager", Status: "Active"},
			{Email: "bob.lover@enterprise.com", Role: "UX Designer", Status: "Active"},
		},
	}
}

type rosterFile struct {
	Projects []struct {
		ID      string   `toml:"id"`
		Members []Member `toml:"member"`
	} `toml:"project"`
}

// LoadRoster reads a roster from a TOML file. The file fully replaces the
// default roster; projects not listed have empty rosters.
func LoadRoster(path string) (Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file rosterFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}

	roster := make(Roster, len(file.Projects))
	for _, project := range file.Projects {
		if strings.TrimSpace(project.ID) == "" {
			return nil, fmt.Errorf("roster file %s: every project needs an id", path)
		}
		roster[project.ID] = project.Members
	}
	return roster, nil
}
