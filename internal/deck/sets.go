package deck

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultSet names the front set used when none is configured.
const DefaultSet = "animals"

// Set is a named collection of card fronts with a matching back.
type Set struct {
	Name   string   `yaml:"name"`
	Back   string   `yaml:"back"`
	Fronts []string `yaml:"fronts"`
}

// SetFile represents the top-level YAML structure of a deck file.
type SetFile struct {
	Decks []Set `yaml:"decks"`
}

var builtinSets = []Set{
	{
		Name:   "animals",
		Back:   "?",
		Fronts: []string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔"},
	},
	{
		Name:   "letters",
		Back:   "#",
		Fronts: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z"},
	},
	{
		Name:   "symbols",
		Back:   "·",
		Fronts: []string{"♠", "♥", "♦", "♣", "★", "☀", "☂", "☎", "♫", "✿", "⚑", "✈", "☯", "⚓", "✂", "♞"},
	},
}

// Builtin returns copies of the built-in front sets.
func Builtin() []Set {
	out := make([]Set, len(builtinSets))
	for i, s := range builtinSets {
		out[i] = Set{Name: s.Name, Back: s.Back, Fronts: append([]string(nil), s.Fronts...)}
	}
	return out
}

// ParseSetFile parses a YAML deck file. A missing file yields no sets.
func ParseSetFile(path string) ([]Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sf SetFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	for i, s := range sf.Decks {
		if s.Name == "" {
			return nil, fmt.Errorf("deck %d has no name", i+1)
		}
	}
	return sf.Decks, nil
}

// Catalog merges built-in sets with sets from a deck file. File sets
// replace built-ins of the same name.
func Catalog(path string) (map[string]Set, error) {
	catalog := make(map[string]Set)
	for _, s := range Builtin() {
		catalog[s.Name] = s
	}
	if path == "" {
		return catalog, nil
	}
	fileSets, err := ParseSetFile(path)
	if err != nil {
		return nil, err
	}
	for _, s := range fileSets {
		catalog[s.Name] = s
	}
	return catalog, nil
}

// Names returns the catalog's set names in sorted order.
func Names(catalog map[string]Set) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
