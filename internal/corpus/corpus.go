// Package corpus loads the static word lists the generator samples from.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCorpus []byte

// ErrEmptyList reports a corpus list the generator cannot sample from.
var ErrEmptyList = errors.New("corpus list is empty")

// Corpus is read-only after loading and indexed by position.
type Corpus struct {
	Villages        []string `yaml:"villages"`
	Streets         []string `yaml:"streets"`
	NamesMen        []string `yaml:"names_men"`
	NamesWomen      []string `yaml:"names_women"`
	SurnamesMen     []string `yaml:"surnames_men"`
	SurnamesWomen   []string `yaml:"surnames_women"`
	Occupations     []string `yaml:"occupations"`
	DirectorTitles  []string `yaml:"director_titles"`
	CelebrantTitles []string `yaml:"celebrant_titles"`
	OfficiantTitles []string `yaml:"officiant_titles"`
	DeathCauses     []string `yaml:"death_causes"`
}

// Default returns the embedded corpus.
func Default() (*Corpus, error) {
	return Parse(defaultCorpus)
}

// DefaultBytes is the raw embedded corpus, used by `vitalgen init`.
func DefaultBytes() []byte {
	out := make([]byte, len(defaultCorpus))
	copy(out, defaultCorpus)
	return out
}

// Load reads a corpus file. An empty path selects the embedded corpus.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate requires every list to hold at least one entry.
func (c *Corpus) Validate() error {
	for name, list := range c.lists() {
		if len(*list) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyList, name)
		}
	}
	return nil
}

func (c *Corpus) lists() map[string]*[]string {
	return map[string]*[]string{
		"villages":         &c.Villages,
		"streets":          &c.Streets,
		"names_men":        &c.NamesMen,
		"names_women":      &c.NamesWomen,
		"surnames_men":     &c.SurnamesMen,
		"surnames_women":   &c.SurnamesWomen,
		"occupations":      &c.Occupations,
		"director_titles":  &c.DirectorTitles,
		"celebrant_titles": &c.CelebrantTitles,
		"officiant_titles": &c.OfficiantTitles,
		"death_causes":     &c.DeathCauses,
	}
}

// normalize trims entries, drops blanks and composes diacritics to NFC so
// "Nováková" typed with combining marks matches the precomposed form.
func (c *Corpus) normalize() {
	for _, list := range c.lists() {
		cleaned := (*list)[:0]
		for _, item := range *list {
			item = norm.NFC.String(strings.TrimSpace(item))
			if item != "" {
				cleaned = append(cleaned, item)
			}
		}
		*list = cleaned
	}
}
