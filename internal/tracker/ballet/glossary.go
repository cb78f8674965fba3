package ballet

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

type GlossaryEntry struct {
	Term          string `yaml:"term" json:"term"`
	Pronunciation string `yaml:"pronunciation" json:"pronunciation"`
	Description   string `yaml:"description" json:"description"`
	SearchQuery   string `yaml:"searchQuery" json:"searchQuery"`
}

//go:embed glossary.yaml
var glossaryYAML []byte

type glossaryIndex struct {
	entries []GlossaryEntry
	// normalized term (and its singular) -> entry index
	byTerm map[string]int
	// keys sorted longest first for substring matching
	keys []string
}

var loadGlossary = sync.OnceValues(func() (*glossaryIndex, error) {
	var doc struct {
		Terms []GlossaryEntry `yaml:"terms"`
	}
	if err := yaml.Unmarshal(glossaryYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode ballet glossary: %w", err)
	}

	idx := &glossaryIndex{
		entries: doc.Terms,
		byTerm:  make(map[string]int, len(doc.Terms)*2),
	}
	for i, entry := range doc.Terms {
		n := normalize(entry.Term)
		idx.byTerm[n] = i
		if singular := stripTrailingS(n); singular != n {
			if _, taken := idx.byTerm[singular]; !taken {
				idx.byTerm[singular] = i
			}
		}
	}
	for k := range idx.byTerm {
		idx.keys = append(idx.keys, k)
	}
	slices.SortFunc(idx.keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return idx, nil
})

func Glossary() ([]GlossaryEntry, error) {
	idx, err := loadGlossary()
	if err != nil {
		return nil, err
	}
	return slices.Clone(idx.entries), nil
}

// SearchGlossary returns entries whose term or description contains the query, ignoring accents and case.
func SearchGlossary(query string) ([]GlossaryEntry, error) {
	idx, err := loadGlossary()
	if err != nil {
		return nil, err
	}
	q := normalize(query)
	if q == "" {
		return slices.Clone(idx.entries), nil
	}
	var result []GlossaryEntry
	for _, e := range idx.entries {
		if strings.Contains(normalize(e.Term), q) || strings.Contains(normalize(e.Description), q) {
			result = append(result, e)
		}
	}
	return result, nil
}

// MatchGlossary finds the glossary entry describing an exercise. The name falls back
// to the catalog name of exerciseID. Matching ignores accents, case and plurals.
func MatchGlossary(exerciseID, exerciseName string) (*GlossaryEntry, bool) {
	idx, err := loadGlossary()
	if err != nil {
		return nil, false
	}

	name := exerciseName
	if name == "" {
		name = catalogName(exerciseID)
	}
	if name == "" {
		return nil, false
	}

	n := normalize(name)
	fromID := normalize(strings.ReplaceAll(exerciseID, "_", " "))
	candidates := []string{n, stripTrailingS(n), fromID, stripTrailingS(fromID)}
	if fields := strings.Fields(n); len(fields) > 0 {
		if first := stripTrailingS(fields[0]); len(first) > 3 {
			candidates = append(candidates, first)
		}
	}
	for _, c := range candidates {
		if i, ok := idx.byTerm[c]; ok {
			return &idx.entries[i], true
		}
	}

	// most specific term contained in the name
	for _, k := range idx.keys {
		if len(k) > 3 && strings.Contains(n, k) {
			return &idx.entries[idx.byTerm[k]], true
		}
	}
	return nil, false
}

func catalogName(exerciseID string) string {
	catalog, err := loadCatalog()
	if err != nil {
		return ""
	}
	for _, ex := range catalog {
		if ex.ID == exerciseID {
			return ex.Name
		}
	}
	return ""
}

func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.NewReplacer("'", "", "’", "").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}

func stripTrailingS(s string) string {
	return strings.TrimSuffix(s, "s")
}
