package ballet

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/2beens/practicetracker/internal/tracker/program"

	"gopkg.in/yaml.v3"
)

type Section string

const (
	SectionBarre    Section = "barre"
	SectionCenter   Section = "center"
	SectionPointe   Section = "pointe"
	SectionCooldown Section = "cooldown"
)

var sectionLabels = map[Section]string{
	SectionBarre:    "Barre",
	SectionCenter:   "Center",
	SectionPointe:   "Pointe",
	SectionCooldown: "Cool-down",
}

func (s Section) Label() string {
	return sectionLabels[s]
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var levelLabels = map[Level]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
}

func (l Level) Valid() bool {
	_, ok := levelLabels[l]
	return ok
}

type ClassType string

const (
	ClassFull       ClassType = "full"
	ClassBarreOnly  ClassType = "barre-only"
	ClassCenterOnly ClassType = "center-only"
	ClassPointe     ClassType = "pointe"
)

var classSections = map[ClassType][]Section{
	ClassFull:       {SectionBarre, SectionCenter, SectionCooldown},
	ClassBarreOnly:  {SectionBarre, SectionCooldown},
	ClassCenterOnly: {SectionCenter, SectionCooldown},
	ClassPointe:     {SectionPointe, SectionCooldown},
}

var classLabels = map[ClassType]string{
	ClassFull:       "Full Class",
	ClassBarreOnly:  "Barre Only",
	ClassCenterOnly: "Center Only",
	ClassPointe:     "Pointe",
}

func (c ClassType) Valid() bool {
	_, ok := classSections[c]
	return ok
}

type Exercise struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Section Section `yaml:"section" json:"section"`
	// minutes
	DefaultDuration int     `yaml:"defaultDuration" json:"defaultDuration"`
	Levels          []Level `yaml:"levels" json:"levels"`
}

//go:embed catalog.yaml
var catalogYAML []byte

var loadCatalog = sync.OnceValues(func() ([]Exercise, error) {
	var doc struct {
		Exercises []Exercise `yaml:"exercises"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode ballet catalog: %w", err)
	}
	return doc.Exercises, nil
})

// Catalog returns every known exercise in class order.
func Catalog() ([]Exercise, error) {
	exercises, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return slices.Clone(exercises), nil
}

// ExercisesForClass filters the catalog by level and by the sections the class type covers.
func ExercisesForClass(classType ClassType, level Level) ([]Exercise, error) {
	sections, ok := classSections[classType]
	if !ok {
		return nil, program.Invalid("invalid class type: %s", classType)
	}
	if !level.Valid() {
		return nil, program.Invalid("invalid level: %s", level)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	var result []Exercise
	for _, ex := range catalog {
		if slices.Contains(ex.Levels, level) && slices.Contains(sections, ex.Section) {
			result = append(result, ex)
		}
	}
	return result, nil
}
