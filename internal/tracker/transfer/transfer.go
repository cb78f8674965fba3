// Package transfer implements the program export file format and its import rules.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/schedule"
)

const Version = 1

// importable program types; GZCLP state (workout days, weights) is not part of the file
var importableTypes = []program.Type{
	program.TypeWeightlifting,
	program.TypeSkill,
	program.TypeCardio,
	program.TypeCustom,
	program.TypeBallet,
}

type Document struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Program    program.Program    `json:"program"`
	Activities []program.Activity `json:"activities"`
}

func Export(p program.Program, activities []program.Activity, now time.Time) Document {
	if activities == nil {
		activities = []program.Activity{}
	}
	return Document{
		Version:    Version,
		ExportedAt: now.UTC(),
		Program:    p,
		Activities: activities,
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name of an exported program.
func FileName(programName string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(programName)), "-") + ".json"
}

type ImportResult struct {
	Success    bool               `json:"success"`
	Program    *program.Program   `json:"program,omitempty"`
	Activities []program.Activity `json:"activities,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func failed(reason string) ImportResult {
	return ImportResult{Success: false, Error: reason}
}

// Err returns the failure as a validation error, nil on success.
func (r ImportResult) Err() error {
	if r.Success {
		return nil
	}
	return program.Invalid("%s", r.Error)
}

// ValidateProgramExport checks an export file and decodes it. Failures are reported in the result, never as errors.
func ValidateProgramExport(data []byte) ImportResult {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return failed("Failed to parse JSON file")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return failed("Invalid file format")
	}

	if version, ok := obj["version"].(float64); !ok || version != Version {
		return failed("Unsupported export version")
	}

	rawProgram, ok := obj["program"].(map[string]any)
	if !ok {
		return failed("Missing program data")
	}
	if name, ok := rawProgram["name"].(string); !ok || strings.TrimSpace(name) == "" {
		return failed("Invalid program name")
	}
	if typ, ok := rawProgram["type"].(string); !ok || !slices.Contains(importableTypes, program.Type(typ)) {
		return failed("Invalid program type")
	}
	if _, ok := rawProgram["schedule"].(map[string]any); !ok {
		return failed("Invalid schedule")
	}

	rawActivities, ok := obj["activities"].([]any)
	if !ok {
		return failed("Invalid activities data")
	}
	for _, a := range rawActivities {
		activity, ok := a.(map[string]any)
		if !ok {
			return failed("Invalid activity format")
		}
		if name, ok := activity["name"].(string); !ok || strings.TrimSpace(name) == "" {
			return failed("Activity missing name")
		}
	}

	var doc struct {
		Program    json.RawMessage    `json:"program"`
		Activities []program.Activity `json:"activities"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return failed("Invalid activity format")
	}
	var p program.Program
	if err := json.Unmarshal(doc.Program, &p); err != nil {
		if errors.Is(err, program.ErrValidation) {
			return failed("Invalid schedule")
		}
		return failed("Missing program data")
	}
	if err := schedule.Validate(p.Schedule); err != nil {
		return failed("Invalid schedule")
	}
	if _, ok := p.Schedule.(program.Rotation); ok {
		return failed("Invalid schedule")
	}

	activities := doc.Activities
	if activities == nil {
		activities = []program.Activity{}
	}
	return ImportResult{
		Success:    true,
		Program:    &p,
		Activities: activities,
	}
}

// UniqueName appends " (N)" with the smallest N >= 1 that avoids every existing name.
func UniqueName(name string, existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, n := range existing {
		taken[n] = true
	}
	candidate := name
	for n := 1; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	return candidate
}

type PrepareParams struct {
	Program       program.Program
	Activities    []program.Activity
	ExistingNames []string
	Now           time.Time
	// optional, defaults to program.NewID / program.NewActivityID
	NewProgramID  func() string
	NewActivityID func() string
}

// PrepareImportedProgram gives an imported program fresh ids and a unique name, and re-homes its activities.
func PrepareImportedProgram(params PrepareParams) (program.Program, []program.Activity) {
	newProgramID := params.NewProgramID
	if newProgramID == nil {
		newProgramID = program.NewID
	}
	newActivityID := params.NewActivityID
	if newActivityID == nil {
		newActivityID = program.NewActivityID
	}

	p := params.Program
	p.ID = newProgramID()
	p.Name = UniqueName(p.Name, params.ExistingNames)
	p.CreatedAt = params.Now
	p.IsActive = true
	p.CurrentWeek = 0
	p.LastWorkoutDay = 0

	activities := make([]program.Activity, 0, len(params.Activities))
	for _, a := range params.Activities {
		a.ID = newActivityID()
		a.ProgramID = p.ID
		if a.TrackingType == "" {
			a.TrackingType = p.Type.DefaultTrackingType()
		}
		activities = append(activities, a)
	}
	return p, activities
}
