package repo

import (
	"strings"

	"github.com/2beens/practicetracker/internal/tracker/program"
)

const (
	programListKey    = "programs:list"
	legacyProgramKey  = "program:current"
	programKeyPrefix  = "programs:"
	activityKeyPrefix = "activities:"
	sessionKeyPrefix  = "sessions:"
)

func programKey(id string) string {
	return programKeyPrefix + id
}

func activitiesKey(programID string) string {
	return activityKeyPrefix + programID
}

func sessionKey(k program.SessionKey) string {
	return sessionKeyPrefix + k.Date.String() + ":" + k.ProgramID
}

func workoutDaysKey(programID string) string {
	return "gzclp:" + programID + ":days"
}

func prescriptionsKey(programID string) string {
	return "gzclp:" + programID + ":weights"
}

// parseSessionKey is the inverse of sessionKey.
func parseSessionKey(key string) (program.SessionKey, bool) {
	rest, ok := strings.CutPrefix(key, sessionKeyPrefix)
	if !ok {
		return program.SessionKey{}, false
	}
	dateStr, programID, ok := strings.Cut(rest, ":")
	if !ok || programID == "" {
		return program.SessionKey{}, false
	}
	date, err := program.ParseDate(dateStr)
	if err != nil {
		return program.SessionKey{}, false
	}
	return program.SessionKey{Date: date, ProgramID: programID}, true
}
