package program

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusInProgress SessionStatus = "in-progress"
	StatusCompleted  SessionStatus = "completed"
	StatusSkipped    SessionStatus = "skipped"
	StatusPartial    SessionStatus = "partial"
)

// SessionKey identifies the single session a program may have on a date.
type SessionKey struct {
	Date      Date
	ProgramID string
}

func (k SessionKey) String() string {
	return k.Date.String() + "/" + k.ProgramID
}

type SetLog struct {
	ID        string  `json:"id"`
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	IsWarmup  bool    `json:"isWarmup"`
	IsAmrap   bool    `json:"isAmrap,omitempty"`
	// 1-10
	RPE int `json:"rpe,omitempty"`
	// seconds
	RestDuration int       `json:"restDuration,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type ActivityLog struct {
	ActivityID   string         `json:"activityId"`
	TrackingType TrackingType   `json:"trackingType"`
	Sets         []SetLog       `json:"sets,omitempty"`
	Duration     int            `json:"duration,omitempty"` // minutes
	Completed    bool           `json:"completed,omitempty"`
	CustomValues map[string]any `json:"customValues,omitempty"`
}

type Session struct {
	ID         string        `json:"id"`
	ProgramID  string        `json:"programId"`
	Date       Date          `json:"date"`
	Status     SessionStatus `json:"status"`
	StartTime  *time.Time    `json:"startTime,omitempty"`
	EndTime    *time.Time    `json:"endTime,omitempty"`
	Duration   *int          `json:"duration,omitempty"` // minutes
	Activities []ActivityLog `json:"activities"`
	Notes      string        `json:"notes,omitempty"`
	SkipReason string        `json:"skipReason,omitempty"`

	// ballet: what to work on next time
	PracticeNext string `json:"practiceNext,omitempty"`
	// GZCLP: rotation day (1-4) this session performs
	WorkoutDay int `json:"workoutDay,omitempty"`
}

func NewSessionID() string {
	return "session_" + uuid.NewString()
}

func NewSetID() string {
	return "set_" + uuid.NewString()
}

func (s *Session) Key() SessionKey {
	return SessionKey{Date: s.Date, ProgramID: s.ProgramID}
}

func (s *Session) ActivityLog(activityID string) *ActivityLog {
	for i := range s.Activities {
		if s.Activities[i].ActivityID == activityID {
			return &s.Activities[i]
		}
	}
	return nil
}

// UpsertActivityLog replaces the log for the same activity, or appends it.
func (s *Session) UpsertActivityLog(log ActivityLog) {
	if existing := s.ActivityLog(log.ActivityID); existing != nil {
		*existing = log
		return
	}
	s.Activities = append(s.Activities, log)
}
