package calendar_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/2beens/practicetracker/internal/tracker/calendar"
	"github.com/2beens/practicetracker/internal/tracker/gzclp"
	"github.com/2beens/practicetracker/internal/tracker/program"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	today     = program.MustParseDate("2024-01-15") // a Monday
	createdAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

func fixedToday() program.Date {
	return today
}

func TestService_Agenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockagendaRepo(ctrl)
	svc := calendar.NewService(repoMock, fixedToday)

	strength := program.Program{ID: "s", Name: "Strength", Type: program.TypeWeightlifting, Schedule: program.Weekly{Days: []time.Weekday{time.Tuesday}}, IsActive: true, CreatedAt: createdAt}
	paused := program.Program{ID: "x", Name: "Paused", Type: program.TypeSkill, Schedule: program.Flexible{}, IsActive: false, CreatedAt: createdAt}
	lifting := program.Program{ID: "g", Name: "GZCLP", Type: program.TypeGZCLP, Schedule: program.Rotation{}, IsActive: true, CreatedAt: createdAt, CurrentWeek: 1, LastWorkoutDay: 1}

	days := []gzclp.WorkoutDay{
		{DayNumber: 1, Name: "Day 1", T1ExerciseID: "g_squat", T2ExerciseID: "g_bench", T3ExerciseIDs: []string{"g_lat"}},
		{DayNumber: 2, Name: "Day 2", T1ExerciseID: "g_bench", T2ExerciseID: "g_rdl", T3ExerciseIDs: []string{"g_curl"}},
	}
	gActivities := []program.Activity{
		{ID: "g_squat", Name: "Squat", StartingWeight: 135},
		{ID: "g_bench", Name: "Bench", StartingWeight: 95},
		{ID: "g_lat", Name: "Lat", StartingWeight: 50},
		{ID: "g_rdl", Name: "RDL", StartingWeight: 115},
		{ID: "g_curl", Name: "Curl", StartingWeight: 20},
	}
	pinned := &program.Session{ID: "gs", ProgramID: "g", Date: today, Status: program.StatusInProgress, WorkoutDay: 1}

	repoMock.EXPECT().ListPrograms(gomock.Any()).Return([]program.Program{strength, paused, lifting}, nil)
	repoMock.EXPECT().GetActivities(gomock.Any(), "s").Return([]program.Activity{{ID: "a", Name: "Deadlift"}}, nil)
	repoMock.EXPECT().GetActivities(gomock.Any(), "g").Return(gActivities, nil)
	repoMock.EXPECT().SessionsInRange(gomock.Any(), today, today.AddDays(2)).
		Return(map[program.SessionKey]*program.Session{{Date: today, ProgramID: "g"}: pinned}, nil)
	repoMock.EXPECT().GetWorkoutDays(gomock.Any(), "g").Return(days, nil)
	repoMock.EXPECT().GetPrescriptions(gomock.Any(), "g").Return([]gzclp.Prescription{{ActivityID: "g_bench", Tier: program.TierT1, Weight: 100}}, nil)

	agenda, err := svc.Agenda(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, agenda, 3)

	// today: the started GZCLP session keeps day 1
	require.Len(t, agenda[0].Sessions, 1)
	monday := agenda[0].Sessions[0]
	assert.Equal(t, "g", monday.ProgramID)
	assert.Same(t, pinned, monday.Session)
	require.NotNil(t, monday.Workout)
	assert.Equal(t, 1, monday.Workout.DayNumber)
	assert.Equal(t, "Squat", monday.Activities[0].Name)

	// tuesday: strength first (list order), then GZCLP showing next day 2
	require.Len(t, agenda[1].Sessions, 2)
	assert.Equal(t, "s", agenda[1].Sessions[0].ProgramID)
	tuesday := agenda[1].Sessions[1]
	require.NotNil(t, tuesday.Workout)
	assert.Equal(t, 2, tuesday.Workout.DayNumber)
	assert.Equal(t, 100.0, tuesday.Workout.Exercises[0].Weight)
	assert.Len(t, tuesday.Activities, 3)
}

func TestService_Agenda_Window(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockagendaRepo(ctrl)
	svc := calendar.NewService(repoMock, fixedToday)

	_, err := svc.Agenda(context.Background(), calendar.MaxWindowDays+1)
	assert.ErrorIs(t, err, program.ErrValidation)

	repoMock.EXPECT().ListPrograms(gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().SessionsInRange(gomock.Any(), today, today.AddDays(calendar.DefaultWindowDays-1)).Return(nil, nil)
	agenda, err := svc.Agenda(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, agenda)
}

func TestService_Agenda_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockagendaRepo(ctrl)
	svc := calendar.NewService(repoMock, fixedToday)

	repoMock.EXPECT().ListPrograms(gomock.Any()).Return(nil, assert.AnError)
	_, err := svc.Agenda(context.Background(), 7)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestICal(t *testing.T) {
	agenda := []calendar.DayAgenda{
		{
			Date: today,
			Sessions: []calendar.ScheduledSession{
				{
					ProgramID: "s", ProgramName: "Strength", ProgramType: program.TypeWeightlifting, Date: today,
					Activities: []program.Activity{{Name: "Deadlift"}},
				},
				{
					ProgramID: "b", ProgramName: "Ballet", ProgramType: program.TypeBallet, Date: today,
					Session: &program.Session{Status: program.StatusSkipped},
				},
			},
		},
	}

	out := calendar.ICal(agenda, time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "UID:2024-01-15-s@practicetracker")
	assert.Contains(t, out, "SUMMARY:Strength")
	assert.Contains(t, out, "SUMMARY:Ballet [skipped]")
	assert.Contains(t, out, "STATUS:CANCELLED")
	assert.Contains(t, out, "STATUS:TENTATIVE")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240115")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240116")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}
