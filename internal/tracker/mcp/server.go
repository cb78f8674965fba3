package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the agenda, programs, GZCLP planning
// and the ballet glossary. Mounted at /mcp by the service and served over stdio by cmd/tracker_mcp.
func NewServer(agenda agendaSource, workouts workoutSource, programs programLister, version string) *mcp.Server {
	h := NewHandler(NewContextService(agenda, workouts, programs))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "practice-tracker",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_agenda",
		Description: "Returns the scheduled practice sessions for the next days starting today, with session status (started, skipped, completed) and the planned GZCLP workout where relevant. Arg: days (default 7, max 90).",
	}, h.GetAgendaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_programs",
		Description: "Returns all practice programs (id, name, type, schedule, active flag). Use to find program ids.",
	}, h.ListProgramsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_next_gzclp_day",
		Description: "Returns the next GZCLP workout day in the rotation with the weight, sets and reps for every exercise. Optional program_id; defaults to the first active GZCLP program.",
	}, h.GetNextGZCLPDayTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_next_weight",
		Description: "Computes the next-cycle weight for a GZCLP tier (T1, T2, T3) from the sets of one completed cycle. Warmup sets are ignored; the AMRAP set decides progression.",
	}, h.GetNextWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_ballet_glossary",
		Description: "Searches the ballet glossary by term or description, ignoring accents. Returns term, pronunciation and description.",
	}, h.SearchBalletGlossaryTool())

	return s
}
