/*
server.go - MCP server composition root

PURPOSE:
  Creates the MCP server instance and registers every tool, resource,
  and prompt. This is the wiring layer: concrete dependencies are
  created by the caller and injected here. No business logic lives in
  this package - handlers translate between the protocol and the
  leave core, nothing more.

SURFACE:
  tools:     apply_leave, check_balance, get_leave_history, greet_user
  resources: holidays://upcoming, greeting://{name}
  prompts:   leave_email, weather

ERROR RENDERING:
  Core errors arrive as tagged values (leave.Err*) and are rendered as
  tool error results. They are never raised as protocol faults.

SEE ALSO:
  - tools.go, resources.go, prompts.go: handler implementations
  - cmd/server/main.go: transport selection and startup
*/
package api

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/joyamit/leave-manager/leave"
	"github.com/joyamit/leave-manager/weather"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Handler holds the dependencies shared by all MCP handlers.
type Handler struct {
	engine   *leave.Engine
	dir      *leave.Directory
	calendar *leave.Calendar
	weather  *weather.Client
	log      zerolog.Logger
	now      func() time.Time
}

// NewHandler creates the handler set. The weather client may not be nil;
// pass weather.New() when no override is needed.
func NewHandler(engine *leave.Engine, dir *leave.Directory, calendar *leave.Calendar, wc *weather.Client, log zerolog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		dir:      dir,
		calendar: calendar,
		weather:  wc,
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the handler clock. Tests only.
func (h *Handler) SetClock(now func() time.Time) { h.now = now }

// NewServer creates the MCP server with all capabilities registered.
func NewServer(h *Handler) *server.MCPServer {
	s := server.NewMCPServer(
		"LeaveManager",
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerTools(s, h)
	registerResources(s, h)
	registerPrompts(s, h)

	return s
}

func serverInstructions() string {
	return `LeaveManager tracks employee leave entitlements.

Use apply_leave to submit a request (dates are YYYY-MM-DD, end inclusive),
check_balance for remaining days, and get_leave_history for past requests.
Employee identifiers look like E001. The holidays://upcoming resource lists
company holidays from today onward, and greeting://{name} renders a
personalized greeting. The leave_email prompt drafts a request email for a
known employee without touching balances.`
}
