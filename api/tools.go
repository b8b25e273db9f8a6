package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/joyamit/leave-manager/leave"
)

// =============================================================================
// TOOL REGISTRATION
// =============================================================================

func registerTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("apply_leave",
		mcp.WithDescription("Apply for leave. Decrements the remaining balance and records the request on success."),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee identifier, e.g. E001")),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("First day of leave (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("Last day of leave, inclusive (YYYY-MM-DD)")),
		mcp.WithString("reason", mcp.Required(), mcp.Description("Free-text reason for the request")),
	), h.ApplyLeave)

	s.AddTool(mcp.NewTool("check_balance",
		mcp.WithDescription("Check remaining leave balance for an employee."),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee identifier, e.g. E001")),
	), h.CheckBalance)

	s.AddTool(mcp.NewTool("get_leave_history",
		mcp.WithDescription("List past leave requests for an employee, oldest first."),
		mcp.WithString("employee_id", mcp.Required(), mcp.Description("Employee identifier, e.g. E001")),
	), h.GetLeaveHistory)

	s.AddTool(mcp.NewTool("greet_user",
		mcp.WithDescription("Greet the user based on the current time of day."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name to greet")),
	), h.GreetUser)
}

// =============================================================================
// TOOL HANDLERS
// =============================================================================

func (h *Handler) ApplyLeave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	empID, err := req.RequireString("employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startDate, err := req.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endDate, err := req.RequireString("end_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reason, err := req.RequireString("reason")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	approval, err := h.engine.Apply(ctx, leave.EmployeeID(empID), startDate, endDate, reason)
	if err != nil {
		return h.toolError(err), nil
	}

	h.log.Info().
		Str("employee_id", empID).
		Int("span", approval.Span).
		Str("balance", approval.NewBalance.String()).
		Msg("leave approved")
	return mcp.NewToolResultText(approval.Confirmation()), nil
}

func (h *Handler) CheckBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	empID, err := req.RequireString("employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stmt, err := h.engine.Balance(ctx, leave.EmployeeID(empID))
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(stmt.Statement()), nil
}

func (h *Handler) GetLeaveHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	empID, err := req.RequireString("employee_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lines, err := h.engine.History(ctx, leave.EmployeeID(empID))
	if err != nil {
		return h.toolError(err), nil
	}

	// One content block per history line. The engine guarantees at least
	// one line (the sentinel), so the result is never empty.
	res := &mcp.CallToolResult{}
	for line := range lines {
		res.Content = append(res.Content, mcp.NewTextContent(line))
	}
	return res, nil
}

func (h *Handler) GreetUser(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	now := h.now()
	var greeting string
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		greeting = "Good morning"
	case hour >= 12 && hour < 17:
		greeting = "Good afternoon"
	default:
		greeting = "Good evening"
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s, %s! The current date and time is %s.",
		greeting, name, now.Format("Monday, 02 January 2006, 15:04"))), nil
}

// =============================================================================
// ERROR RENDERING
// =============================================================================

// toolError renders a core error as a tool error result. Client errors
// get the human-readable message; anything else is logged and masked.
func (h *Handler) toolError(err error) *mcp.CallToolResult {
	var ib *leave.InsufficientBalanceError
	switch {
	case errors.As(err, &ib):
		return mcp.NewToolResultError(fmt.Sprintf("Leave denied. You only have %s days left.", ib.Available))
	case errors.Is(err, leave.ErrUnknownEmployee):
		return mcp.NewToolResultError("Invalid employee ID.")
	case leave.IsClientError(err):
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error().Err(err).Msg("tool call failed")
	return mcp.NewToolResultError("internal error")
}
