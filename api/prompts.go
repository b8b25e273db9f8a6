package api

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/joyamit/leave-manager/leave"
)

func registerPrompts(s *server.MCPServer, h *Handler) {
	s.AddPrompt(mcp.NewPrompt("leave_email",
		mcp.WithPromptDescription("Generate a leave request email draft for a known employee"),
		mcp.WithArgument("employee_id", mcp.RequiredArgument(), mcp.ArgumentDescription("Employee identifier, e.g. E001")),
		mcp.WithArgument("start_date", mcp.RequiredArgument(), mcp.ArgumentDescription("First day of leave")),
		mcp.WithArgument("end_date", mcp.RequiredArgument(), mcp.ArgumentDescription("Last day of leave")),
		mcp.WithArgument("reason", mcp.RequiredArgument(), mcp.ArgumentDescription("Reason for the request")),
	), h.LeaveEmail)

	s.AddPrompt(mcp.NewPrompt("weather",
		mcp.WithPromptDescription("Get the current weather for a city"),
		mcp.WithArgument("city", mcp.RequiredArgument(), mcp.ArgumentDescription("City name, e.g. kolkata")),
	), h.Weather)
}

// LeaveEmail renders the email template with the supplied fields
// verbatim. No date validation and no balance/history access here;
// this is independent of apply_leave.
func (h *Handler) LeaveEmail(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	body, err := leave.LeaveEmail(h.dir,
		leave.EmployeeID(args["employee_id"]),
		args["start_date"], args["end_date"], args["reason"])
	if err != nil {
		return nil, err
	}
	return mcp.NewGetPromptResult("Leave request email draft", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(body)),
	}), nil
}

// Weather fetches a one-line report with a bounded timeout. A failed or
// timed-out fetch degrades to an error string in the prompt text; the
// prompt itself always succeeds.
func (h *Handler) Weather(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	city := req.Params.Arguments["city"]
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}

	var text string
	report, err := h.weather.Current(ctx, city)
	if err != nil {
		h.log.Warn().Err(err).Str("city", city).Msg("weather fetch failed")
		text = fmt.Sprintf("Error fetching weather for %s: %v", city, err)
	} else {
		text = fmt.Sprintf("Here's the latest weather for %s: %s", city, report)
	}
	return mcp.NewGetPromptResult("Current weather", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}
