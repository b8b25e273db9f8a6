package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/joyamit/leave-manager/leave"
)

const (
	holidaysURI    = "holidays://upcoming"
	greetingScheme = "greeting://"
)

func registerResources(s *server.MCPServer, h *Handler) {
	s.AddResource(mcp.NewResource(holidaysURI, "Upcoming Holidays",
		mcp.WithResourceDescription("Company holidays on or after today, in calendar order"),
		mcp.WithMIMEType("text/plain"),
	), h.UpcomingHolidays)

	s.AddResourceTemplate(mcp.NewResourceTemplate(greetingScheme+"{name}", "Personalized Greeting",
		mcp.WithTemplateDescription("A personalized greeting for the given name"),
		mcp.WithTemplateMIMEType("text/plain"),
	), h.Greeting)
}

// UpcomingHolidays returns one content entry per upcoming holiday. A date
// past every seeded holiday yields an empty list, not a sentinel.
func (h *Handler) UpcomingHolidays(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	now := h.now()
	today := leave.NewDate(now.Year(), now.Month(), now.Day())

	var contents []mcp.ResourceContents
	for _, hol := range h.calendar.Upcoming(today) {
		contents = append(contents, mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("%s: %s", hol.Date, hol.Name),
		})
	}
	return contents, nil
}

func (h *Handler) Greeting(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := strings.TrimPrefix(req.Params.URI, greetingScheme)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     leave.Greeting(name),
		},
	}, nil
}
