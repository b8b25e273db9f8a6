/*
main.go - Interactive LeaveManager client

PURPOSE:
  A line-oriented client that maps free-text commands to MCP calls over
  the SSE transport. Useful for poking the server without an MCP host.

COMMANDS:
  apply <employee_id> <start> <end> <reason...>   apply_leave tool
  balance <employee_id>                           check_balance tool
  history <employee_id>                           get_leave_history tool
  holidays                                        holidays://upcoming resource
  greet <name>                                    greeting://{name} resource
  email <employee_id> <start> <end> <reason...>   leave_email prompt
  weather <city>                                  weather prompt
  exit                                            quit
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "base URL of the SSE server")
	flag.Parse()

	c, err := client.NewSSEMCPClient(strings.TrimRight(*baseURL, "/") + "/sse")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "leave-manager-client", Version: "0.1.0"}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if strings.EqualFold(line, "exit") {
				return
			}
			dispatch(ctx, c, line)
		}
		fmt.Print("> ")
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  apply <employee_id> <start> <end> <reason...>")
	fmt.Println("  balance <employee_id>")
	fmt.Println("  history <employee_id>")
	fmt.Println("  holidays")
	fmt.Println("  greet <name>")
	fmt.Println("  email <employee_id> <start> <end> <reason...>")
	fmt.Println("  weather <city>")
	fmt.Println("  exit")
	fmt.Println()
}

func dispatch(ctx context.Context, c *client.Client, line string) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "apply":
		if len(args) < 4 {
			fmt.Println("Format: apply E001 2025-01-01 2025-01-05 family vacation")
			return
		}
		callTool(ctx, c, "apply_leave", map[string]any{
			"employee_id": args[0],
			"start_date":  args[1],
			"end_date":    args[2],
			"reason":      strings.Join(args[3:], " "),
		})

	case "balance":
		if len(args) != 1 {
			fmt.Println("Format: balance E001")
			return
		}
		callTool(ctx, c, "check_balance", map[string]any{"employee_id": args[0]})

	case "history":
		if len(args) != 1 {
			fmt.Println("Format: history E001")
			return
		}
		callTool(ctx, c, "get_leave_history", map[string]any{"employee_id": args[0]})

	case "holidays":
		readResource(ctx, c, "holidays://upcoming")

	case "greet":
		if len(args) < 1 {
			fmt.Println("Format: greet Amit")
			return
		}
		readResource(ctx, c, "greeting://"+strings.Join(args, " "))

	case "email":
		if len(args) < 4 {
			fmt.Println("Format: email E001 2025-01-01 2025-01-05 a family event")
			return
		}
		getPrompt(ctx, c, "leave_email", map[string]string{
			"employee_id": args[0],
			"start_date":  args[1],
			"end_date":    args[2],
			"reason":      strings.Join(args[3:], " "),
		})

	case "weather":
		if len(args) < 1 {
			fmt.Println("Format: weather kolkata")
			return
		}
		getPrompt(ctx, c, "weather", map[string]string{"city": strings.Join(args, " ")})

	case "help":
		printHelp()

	default:
		fmt.Println("Sorry, I don't know how to handle that. Try 'help'.")
	}
}

func callTool(ctx context.Context, c *client.Client, name string, args map[string]any) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := c.CallTool(ctx, req)
	if err != nil {
		fmt.Printf("call failed: %v\n", err)
		return
	}
	for _, content := range res.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}
}

func readResource(ctx context.Context, c *client.Client, uri string) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri

	res, err := c.ReadResource(ctx, req)
	if err != nil {
		fmt.Printf("read failed: %v\n", err)
		return
	}
	if len(res.Contents) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, content := range res.Contents {
		if tc, ok := content.(mcp.TextResourceContents); ok {
			fmt.Println(tc.Text)
		}
	}
}

func getPrompt(ctx context.Context, c *client.Client, name string, args map[string]string) {
	req := mcp.GetPromptRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := c.GetPrompt(ctx, req)
	if err != nil {
		fmt.Printf("prompt failed: %v\n", err)
		return
	}
	for _, msg := range res.Messages {
		if tc, ok := msg.Content.(mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}
}
