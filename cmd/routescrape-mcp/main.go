// Command routescrape-mcp serves routing extraction as MCP tools over stdio.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/use-agent/routescrape/config"
	"github.com/use-agent/routescrape/extractor"
	"github.com/use-agent/routescrape/logging"
	"github.com/use-agent/routescrape/models"
	"github.com/use-agent/routescrape/trip"
)

func main() {
	cfg := config.Load()
	// stdout carries the MCP protocol.
	logging.Init(cfg.Log, os.Stderr)

	if err := server.ServeStdio(newServer()); err != nil {
		slog.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func newServer() *server.MCPServer {
	s := server.NewMCPServer(
		"routescrape",
		models.Version,
		server.WithToolCapabilities(false),
	)

	extractTool := mcp.NewTool("extract_routing",
		mcp.WithDescription("Extract the trip name, ordered waypoints and directions link from a rendered trip routing page. Returns the record as JSON."),
		mcp.WithString("html",
			mcp.Required(),
			mcp.Description("Full HTML of the rendered routing page"),
		),
	)
	s.AddTool(extractTool, handleExtractRouting)

	summaryTool := mcp.NewTool("summarize_trip",
		mcp.WithDescription("Summarize a trip from extracted routing records, one JSON object per line (one leg per line). Returns per-leg and total distance and driving time."),
		mcp.WithString("jsonl",
			mcp.Required(),
			mcp.Description("Routing records as JSON Lines, in travel order"),
		),
		mcp.WithString("name",
			mcp.Description("Trip name shown in the summary (default: 'trip')"),
		),
	)
	s.AddTool(summaryTool, handleSummarizeTrip)

	return s
}

func handleExtractRouting(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	html, err := request.RequireString("html")
	if err != nil {
		return mcp.NewToolResultError("html is required"), nil
	}

	rec, err := extractor.ExtractHTML(strings.NewReader(html))
	if err != nil {
		se := models.AsScrapeError(err)
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", se.Code, se.Message)), nil
	}

	out, err := encode(rec)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode record: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func handleSummarizeTrip(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonl, err := request.RequireString("jsonl")
	if err != nil {
		return mcp.NewToolResultError("jsonl is required"), nil
	}
	name := request.GetString("name", "trip")

	t, err := trip.Load(name, strings.NewReader(jsonl))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load trip: %v", err)), nil
	}
	return mcp.NewToolResultText(t.String()), nil
}
