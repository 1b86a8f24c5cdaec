package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List the projects shown in a persona's Projects section, as display items."),
	mcp.WithString("persona",
		mcp.Description("Persona slug (defaults to the site's default persona)"),
	),
	mcp.WithString("language",
		mcp.Description("Only return projects whose primary language matches (case-insensitive)"),
	),
)

// getProfileTool defines the get_profile MCP tool.
var getProfileTool = mcp.NewTool("get_profile",
	mcp.WithDescription("Get a persona's profile: headline, summary, tech stack, experience and links."),
	mcp.WithString("persona",
		mcp.Description("Persona slug (defaults to the site's default persona)"),
	),
	mcp.WithString("format",
		mcp.Description("Output format"),
		mcp.Enum("markdown", "json"),
	),
)

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the page sections in navigation order with their anchors."),
	mcp.WithString("persona",
		mcp.Description("Persona slug (defaults to the site's default persona)"),
	),
)
