package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/foomo/notion-jarkup/service"
	"github.com/foomo/notion-jarkup/service/vo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const Version = "0.1.0"

type ConvertBlockRequest struct {
	BlockID string `json:"blockId"` // Notion page or block id
	Format  string `json:"format"`  // json, html or markdown
}

type ConvertBlockResponse struct {
	Document *vo.Document `json:"document"`
}

type BookmarkPreviewRequest struct {
	URL string `json:"url"`
}

type BookmarkPreviewResponse struct {
	URL     string              `json:"url"`
	Preview *vo.BookmarkPreview `json:"preview"`
}

// NewServer creates a new MCP server with the convertBlock and bookmarkPreview tools
func NewServer(serviceInstance service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Notion Jarkup MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	convertBlockTool := mcp.NewTool("convertBlock",
		mcp.WithDescription("Convert the children of a Notion page or block into jarkup components, HTML or markdown"),
		mcp.WithString("blockId",
			mcp.Required(),
			mcp.Description("The id of the Notion page or block to convert"),
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum(string(vo.FormatJSON), string(vo.FormatHTML), string(vo.FormatMarkdown)),
		),
	)
	s.AddTool(convertBlockTool, mcp.NewTypedToolHandler(getConvertBlockHandler(serviceInstance)))

	bookmarkPreviewTool := mcp.NewTool("bookmarkPreview",
		mcp.WithDescription("Fetch the title, description and image a web page declares about itself"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The http(s) URL of the page"),
		),
	)
	s.AddTool(bookmarkPreviewTool, mcp.NewTypedToolHandler(getBookmarkPreviewHandler(serviceInstance)))

	return s
}

func getConvertBlockHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args ConvertBlockRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ConvertBlockRequest) (*mcp.CallToolResult, error) {
		if args.BlockID == "" {
			return mcp.NewToolResultError("blockId is required"), nil
		}
		format, err := vo.ParseFormat(args.Format)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		document, err := serviceInstance.GetDocument(ctx, args.BlockID, format)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to convert block: %v", err)), nil
		}

		return jsonResult(ConvertBlockResponse{Document: document})
	}
}

func getBookmarkPreviewHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args BookmarkPreviewRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args BookmarkPreviewRequest) (*mcp.CallToolResult, error) {
		if args.URL == "" {
			return mcp.NewToolResultError("url is required"), nil
		}

		preview, err := serviceInstance.GetBookmarkPreview(ctx, args.URL)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get bookmark preview: %v", err)), nil
		}

		return jsonResult(BookmarkPreviewResponse{URL: args.URL, Preview: preview})
	}
}

func jsonResult(response any) (*mcp.CallToolResult, error) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}
