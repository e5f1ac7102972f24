package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetPictureTool(srv, svc)
	registerRandomPictureTool(srv, svc)
	registerGalleryTool(srv, svc)
}

func registerGetPictureTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_picture",
		mcp.WithDescription("Fetch the Astronomy Picture of the Day for a date, or the latest one."),
		mcp.WithString("date",
			mcp.Description("Day to fetch as YYYY-MM-DD, between 2000-01-01 and today. Omit for the latest picture."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		p, err := svc.Picture(ctx, args.Date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(pictureDTO(p))
	})
}

func registerRandomPictureTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"random_picture",
		mcp.WithDescription("Fetch the picture of a uniformly random day since 2000-01-01."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := svc.Random(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(pictureDTO(p))
	})
}

func registerGalleryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"gallery",
		mcp.WithDescription("List the image pictures of the last days, most recent first. Videos are skipped."),
		mcp.WithString("days",
			mcp.Description(fmt.Sprintf("Window ending today such as 12, 30d or 2w. Defaults to %d, at most %d.",
				apod.GalleryDays, apod.MaxGalleryDays)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window := request.GetString("days", "")

		pics, days, err := svc.Gallery(ctx, window)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dtos := make([]PictureDTO, 0, len(pics))
		for i := range pics {
			dtos = append(dtos, pictureDTO(&pics[i]))
		}
		return toJSONResult(map[string]any{
			"days":     days,
			"window":   timeutil.FormatDays(days),
			"count":    len(dtos),
			"pictures": dtos,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
