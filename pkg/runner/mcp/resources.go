package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerLatestResource(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerLatestResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"apod://latest",
		"Latest Picture",
		mcp.WithResourceDescription("The most recent Astronomy Picture of the Day."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		p, err := svc.Picture(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, pictureDTO(p))
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"apod://days/{date}",
		"Picture of a Day",
		mcp.WithTemplateDescription("The Astronomy Picture of the Day for a YYYY-MM-DD date."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		p, err := svc.Picture(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, pictureDTO(p))
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
