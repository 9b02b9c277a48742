// Package openapi describes a command tree as an OpenAPI 3 document.
//
// Every command becomes a POST operation at its slash separated path. The
// multipart form request body lists the command's parameters, so tools that
// submit cmdform forms can be generated or validated from the document.
package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/fields"
	"github.com/getkin/kin-openapi/openapi3"
)

// Build returns the OpenAPI document for the tree rooted at root.
// Hidden commands and parameters are left out.
func Build(root *domain.Command, title, version string) (*openapi3.T, error) {
	if title == "" {
		title = root.Name
	}
	if version == "" {
		version = "0.0.0"
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Version:     version,
			Description: root.Short,
		},
		Paths: openapi3.NewPaths(),
	}

	root.Walk(func(path []string, cmd *domain.Command) bool {
		if cmd.Hidden {
			return false
		}
		doc.Paths.Set("/"+strings.Join(path, "/"), &openapi3.PathItem{
			Post: operation(path, cmd),
		})
		return true
	})

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

func operation(path []string, cmd *domain.Command) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = strings.Join(path, "_")
	op.Summary = cmd.Short
	op.Description = cmd.Help
	op.Tags = []string{path[0]}

	body := openapi3.NewObjectSchema()
	params := fields.Params(cmd, domain.WebRenderOptions())
	for _, p := range params {
		body.WithProperty(p.Name, paramSchema(p))
		if p.Required {
			body.Required = append(body.Required, p.Name)
		}
	}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithFormDataSchema(body),
	}

	op.AddResponse(200, openapi3.NewResponse().WithDescription("Command accepted"))
	if cmd.IsGroup() {
		op.AddResponse(404, openapi3.NewResponse().WithDescription("Unknown sub-command"))
	}
	return op
}

func paramSchema(p domain.Param) *openapi3.Schema {
	var s *openapi3.Schema
	switch p.Type {
	case domain.TypeInt:
		s = openapi3.NewIntegerSchema()
	case domain.TypeFloat:
		s = openapi3.NewFloat64Schema()
	case domain.TypeBool:
		s = openapi3.NewBoolSchema()
	case domain.TypeChoice:
		s = openapi3.NewStringSchema()
		for _, c := range p.Choices {
			s.Enum = append(s.Enum, c)
		}
	case domain.TypeFile:
		s = openapi3.NewStringSchema().WithFormat("binary")
	default:
		s = openapi3.NewStringSchema()
	}
	s.Description = p.Help

	if p.Multiple {
		return openapi3.NewArraySchema().WithItems(s)
	}
	return s
}
