// Package doc serves the generated OpenAPI document and a browsable viewer.
package doc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"github.com/rubhub/catalog/app/api"
)

// docReader has the shape of swag.ReadDoc.
type docReader func(name ...string) (string, error)

type server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

var (
	localServer      = server{URL: "http://localhost:8080/api/v1", Description: "Local development"}
	stagingServer    = server{URL: "https://staging.rubhub.app/api/v1", Description: "Staging"}
	productionServer = server{URL: "https://rubhub.app/api/v1", Description: "Production"}
)

var bearerScheme = map[string]string{
	"type":         "http",
	"scheme":       "bearer",
	"bearerFormat": "PASETO",
	"description":  "A v2.local PASETO access token",
}

func serversForEnvironment(environment string) []server {
	switch environment {
	case "production":
		return []server{localServer, stagingServer, productionServer}
	case "development", "test":
		return []server{localServer}
	default:
		return []server{localServer, stagingServer}
	}
}

// render adds the environment's servers and the bearer scheme to the
// document produced by swag.
func render(read docReader, environment string) ([]byte, error) {
	raw, err := read()
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var document map[string]any
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}

	document["servers"] = serversForEnvironment(environment)

	components, _ := document["components"].(map[string]any)
	if components == nil {
		components = map[string]any{}
	}
	schemes, _ := components["securitySchemes"].(map[string]any)
	if schemes == nil {
		schemes = map[string]any{}
	}
	schemes["BearerAuth"] = bearerScheme
	components["securitySchemes"] = schemes
	document["components"] = components

	return json.Marshal(document)
}

// swaggerJSON renders the document on first request and serves that copy
// from then on. A failed render is retried on the next request.
func swaggerJSON(read docReader, environment string) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		rendered []byte
	)
	return func(c *gin.Context) {
		mu.Lock()
		if rendered == nil {
			body, err := render(read, environment)
			if err != nil {
				mu.Unlock()
				_ = c.Error(err)
				api.InternalErrorResponse(c, "Failed to load API documentation")
				return
			}
			rendered = body
		}
		body := rendered
		mu.Unlock()

		c.Data(http.StatusOK, "application/json", body)
	}
}

const elementsHTML = `<!DOCTYPE html>
<html>
<head>
    <title>RubHub Catalog API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api apiDescriptionUrl="/swagger/doc.json" router="hash" layout="sidebar"></elements-api>
</body>
</html>`

// Init mounts /swagger/doc.json and the Stoplight Elements viewer under /docs.
func Init(r gin.IRouter, environment string) {
	r.GET("/swagger/doc.json", swaggerJSON(swag.ReadDoc, environment))
	r.GET("/docs/*any", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(elementsHTML))
	})
}
