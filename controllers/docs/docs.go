// Package docsControllers serves the generated API documentation.
package docsControllers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPISpec []byte

const viewerHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Storefront API Docs</title>
  <meta charset="utf-8"/>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/docs/openapi.json', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`

// GET /docs/openapi.json
func OpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPISpec)
}

// GET /docs
func Viewer(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(viewerHTML))
}
