package graphql

import (
	"encoding/json"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL over GET (query string) and POST (JSON body)
type Handler struct {
	schema *graphqlgo.Schema
}

// NewHandler creates a new Handler
func NewHandler(schema *graphqlgo.Schema) *Handler {
	return &Handler{schema: schema}
}

// RegisterGraphQLRoutes registers the endpoint and the explorer page
func (h *Handler) RegisterGraphQLRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/", GraphiQL)
	e.GET("/graphql", h.Serve, m...)
	e.POST("/graphql", h.Serve, m...)
}

func (h *Handler) Serve(c echo.Context) error {
	var req request
	switch c.Request().Method {
	case http.MethodGet:
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid variables")
			}
		}
	default:
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing query")
	}

	resp := h.schema.Exec(c.Request().Context(), req.Query, req.OperationName, req.Variables)
	return c.JSON(http.StatusOK, resp)
}

// GraphiQL serves the interactive explorer pointed at /graphql
func GraphiQL(c echo.Context) error {
	return c.HTML(http.StatusOK, graphiqlPage)
}

const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>GraphiQL</title>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css">
  <style>body { height: 100vh; margin: 0; } #graphiql { height: 100vh; }</style>
</head>
<body>
  <div id="graphiql">Loading...</div>
  <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
  <script>
    const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
    ReactDOM.createRoot(document.getElementById('graphiql')).render(
      React.createElement(GraphiQL, { fetcher: fetcher })
    );
  </script>
</body>
</html>
`
