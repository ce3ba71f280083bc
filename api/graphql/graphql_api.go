package graphql

import (
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"github.com/hhyeonhee/ULTRA/graphqlserver"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

// RegisterGraphQLRoutes mounts /graphql and /playground on the root server.
func RegisterGraphQLRoutes(e *echo.Echo, s *warehouse.Session) {
	schema, err := graphqlserver.NewSchema(s)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema (for tests).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *gql.Schema) {
	registerRoutes(e, schema)
}

func registerRoutes(e *echo.Echo, schema *gql.Schema) {
	h := graphqlserver.Handler(schema)
	e.POST("/graphql", echo.WrapHandler(h))
	e.GET("/graphql", echo.WrapHandler(h))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(playgroundHTML))
	})
}

const playgroundHTML = `<!DOCTYPE html>
<html>
<head><title>ULTRA GraphQL</title></head>
<body>
<h3>ULTRA GraphQL</h3>
<textarea id="q" rows="12" cols="80">{ warehouses { name columns selected } }</textarea><br>
<button onclick="run()">Run</button>
<pre id="out"></pre>
<script>
async function run() {
  const res = await fetch('/graphql', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({query: document.getElementById('q').value})
  });
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
}
</script>
</body>
</html>`
