package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func reply(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func TestResourceGroup_Mount(t *testing.T) {
	engine := gin.New()
	g := newResourceGroup("/widgets").
		get("/list", reply("list")).
		post("/build", reply("build"))
	mountAPI(engine, zap.NewNop(), g)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"get route", http.MethodGet, "/api/v1/widgets/list", http.StatusOK, "list"},
		{"post route", http.MethodPost, "/api/v1/widgets/build", http.StatusOK, "build"},
		{"wrong method", http.MethodPost, "/api/v1/widgets/list", http.StatusNotFound, ""},
		{"missing prefix", http.MethodGet, "/widgets/list", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestResourceGroup_HandlerChain(t *testing.T) {
	engine := gin.New()
	var order []string
	step := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			order = append(order, name)
			c.Next()
		}
	}
	mountAPI(engine, zap.NewNop(), newResourceGroup("/chain").get("/", step("guard"), step("handler")))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chain/", nil))

	assert.Equal(t, []string{"guard", "handler"}, order)
}

func TestResourceGroup_Paths(t *testing.T) {
	g := newResourceGroup("/variants").
		post("/preview", reply("")).
		get("/events", reply(""))

	assert.Equal(t, []string{
		"POST /api/v1/variants/preview",
		"GET /api/v1/variants/events",
	}, g.paths(APIPrefix))
}

func TestMountAPI_LogsRoutes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mountAPI(gin.New(), zap.New(core),
		newResourceGroup("/a").get("/x", reply("")),
		newResourceGroup("/b").post("/y", reply("")),
	)

	entries := logs.FilterMessage("Route mounted").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "GET /api/v1/a/x", entries[0].ContextMap()["route"])
	assert.Equal(t, "POST /api/v1/b/y", entries[1].ContextMap()["route"])
}
