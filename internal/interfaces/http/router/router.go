package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIPrefix is where every versioned resource group is mounted
const APIPrefix = "/api/v1"

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// resourceGroup collects the routes of one resource under a common prefix.
// Routes are mounted in declaration order.
type resourceGroup struct {
	prefix string
	routes []route
}

func newResourceGroup(prefix string) *resourceGroup {
	return &resourceGroup{prefix: prefix}
}

func (g *resourceGroup) get(p string, handlers ...gin.HandlerFunc) *resourceGroup {
	return g.add(http.MethodGet, p, handlers)
}

func (g *resourceGroup) post(p string, handlers ...gin.HandlerFunc) *resourceGroup {
	return g.add(http.MethodPost, p, handlers)
}

func (g *resourceGroup) add(method, p string, handlers []gin.HandlerFunc) *resourceGroup {
	g.routes = append(g.routes, route{method: method, path: p, handlers: handlers})
	return g
}

// paths lists "METHOD /full/path" for every route once mounted under base
func (g *resourceGroup) paths(base string) []string {
	out := make([]string, 0, len(g.routes))
	for _, r := range g.routes {
		out = append(out, r.method+" "+path.Join(base, g.prefix, r.path))
	}
	return out
}

func (g *resourceGroup) mount(rg *gin.RouterGroup) {
	group := rg.Group(g.prefix)
	for _, r := range g.routes {
		group.Handle(r.method, r.path, r.handlers...)
	}
}

// mountAPI mounts groups under APIPrefix and logs each route at debug
func mountAPI(engine *gin.Engine, log *zap.Logger, groups ...*resourceGroup) {
	api := engine.Group(APIPrefix)
	for _, g := range groups {
		g.mount(api)
		for _, p := range g.paths(APIPrefix) {
			log.Debug("Route mounted", zap.String("route", p))
		}
	}
}
