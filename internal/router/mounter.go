// Package router groups feature modules under the versioned API prefix.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rubhub/catalog/internal/deps"
)

const APIPrefix = "/api/v1"

// MountFunc registers one module's routes on r.
type MountFunc func(r *gin.RouterGroup, container *deps.Container)

type Mounter struct {
	container *deps.Container
	prefix    string
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container, prefix: APIPrefix}
}

// Public returns a group under the API prefix that anyone may call.
func (m *Mounter) Public(r gin.IRouter) *RouteGroup {
	return m.group(r)
}

// Authenticated returns a group under the API prefix where authenticate runs
// before every handler.
func (m *Mounter) Authenticated(r gin.IRouter, authenticate gin.HandlerFunc) *RouteGroup {
	if authenticate == nil {
		panic("router: authenticated group without auth middleware")
	}
	return m.group(r).Use(authenticate)
}

func (m *Mounter) group(r gin.IRouter) *RouteGroup {
	return &RouteGroup{group: r.Group(m.prefix), container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount runs each MountFunc against the group, in order.
func (rg *RouteGroup) Mount(modules ...MountFunc) *RouteGroup {
	for _, mount := range modules {
		mount(rg.group, rg.container)
	}
	return rg
}

// Group nests a sub-path that inherits the group's middleware.
func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path), container: rg.container}
}

func (rg *RouteGroup) Use(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
