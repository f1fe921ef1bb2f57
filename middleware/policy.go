package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Access int

const (
	AdminOnly Access = iota
	Public
)

// AccessTable maps a resource and an HTTP method to the access it requires.
// Anything not listed is admin only.
type AccessTable map[string]map[string]Access

func (t AccessTable) Lookup(resource, method string) Access {
	if method == http.MethodHead {
		method = http.MethodGet
	}
	if access, ok := t[resource][method]; ok {
		return access
	}
	return AdminOnly
}

// APIAccess is the access table of the JSON API.
var APIAccess = AccessTable{
	"auth":     {http.MethodPost: Public},
	"contact":  {http.MethodPost: Public},
	"projects": {http.MethodGet: Public},
	"blogs":    {http.MethodGet: Public},
	"pages":    {http.MethodGet: Public},
	"media":    {},
	"users":    {},
	"settings": {},
}

// SiteAccess is the access table of the rendered admin pages.
var SiteAccess = AccessTable{
	"admin":      {},
	"admin-auth": {http.MethodGet: Public, http.MethodPost: Public},
}

// Policy consults an AccessTable before handing a request to its guard.
type Policy struct {
	table AccessTable
	guard *Guard
}

func NewPolicy(table AccessTable, guard *Guard) *Policy {
	return &Policy{table: table, guard: guard}
}

// Authorize returns the middleware for resource. Public requests never reach
// the guard.
func (p *Policy) Authorize(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.table.Lookup(resource, c.Request.Method) == Public {
			c.Next()
			return
		}
		p.guard.Handle(c)
	}
}
