package middleware

import (
	midsec "conectify/middleware/security"

	"github.com/gin-gonic/gin"
)

var authOpts *midsec.Options

// Config installs the auth options used by the route wrappers.
func Config(opts *midsec.Options) { authOpts = opts }

type RouteOpt struct {
	IsAuth bool
}

func POST(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.POST(path, midsec.Middleware(authOpts), handler)
	} else {
		r.POST(path, handler)
	}
}

func GET(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.GET(path, midsec.Middleware(authOpts), handler)
	} else {
		r.GET(path, handler)
	}
}
