package server

import (
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/framework"
)

// Context holds shared server resources
type Context struct {
	Engine  *diagnostic.Cached
	Library *framework.Library
}

// NewContext creates a new server context
func NewContext(engine *diagnostic.Cached, library *framework.Library) *Context {
	return &Context{
		Engine:  engine,
		Library: library,
	}
}
