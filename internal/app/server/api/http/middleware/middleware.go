package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects the middlewares of the next handler group.
type Container struct {
	items huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(m func(huma.Context, func(huma.Context))) {
	c.items = append(c.items, m)
}

// GetAllAndClear hands out the collected middlewares and starts a new group.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.items
	c.items = nil
	if out == nil {
		out = huma.Middlewares{}
	}
	return out
}
