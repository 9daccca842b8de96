package resolve

// Context is the ordered mapping of resolved variable values. Keys appear
// in exactly the order they were resolved, which is the only channel
// through which later defaults observe earlier answers.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set records a resolved value. A key is written at most once: later
// writes to the same key are ignored, preserving the invariant that
// resolution never rewrites an answer.
func (c *Context) Set(key string, value any) {
	if _, exists := c.values[key]; exists {
		return
	}
	c.keys = append(c.keys, key)
	c.values[key] = value
}

// Get returns the resolved value for key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key has been resolved.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns the resolved keys in resolution order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len reports the number of resolved keys.
func (c *Context) Len() int {
	return len(c.keys)
}

// Map returns the plain-map view bound into template expressions. The map
// is shared, not copied; callers must treat it as read-only.
func (c *Context) Map() map[string]any {
	return c.values
}
