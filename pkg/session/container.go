package session

import (
	"encoding/json"
	"sort"
)

// Container is the mutable session data of one request. The pointer is the
// identity: it is shared through the request context and never replaced,
// so references taken early observe later restores and clears.
//
// A Container is not safe for concurrent use.
type Container struct {
	data map[string]any
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{data: make(map[string]any)}
}

// Get retrieves a value from session data
func (c *Container) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	val, ok := c.data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (c *Container) GetString(key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an integer value. Numbers decoded from a cookie arrive as
// float64 and are accepted when they have no fractional part.
func (c *Container) GetInt(key string) (int, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (c *Container) GetBool(key string) (bool, bool) {
	val, ok := c.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a JSON-compatible value.
func (c *Container) Set(key string, value any) {
	if c == nil {
		return
	}
	if c.data == nil {
		c.data = make(map[string]any)
	}
	c.data[key] = value
}

// Delete removes a value from session data
func (c *Container) Delete(key string) {
	if c == nil {
		return
	}
	delete(c.data, key)
}

// Clear removes every entry in place.
func (c *Container) Clear() {
	if c == nil {
		return
	}
	clear(c.data)
}

// Merge assigns every entry of values into the container, key by key.
func (c *Container) Merge(values map[string]any) {
	for k, v := range values {
		c.Set(k, v)
	}
}

// Len returns the number of entries.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.data)
}

// Keys returns the keys in sorted order.
func (c *Container) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a shallow copy of the data.
func (c *Container) Values() map[string]any {
	out := make(map[string]any, c.Len())
	if c == nil {
		return out
	}
	for k, v := range c.data {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the data as a JSON object. An empty container is "{}".
func (c *Container) MarshalJSON() ([]byte, error) {
	if c == nil || c.data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.data)
}
