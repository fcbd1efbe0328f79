package sentry

import "fmt"

// Document is one raw JSON object from an API response: a mapping from
// string keys to arbitrary JSON values. Documents are never modified
// after construction.
type Document map[string]any

// Model is the base for every API resource type, such as [Project] or
// [Event]. It presents the raw response document as a read-only view and
// holds the back-reference to the [Client] that produced it, which
// resource navigation methods use to issue further requests.
//
// Extra fields are caller-known values absent from the response body
// itself (for example the owning organization's slug on an [Issue]);
// they resolve through [Model.Get] after the document.
type Model struct {
	client *Client
	doc    Document
	extra  Document
}

// hydrate is called exactly once, by the client's hydration driver, when
// a model is built from a parsed response.
func (m *Model) hydrate(c *Client, doc Document, extra Document) {
	m.client = c
	m.doc = doc
	m.extra = extra
}

// Get returns the value at key, resolving the document first and the
// extra fields second. It returns a *MissingAttributeError when the key
// is absent from both.
func (m *Model) Get(key string) (any, error) {
	if v, ok := m.doc[key]; ok {
		return v, nil
	}
	if v, ok := m.extra[key]; ok {
		return v, nil
	}
	return nil, &MissingAttributeError{Key: key}
}

// GetString returns the string value at key.
func (m *Model) GetString(key string) (string, error) {
	v, err := m.Get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("sentry: attribute %q is %T, not string", key, v)
	}
	return s, nil
}

// GetInt64 returns the integer value at key. JSON numbers decode as
// float64; values with a fractional part are rejected.
func (m *Model) GetInt64(key string) (int64, error) {
	v, err := m.Get(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("sentry: attribute %q is %T, not number", key, v)
	}
	n := int64(f)
	if float64(n) != f {
		return 0, fmt.Errorf("sentry: attribute %q is not an integer: %v", key, f)
	}
	return n, nil
}

// GetBool returns the boolean value at key.
func (m *Model) GetBool(key string) (bool, error) {
	v, err := m.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("sentry: attribute %q is %T, not bool", key, v)
	}
	return b, nil
}

// Raw returns the backing document, giving access even to attributes the
// typed surface does not model. Callers must not modify it.
func (m *Model) Raw() Document {
	return m.doc
}

// hydratable is satisfied by every model variant via the embedded Model;
// the hydration driver uses it to attach the parsed document.
type hydratable interface {
	hydrate(c *Client, doc Document, extra Document)
}
