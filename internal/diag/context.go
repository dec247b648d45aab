// Package diag is a passive, append-only recorder for diagnostics produced
// while lexing, parsing, or assembling a SimpleASM source file. It does not
// perform I/O or formatting — the CLI layer renders entries after the fact.
package diag

import "sync"

// Context accumulates diagnostic Entry values as the assembler pipeline
// progresses. It is safe for concurrent writes, though SimpleASM's pipeline
// is single-threaded end to end.
//
// Every stage that accepts a *Context is expected to operate identically
// with a nil one — attaching diagnostics is optional instrumentation, never
// a precondition for correct assembly.
type Context struct {
	phase   string
	entries []*Entry
	mu      sync.Mutex
}

// NewContext returns a *Context with no phase set and no recorded entries.
func NewContext() *Context {
	return &Context{entries: make([]*Entry, 0)}
}

// SetPhase sets the current pipeline phase ("lex", "parse", "emit",
// "resolve", ...). Subsequent entries are tagged with this phase until it is
// changed again. A nil *Context is a no-op, so callers never need to guard
// an absent context.
func (c *Context) SetPhase(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.phase = name
	c.mu.Unlock()
}

// Phase returns the current pipeline phase name.
func (c *Context) Phase() string {
	if c == nil {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Context) record(severity string, location Location, message string) *Entry {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{severity: severity, phase: c.phase, message: message, location: location}
	c.entries = append(c.entries, entry)
	return entry
}

// Error records an entry with severity "error".
func (c *Context) Error(location Location, message string) *Entry {
	return c.record(SeverityError, location, message)
}

// Trace records an entry with severity "trace", used for pipeline-stage
// summaries (token counts, emitted byte counts, and the like).
func (c *Context) Trace(location Location, message string) *Entry {
	return c.record(SeverityTrace, location, message)
}

// Entries returns all recorded entries in insertion order.
func (c *Context) Entries() []*Entry {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

// Errors returns only entries with severity "error".
func (c *Context) Errors() []*Entry {
	return c.filter(SeverityError)
}

// HasErrors reports whether at least one "error" entry exists.
func (c *Context) HasErrors() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of recorded entries.
func (c *Context) Count() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Context) filter(severity string) []*Entry {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []*Entry
	for _, e := range c.entries {
		if e.severity == severity {
			result = append(result, e)
		}
	}
	return result
}
