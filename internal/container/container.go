// Package container implements the application's dependency graph resolver:
// a registry of named resources that are constructed lazily, exactly once,
// in dependency order, and shared for the lifetime of the container.
//
// Registration is declarative: a name, the names of the dependencies the
// constructor needs, and the constructor itself. Nothing is discovered
// implicitly. A container starts unwired; resources are realized on first
// resolution and discarded only when the container is closed, which is
// terminal.
package container

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Constructor builds a resource instance from its resolved dependencies.
// The deps slice holds the instances of the dependency names declared at
// registration, in the same order.
type Constructor func(deps []any) (any, error)

// resource is a named constructible unit in the graph. The once guard
// makes first resolution mutually exclusive across concurrent callers:
// exactly one caller runs the constructor while the rest wait for and then
// observe the same cached result (or the same cached error).
type resource struct {
	name      string
	deps      []string
	construct Constructor

	once     sync.Once
	instance any
	err      error
}

// Container is the root resolver. It is created once per process (or per
// test), shared by all request-handling goroutines, and torn down with
// Close. Cached instances are treated as immutable references and are
// never replaced.
type Container struct {
	mu        sync.Mutex
	resources map[string]*resource
	closed    bool

	// closers holds resolved instances that own releasable handles, in
	// resolution order. Close releases them in reverse.
	closers []io.Closer

	logger *slog.Logger
}

// New creates an empty, unwired container.
func New(logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		resources: make(map[string]*resource),
		logger:    logger.With(slog.String("component", "container")),
	}
}

// Register adds a resource to the graph under the given name. The deps
// list names the resources whose instances the constructor will receive,
// positionally. Dependencies may be registered in any order; an unknown
// name is only a fault if it is still unknown at resolution time.
//
// Returns a *ConfigurationError if the name is already registered or if
// the registration would introduce a dependency cycle.
func (c *Container) Register(name string, deps []string, construct Constructor) error {
	if construct == nil {
		return NewConfigurationError(name, "constructor cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return NewConfigurationError(name, "container is closed")
	}
	if _, exists := c.resources[name]; exists {
		return NewConfigurationError(name, "resource is already registered")
	}

	// Any cycle is completed by exactly one registration, so checking the
	// new edges against the graph registered so far catches them all.
	for _, dep := range deps {
		if dep == name {
			return NewConfigurationError(name, "resource depends on itself")
		}
		if path := c.pathBetween(dep, name); path != nil {
			return NewConfigurationError(name,
				"dependency cycle: %s -> %s", name, strings.Join(path, " -> "))
		}
	}

	c.resources[name] = &resource{
		name:      name,
		deps:      deps,
		construct: construct,
	}

	c.logger.Debug("resource registered",
		slog.String("resource", name),
		slog.Int("dependencies", len(deps)))
	return nil
}

// pathBetween returns the dependency path from start to target through
// registered resources, or nil when target is unreachable. Callers must
// hold c.mu.
func (c *Container) pathBetween(start, target string, visited ...map[string]bool) []string {
	if start == target {
		return []string{start}
	}

	var seen map[string]bool
	if len(visited) > 0 {
		seen = visited[0]
	} else {
		seen = make(map[string]bool)
	}
	if seen[start] {
		return nil
	}
	seen[start] = true

	res, ok := c.resources[start]
	if !ok {
		return nil
	}
	for _, dep := range res.deps {
		if path := c.pathBetween(dep, target, seen); path != nil {
			return append([]string{start}, path...)
		}
	}
	return nil
}

// Resolve returns the instance registered under name, constructing it and
// its transitive dependencies first if this is their first resolution.
// Repeated calls return the identical instance. A dependency is always
// fully constructed before its dependent's constructor observes it.
//
// Returns a *ConfigurationError if the name (or any transitive dependency
// name) was never registered, or if the container is closed. Constructor
// failures are cached alongside the instance slot: the constructor body
// never runs twice, even when it failed.
func (c *Container) Resolve(name string) (any, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, NewConfigurationError(name, "container is closed")
	}
	res, ok := c.resources[name]
	c.mu.Unlock()

	if !ok {
		return nil, NewConfigurationError(name, "resource is not registered")
	}

	res.once.Do(func() {
		deps := make([]any, len(res.deps))
		for i, depName := range res.deps {
			instance, err := c.Resolve(depName)
			if err != nil {
				res.err = fmt.Errorf("resolving dependency %q of %q: %w", depName, res.name, err)
				return
			}
			deps[i] = instance
		}

		instance, err := res.construct(deps)
		if err != nil {
			res.err = fmt.Errorf("constructing resource %q: %w", res.name, err)
			return
		}
		res.instance = instance

		if closer, ok := instance.(io.Closer); ok {
			c.mu.Lock()
			c.closers = append(c.closers, closer)
			c.mu.Unlock()
		}

		c.logger.Debug("resource constructed", slog.String("resource", res.name))
	})

	return res.instance, res.err
}

// MustResolve is Resolve for wiring paths where a failure is a programming
// fault that should stop the process. It panics on error.
func (c *Container) MustResolve(name string) any {
	instance, err := c.Resolve(name)
	if err != nil {
		panic(err)
	}
	return instance
}

// Close tears the container down. Resolved resources that own releasable
// handles (the database pool, for one) are closed in reverse resolution
// order. Teardown is terminal: a closed container rejects all further
// registration and resolution, and there is no reset.
func (c *Container) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	closers := c.closers
	c.closers = nil
	c.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	c.logger.Debug("container closed", slog.Int("released", len(closers)))
	return errors.Join(errs...)
}

// Resolve returns the instance registered under name in c, asserted to
// type T. It is the typed accessor the transport layer consumes.
//
// Returns a *ConfigurationError if the resource resolves to a different
// type; resolution errors pass through unchanged.
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T

	instance, err := c.Resolve(name)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, NewConfigurationError(name, "resource has type %T, want %T", instance, zero)
	}
	return typed, nil
}
