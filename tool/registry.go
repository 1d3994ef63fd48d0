package tool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MikeSquared-Agency/missioncontrol/model"
)

// Role identifies a tool visibility scope. The two scopes are fixed: the
// primary engine sees every tool, delegated engines only the file/command
// tools. A delegated engine structurally cannot invoke the delegation tool
// because it is never offered that definition.
type Role string

const (
	// RolePrimary is the top-level engine's scope: all tools, including
	// delegation and task tracking.
	RolePrimary Role = "primary"
	// RoleDelegated is the subagent scope: file/command tools only.
	RoleDelegated Role = "delegated"
)

// ErrNotFound is returned by Resolve when a tool name is absent from the
// requested role's scope, whether it does not exist at all or is simply
// not visible to that role.
var ErrNotFound = errors.New("tool not found")

// registration pairs a tool with the roles allowed to invoke it.
type registration struct {
	tool  Tool
	roles map[Role]bool
}

// Registry maps tool identifiers to handlers with per-role visibility.
// Registration order is preserved so Definitions returns a stable sequence.
type Registry struct {
	mu      sync.RWMutex
	entries []*registration
	index   map[string]*registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*registration)}
}

// Register adds a tool visible to the given roles, replacing any previous
// registration under the same name. Registering with no roles makes the
// tool invisible to every scope.
func (r *Registry) Register(t Tool, roles ...Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roleSet := make(map[Role]bool, len(roles))
	for _, role := range roles {
		roleSet[role] = true
	}

	if existing, ok := r.index[t.Name()]; ok {
		existing.tool = t
		existing.roles = roleSet
		return
	}

	reg := &registration{tool: t, roles: roleSet}
	r.entries = append(r.entries, reg)
	r.index[t.Name()] = reg
}

// Resolve returns the handler for name in the given role scope, or an
// ErrNotFound-wrapped error when the role cannot see it.
func (r *Registry) Resolve(role Role, name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.index[name]
	if !ok || !reg.roles[role] {
		return nil, fmt.Errorf("%w: %s (role %s)", ErrNotFound, name, role)
	}
	return reg.tool, nil
}

// Definitions returns the tool definitions visible to role, in registration
// order, ready to hand to the reasoning service.
func (r *Registry) Definitions(role Role) []model.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]model.ToolDefinition, 0, len(r.entries))
	for _, reg := range r.entries {
		if !reg.roles[role] {
			continue
		}
		defs = append(defs, model.ToolDefinition{
			Name:        reg.tool.Name(),
			Description: reg.tool.Description(),
			Parameters:  reg.tool.Parameters(),
		})
	}
	return defs
}

// Names returns the tool names visible to role, in registration order.
func (r *Registry) Names(role Role) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, reg := range r.entries {
		if reg.roles[role] {
			names = append(names, reg.tool.Name())
		}
	}
	return names
}

// Count returns the number of tools visible to role.
func (r *Registry) Count(role Role) int {
	return len(r.Names(role))
}
