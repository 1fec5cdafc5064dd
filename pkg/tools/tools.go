// Package tools implements the typed database operations the agent
// executes: reads, transactional mutations with audit records, label and
// time search, and interval-overlap availability checks.
package tools

import (
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
)

// Registry bundles every tool operation over one database client.
type Registry struct {
	db  *database.Client
	cfg *config.AgentConfig
}

// New creates the tool registry.
func New(db *database.Client, cfg *config.AgentConfig) *Registry {
	return &Registry{db: db, cfg: cfg}
}

// Result is the uniform outcome of every tool operation: success with
// data, or failure with a typed error kind and a human sentence. Raw
// database errors never cross this boundary.
type Result struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func ok(message string, data any) Result {
	return Result{OK: true, Message: message, Data: data}
}

func fail(kind, message string) Result {
	return Result{OK: false, Error: kind, Message: message}
}
