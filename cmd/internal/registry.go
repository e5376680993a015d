// Package internal holds the command registry and the runtime state shared by
// the gridtable subcommands.
package internal

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cloudposse/gridtable/pkg/io"
	"github.com/cloudposse/gridtable/pkg/schema"
)

// CommandProvider supplies a top-level command to the root command.
type CommandProvider interface {
	GetCommand() *cobra.Command
	GetName() string
	// GetGroup returns the help group the command is listed under.
	GetGroup() string
}

var (
	registryMu sync.Mutex
	providers  = map[string]CommandProvider{}

	runtimeMu sync.RWMutex
	config    *schema.Configuration
	ioContext io.Context
)

// Register adds a provider. Subcommand packages call it from init; a later
// registration with the same name replaces the earlier one.
func Register(p CommandProvider) {
	registryMu.Lock()
	defer registryMu.Unlock()

	providers[p.GetName()] = p
}

// Providers returns the registered providers sorted by name.
func Providers() []CommandProvider {
	registryMu.Lock()
	defer registryMu.Unlock()

	list := make([]CommandProvider, 0, len(providers))
	for _, p := range providers {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].GetName() < list[j].GetName()
	})
	return list
}

// SetRuntime stores the loaded configuration and I/O context. The root
// command calls it before any subcommand runs.
func SetRuntime(cfg *schema.Configuration, ioCtx io.Context) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	config = cfg
	ioContext = ioCtx
}

// Config returns the loaded configuration. Before SetRuntime it returns an
// empty, uninitialized configuration.
func Config() *schema.Configuration {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()

	if config == nil {
		return &schema.Configuration{}
	}
	return config
}

// IO returns the I/O context, or one bound to the process streams before SetRuntime.
func IO() io.Context {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()

	if ioContext == nil {
		return io.NewContext()
	}
	return ioContext
}
