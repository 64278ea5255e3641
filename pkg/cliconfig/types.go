// Package cliconfig provides configuration types and loading for the fliitsctl CLI.
package cliconfig

import (
	"errors"
	"fmt"
	"sort"
)

// Config is the on-disk CLI configuration.
// Values are resolved with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (FLIITS_API_URL, FLIITS_TOKEN, FLIITS_CONTEXT)
// 3. Current context in the config file (~/.config/fliitsctl/config.yaml)
// 4. Default values (lowest priority)
type Config struct {
	CurrentContext string              `yaml:"currentContext,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`
}

// Context is a named API endpoint plus the credentials cached for it.
// Token, Role, Name and Email are written on login and cleared on logout;
// they are the CLI equivalent of the web console's persisted local storage.
type Context struct {
	APIURL      string `yaml:"apiUrl"`
	Description string `yaml:"description,omitempty"`
	Token       string `yaml:"token,omitempty"`
	Role        string `yaml:"role,omitempty"`
	Name        string `yaml:"name,omitempty"`
	Email       string `yaml:"email,omitempty"`
}

// ErrContextNotFound is returned when a named context does not exist.
var ErrContextNotFound = errors.New("context not found")

// Current returns the effective context, honoring the FLIITS_CONTEXT
// env override. Returns nil if no context is configured.
func (c *Config) Current() *Context {
	name := c.CurrentContext
	if env := GetContextFromEnv(); env != "" {
		name = env
	}
	if name == "" {
		return nil
	}
	return c.Contexts[name]
}

// AddContext registers a context under the given name.
func (c *Config) AddContext(name string, ctx *Context) error {
	if name == "" {
		return errors.New("context name cannot be empty")
	}
	if c.Contexts == nil {
		c.Contexts = make(map[string]*Context)
	}
	if _, exists := c.Contexts[name]; exists {
		return fmt.Errorf("context already exists: %s", name)
	}
	c.Contexts[name] = ctx
	return nil
}

// SetCurrentContext switches the current context.
func (c *Config) SetCurrentContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("%w: %s", ErrContextNotFound, name)
	}
	c.CurrentContext = name
	return nil
}

// RemoveContext deletes a context. Removing the current context clears
// the current-context pointer.
func (c *Config) RemoveContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("%w: %s", ErrContextNotFound, name)
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return nil
}

// ContextNames returns all context names sorted for stable output.
func (c *Config) ContextNames() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCredentials stores login results on the current context. This is the
// explicit init half of the credential lifecycle; ClearCredentials is the
// other half.
func (c *Config) SetCredentials(token, role, name, email string) error {
	ctx := c.Current()
	if ctx == nil {
		return errors.New("no current context; run 'fliitsctl context add' first")
	}
	ctx.Token = token
	ctx.Role = role
	ctx.Name = name
	ctx.Email = email
	return nil
}

// ClearCredentials drops cached credentials from the current context.
func (c *Config) ClearCredentials() {
	ctx := c.Current()
	if ctx == nil {
		return
	}
	ctx.Token = ""
	ctx.Role = ""
	ctx.Name = ""
	ctx.Email = ""
}
