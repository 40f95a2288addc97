// ABOUTME: Charm KV client wrapper using transactional Do API
// ABOUTME: Short-lived connections so the CLI, server and MCP process never hold the lock

package charm

import (
	"os"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	charmproto "github.com/charmbracelet/charm/proto"
)

// DBName is the KV database name for dreamdecoder.
const DBName = "dreamdecoder"

// KV is the subset of a Charm KV handle used for backups.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Keys() ([][]byte, error)
	Sync() error
}

// Backend opens the KV store for the duration of one callback.
type Backend interface {
	Do(fn func(KV) error) error
	DoReadOnly(fn func(KV) error) error
}

// Client holds configuration for KV operations.
// It does NOT hold a persistent connection; each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName string
}

// Option configures a Client.
type Option func(*Client)

// WithDBName sets the database name.
func WithDBName(name string) Option {
	return func(c *Client) {
		c.dbName = name
	}
}

// NewClient creates a client. A non-empty host overrides CHARM_HOST for this
// process.
func NewClient(host string, opts ...Option) (*Client, error) {
	if host != "" {
		if err := os.Setenv("CHARM_HOST", host); err != nil {
			return nil, err
		}
	}

	c := &Client{dbName: DBName}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do executes fn with write access to the database.
func (c *Client) Do(fn func(KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return fn(k)
	})
}

// DoReadOnly executes fn with read-only database access.
func (c *Client) DoReadOnly(fn func(KV) error) error {
	return kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		return fn(k)
	})
}

// ID returns the charm user ID for this device.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", err
	}
	return cc.ID()
}

// User returns the current charm user information.
func (c *Client) User() (*charmproto.User, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return nil, err
	}
	return cc.Bio()
}

// IsLinked returns true if this device is linked to a Charm account.
func (c *Client) IsLinked() bool {
	_, err := c.ID()
	return err == nil
}

// GetCharmHost returns the configured Charm host.
func GetCharmHost() string {
	if host := os.Getenv("CHARM_HOST"); host != "" {
		return host
	}
	return "charm.2389.dev"
}

// Repair attempts to repair database corruption.
func (c *Client) Repair(force bool) (*kv.RepairResult, error) {
	return kv.Repair(c.dbName, force)
}

// Reset deletes the local KV copy and re-syncs it from the cloud.
func (c *Client) Reset() error {
	return kv.Reset(c.dbName)
}

// Wipe deletes the backup store locally and in the cloud.
func (c *Client) Wipe() (*kv.WipeResult, error) {
	return kv.Wipe(c.dbName)
}
