package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// Valkey stores discovery results in a Valkey (Redis-compatible) server.
type Valkey struct {
	client valkey.Client
}

// NewValkey connects to the Valkey server at addr.
func NewValkey(addr string) (*Valkey, error) {
	return newValkey(valkey.ClientOption{
		InitAddress: []string{addr},
	})
}

func newValkey(opt valkey.ClientOption) (*Valkey, error) {
	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return &Valkey{client: client}, nil
}

// Get returns the value stored at key. found is false when the key does not exist.
func (c *Valkey) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	cmd := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	b, err := cmd.AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores value at key. A non-positive ttl stores it without expiry.
func (c *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Do(ctx, setCommand(c.client.B(), key, value, ttl)).Error()
}

// setCommand builds SET key value [EX s | PX ms]. The server rejects a zero
// expiry, so sub-millisecond ttls round up to 1ms.
func setCommand(b valkey.Builder, key string, value []byte, ttl time.Duration) valkey.Completed {
	set := b.Set().Key(key).Value(valkey.BinaryString(value))
	switch {
	case ttl <= 0:
		return set.Build()
	case ttl%time.Second == 0:
		return set.Ex(ttl).Build()
	default:
		return set.Px(max(ttl, time.Millisecond)).Build()
	}
}

// Ping checks connectivity for readiness probes.
func (c *Valkey) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

// Close releases the client.
func (c *Valkey) Close() {
	c.client.Close()
}
