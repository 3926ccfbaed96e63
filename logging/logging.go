package logging

import (
	"fmt"
	"strings"

	"github.com/tarmac-project/fetchkit"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// Client sends log entries to the host runtime. Trailing arguments are
// key/value pairs appended to the message as key=value.
type Client interface {
	Info(message string, kv ...any)
	Warn(message string, kv ...any)
	Error(message string, kv ...any)
	Debug(message string, kv ...any)
	Trace(message string, kv ...any)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig fetchkit.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall fetchkit.HostCall
}

type client struct {
	runtime  fetchkit.RuntimeConfig
	hostCall fetchkit.HostCall
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
	}, nil
}

func (c *client) Info(message string, kv ...any)  { c.log("Info", message, kv) }
func (c *client) Warn(message string, kv ...any)  { c.log("Warn", message, kv) }
func (c *client) Error(message string, kv ...any) { c.log("Error", message, kv) }
func (c *client) Debug(message string, kv ...any) { c.log("Debug", message, kv) }
func (c *client) Trace(message string, kv ...any) { c.log("Trace", message, kv) }

// log is best effort; a failing host never breaks the caller.
func (c *client) log(fn string, message string, kv []any) {
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fn, []byte(Format(message, kv...)))
}

// Format renders message followed by its key/value pairs. A dangling key is
// rendered with a "!MISSING" value.
func Format(message string, kv ...any) string {
	if len(kv) == 0 {
		return message
	}

	var b strings.Builder
	b.WriteString(message)
	for i := 0; i < len(kv); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, kv[i])
		b.WriteByte('=')
		if i+1 >= len(kv) {
			b.WriteString("!MISSING")
			break
		}
		v := fmt.Sprint(kv[i+1])
		if strings.ContainsAny(v, " \t\n\"=") {
			v = fmt.Sprintf("%q", v)
		}
		b.WriteString(v)
	}
	return b.String()
}

type nop struct{}

// Nop returns a Client that discards every entry.
func Nop() Client { return nop{} }

func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Debug(string, ...any) {}
func (nop) Trace(string, ...any) {}
