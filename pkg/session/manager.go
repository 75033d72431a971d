package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/cookie"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/function"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/requestid"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
)

const (
	setCookieHeader = "Set-Cookie"
	cookieHeader    = "Cookie"

	// maxCookieSize is the size most browsers accept for a single cookie.
	maxCookieSize = 4096
)

// Manager restores the session container from the incoming cookie and
// writes it back, signed, on the response. A Manager is safe for concurrent use.
type Manager struct {
	name    string
	attrs   cookie.Attributes
	keyring secrets.Keyring
	logger  *slog.Logger
	metrics *Metrics
}

// NewManager resolves the cookie name, attributes and keyring from cfg.
// Errors are joined with ErrConfiguration.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	return newManager(cfg, newOptions(opts))
}

func newManager(cfg Config, o *options) (*Manager, error) {
	name, err := cfg.CookieName()
	if err != nil {
		return nil, err
	}
	keyring, err := cfg.Keyring()
	if err != nil {
		return nil, err
	}

	log := o.logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("session"))

	attrs := cookie.Apply(cfg.CookieAttributes(), o.cookieOptions...)
	if attrs.SameSite == cookie.SameSiteNone && !attrs.Secure {
		log.Warn("SameSite=None without Secure is rejected by most browsers",
			logger.Cookie(name))
	}

	return &Manager{
		name:    name,
		attrs:   attrs,
		keyring: keyring,
		logger:  log,
		metrics: o.metrics,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.name
}

// Attributes returns the attributes applied to issued cookies.
func (m *Manager) Attributes() cookie.Attributes {
	return m.attrs
}

// Wrap returns a Handler that runs h with a session container in its context
// and appends the signed session cookie to the response.
func (m *Manager) Wrap(h function.Handler) (function.Handler, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	return function.HandlerFunc(func(ctx context.Context, ev *function.Event) (*function.Response, error) {
		return m.invoke(ctx, h, ev)
	}), nil
}

func (m *Manager) invoke(ctx context.Context, h function.Handler, ev *function.Event) (*function.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if requestid.FromContext(ctx) == "" {
		ctx = requestid.WithContext(ctx, requestid.Resolve(func(name string) string {
			v, _ := ev.Header(name)
			return v
		}))
	}

	ctx, container := NewContext(ctx)
	raw, _ := ev.Header(cookieHeader)
	m.restore(ctx, raw, container)

	resp, err := h.Handle(ctx, ev)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, function.ErrNilResponse
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, err := m.issue(ctx, container)
	if err != nil {
		return nil, err
	}
	resp.AppendHeader(setCookieHeader, line)
	return resp, nil
}

// restore merges the data of a valid session cookie found in the raw Cookie
// header into c. Invalid cookies are ignored.
func (m *Manager) restore(ctx context.Context, raw string, c *Container) {
	value, ok := cookie.ParseHeader(raw)[m.name]
	if !ok {
		m.metrics.restored(ResultAbsent)
		return
	}

	payload, err := cookie.DecodeValue(value, m.keyring)
	if err != nil {
		m.reject(ctx, reasonFor(err), err)
		return
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		m.reject(ctx, "invalid_json", err)
		return
	}
	if data == nil {
		m.reject(ctx, "not_an_object", nil)
		return
	}

	c.Merge(data)
	m.metrics.restored(ResultRestored)
}

func (m *Manager) reject(ctx context.Context, reason string, err error) {
	m.metrics.restored(ResultRejected)
	m.logger.DebugContext(ctx, "session cookie ignored",
		logger.Cookie(m.name),
		logger.Reason(reason),
		logger.Error(err),
	)
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, cookie.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, cookie.ErrInvalidFormat):
		return "invalid_format"
	default:
		return "unknown"
	}
}

// issue serializes c and returns the Set-Cookie line carrying it.
func (m *Manager) issue(ctx context.Context, c *Container) (string, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}

	line := cookie.Encode(m.name, cookie.EncodeValue(payload, m.keyring.Primary()), m.attrs)
	if len(line) > maxCookieSize {
		m.logger.WarnContext(ctx, "session cookie exceeds browser size limit",
				logger.Cookie(m.name),
			logger.Size(len(line)),
		)
	}

	m.metrics.issuedOne()
	return line, nil
}

// Wrap returns a Handler that resolves its configuration on every
// invocation, from the environment unless WithConfig or WithConfigSource
// is given, and then behaves like Manager.Wrap. Configuration errors are
// returned before h runs.
func Wrap(h function.Handler, opts ...Option) (function.Handler, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	o := newOptions(opts)
	return function.HandlerFunc(func(ctx context.Context, ev *function.Event) (*function.Response, error) {
		cfg, err := o.source()
		if err != nil {
			return nil, errors.Join(ErrConfiguration, err)
		}
		m, err := newManager(cfg, o)
		if err != nil {
			return nil, err
		}
		return m.invoke(ctx, h, ev)
	}), nil
}
