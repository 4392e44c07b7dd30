package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// ErrorHandler renders the response when the session for a request cannot be
// established (a corrupt backing record, a failed key generation).
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware resolves a session for every request and persists it around the
// response lifecycle. The per-request protocol:
//
//  1. Read the session cookie; missing cookie means store.New, present cookie
//     means store.Get (which itself downgrades unknown ids to fresh sessions).
//  2. Expose the session to the downstream handler through the request
//     context, by reference.
//  3. The moment the handler commits response headers, save the session if it
//     reports ShouldSave and append a single Set-Cookie carrying its ID.
//  4. After the handler returns — the body, streamed or not, is complete —
//     call store.SaveIfModified once more, so mutations made while streaming
//     are still captured. Re-saving an unchanged session at this point is a
//     harmless overwrite.
type Middleware struct {
	store         Store
	config        Config
	cookies       *cookie.Manager
	cookieOptions []cookie.Option
	cookieExpires time.Time
	errorHandler  ErrorHandler
	log           *slog.Logger
}

// NewMiddleware creates a session middleware over store.
func NewMiddleware(store Store, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		config: DefaultConfig(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		// Fail fast on misconfiguration instead of serving cookie-less requests
		panic("session: store is required")
	}
	if m.cookies == nil {
		m.cookies = cookie.New()
	}
	if m.errorHandler == nil {
		m.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Session error", http.StatusInternalServerError)
		}
	}

	return m
}

// Handler wraps next with session resolution and the two save checkpoints.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			sess *Session
			err  error
		)

		if sid, cerr := m.cookies.Get(r, m.config.CookieName); cerr != nil {
			sess, err = m.store.New()
		} else {
			sess, err = m.store.Get(sid)
		}
		if err != nil {
			m.log.ErrorContext(r.Context(), "session: resolving session failed", slog.Any("error", err))
			m.errorHandler(w, r, err)
			return
		}

		sw := &saveWriter{ResponseWriter: w, middleware: m, request: r, session: sess}
		next.ServeHTTP(sw, r.WithContext(WithSession(r.Context(), sess)))

		// A handler that wrote nothing leaves the implicit 200 to the server,
		// which sends it after this function returns. Headers are still open,
		// so the header-time checkpoint can run now.
		if !sw.wroteHeader {
			sw.wroteHeader = true
			sw.finalizeHeaders()
		}

		// Body-completion checkpoint. Failures here can no longer change the
		// response; log and move on.
		if err := m.store.SaveIfModified(sess); err != nil {
			m.log.ErrorContext(r.Context(), "session: post-stream save failed",
				slog.String("sid", sess.ID), slog.Any("error", err))
		}
	})
}

// setCookie appends the Set-Cookie header carrying the session identifier.
func (m *Middleware) setCookie(w http.ResponseWriter, sid string) error {
	opts := []cookie.Option{
		cookie.WithPath(m.config.CookiePath),
		cookie.WithMaxAge(m.config.CookieMaxAge),
		cookie.WithHTTPOnly(m.config.CookieHTTPOnly),
	}
	if m.config.CookieDomain != "" {
		opts = append(opts, cookie.WithDomain(m.config.CookieDomain))
	}
	if m.config.CookieSecure {
		opts = append(opts, cookie.WithSecure(true))
	}
	if !m.cookieExpires.IsZero() {
		opts = append(opts, cookie.WithExpires(m.cookieExpires))
	}
	opts = append(opts, m.cookieOptions...)

	return m.cookies.Set(w, m.config.CookieName, sid, opts...)
}

// saveWriter intercepts the first header write so the session can be
// persisted and the cookie appended while headers are still open.
type saveWriter struct {
	http.ResponseWriter
	middleware  *Middleware
	request     *http.Request
	session     *Session
	wroteHeader bool
}

// finalizeHeaders runs the header-time checkpoint exactly once: persist the
// session if needed and append the Set-Cookie. The cookie points at the
// persisted record, so a failed save suppresses it.
func (w *saveWriter) finalizeHeaders() {
	m := w.middleware
	if !w.session.ShouldSave() {
		return
	}
	if err := m.store.Save(w.session); err != nil {
		m.log.ErrorContext(w.request.Context(), "session: header-time save failed",
			slog.String("sid", w.session.ID), slog.Any("error", err))
		return
	}
	if err := m.setCookie(w.ResponseWriter, w.session.ID); err != nil {
		m.log.ErrorContext(w.request.Context(), "session: setting cookie failed",
			slog.String("sid", w.session.ID), slog.Any("error", err))
	}
}

func (w *saveWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.finalizeHeaders()
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *saveWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Flush forwards streaming flushes so handlers can emit the body
// incrementally between the two checkpoints. Flushing commits the response
// headers, so the header-time checkpoint must run first or the cookie would
// be appended too late and dropped.
func (w *saveWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *saveWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
