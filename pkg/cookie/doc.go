// Package cookie is a thin, attribute-aware wrapper over net/http cookies.
//
// A Manager carries default attributes (Path, Domain, MaxAge, Expires,
// Secure, HttpOnly, SameSite) that are applied to every write and can be
// overridden per call with Option functions. Values pass through verbatim:
// the package does not sign, encrypt or encode cookie contents.
//
// # Usage
//
//	cookies := cookie.New(
//	    cookie.WithSecure(true),
//	    cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//
//	// Write with a per-call override
//	_ = cookies.Set(w, "session_id", sid, cookie.WithMaxAge(3600))
//
//	// Read
//	sid, err := cookies.Get(r, "session_id")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // no cookie on this request
//	}
//
//	// Remove
//	cookies.Delete(w, "session_id")
//
// Twelve-factor applications can populate the defaults from environment
// variables via Config and NewFromConfig.
package cookie
