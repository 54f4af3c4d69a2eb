package web

import "net/http"

// sessionCookieName matches the cookie the original application used,
// so existing clients keep working.
const sessionCookieName = "__session"

// setSessionCookie attaches the signed token. With remember set the
// cookie persists for the remember lifetime; otherwise it is a browser
// session cookie. The token itself carries the authoritative expiry
// either way.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, remember bool) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.MaxAge = int(s.sessions.TTL(true).Seconds())
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie instructs the browser to drop the session
// immediately: empty value, expiry in the past.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentUserID resolves the inbound session cookie to a subject id.
// Missing, malformed, expired, or forged cookies all come back as
// ("", false); resolution never mutates anything.
func (s *Server) currentUserID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}
	userID, err := s.sessions.Resolve(cookie.Value)
	if err != nil {
		return "", false
	}
	return userID, true
}

// safeRedirect keeps redirect targets on this site: only rooted paths
// pass, anything else collapses to the fallback.
func safeRedirect(target, fallback string) string {
	if len(target) > 0 && target[0] == '/' && !(len(target) > 1 && target[1] == '/') {
		return target
	}
	return fallback
}
