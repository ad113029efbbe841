// Package sessions models the per-session key state of the web UI. A session
// owns at most one RSA key pair, held only in transient memory and discarded
// with the session.
package sessions
