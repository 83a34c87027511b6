// Package route names the navigation destinations and decides which of them
// may render for the current session.
package route

import (
	"fmt"
	"sync"
)

type Destination string

const (
	Root      Destination = "/"
	Dashboard Destination = "/dashboard"
	Documents Destination = "/documents"
	Crypto    Destination = "/crypto"
	Nominees  Destination = "/nominees"
	Contacts  Destination = "/contacts"
)

// Authenticated lists the destinations hidden behind the session gate, in
// navigation order.
var Authenticated = []Destination{Dashboard, Documents, Crypto, Nominees, Contacts}

func (d Destination) String() string {
	return string(d)
}

// Label returns the navigation label of the destination.
func (d Destination) Label() string {
	switch d {
	case Root:
		return "Home"
	case Dashboard:
		return "Dashboard"
	case Documents:
		return "Documents"
	case Crypto:
		return "Cryptocurrencies"
	case Nominees:
		return "Nominees"
	case Contacts:
		return "Contacts"
	default:
		return "Unknown"
	}
}

// RequiresAuth reports whether d is one of the gated destinations.
func (d Destination) RequiresAuth() bool {
	for _, a := range Authenticated {
		if a == d {
			return true
		}
	}
	return false
}

// Parse resolves a path or a bare name ("documents") to a destination.
func Parse(s string) (Destination, error) {
	switch s {
	case "", "/", "root", "home":
		return Root, nil
	}
	if s[0] != '/' {
		s = "/" + s
	}
	d := Destination(s)
	if !d.RequiresAuth() {
		return "", fmt.Errorf("unknown destination: %s", s)
	}
	return d, nil
}

// Allowed is the only gate deciding whether a destination renders content.
func Allowed(isAuthenticated bool, d Destination) bool {
	if d.RequiresAuth() {
		return isAuthenticated
	}
	return true
}

// Navigator receives navigation intents.
type Navigator interface {
	Navigate(d Destination)
}

// Recorder keeps the latest navigation intent until it is taken.
type Recorder struct {
	mu      sync.Mutex
	pending Destination
	has     bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(d Destination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = d
	r.has = true
}

// Take returns the latest intent and clears it.
func (r *Recorder) Take() (Destination, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.pending, r.has
	r.pending, r.has = "", false
	return d, ok
}
