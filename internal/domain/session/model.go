package session

import "digitalwill/internal/domain/credential"

// SnapshotKey is the fixed key the current session is persisted under.
const SnapshotKey = "digitalWillUser"

type State int

const (
	Unauthenticated State = iota
	Loading
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the signed-in account as seen by the presentation layer. It
// never carries the password.
type Session struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func fromRecord(rec credential.Record) Session {
	return Session{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		ProfileImage: rec.ProfileImage,
	}
}
