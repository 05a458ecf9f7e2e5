// Package identity derives a stable player identity for a terminal session.
package identity

import (
	"os"
	"os/user"
	"strings"

	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
)

// Player identifies whoever is at the keyboard.
type Player struct {
	UserID      string
	DisplayName string
	Source      Source
}

// Source tells how a Player was identified.
type Source string

const (
	SourcePublicKey Source = "publickey"
	SourceUserName  Source = "username"
	SourceLocal     Source = "local"
)

// namespace scopes key-derived ids to this application.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vovakirdan/musclebrain/players"))

// Key is the part of an SSH public key identity needs.
type Key interface {
	Marshal() []byte
}

// FromKey identifies a player by public key. The same key always yields the
// same id, whatever user name it logs in with.
func FromKey(userName string, key Key) Player {
	return Player{
		UserID:      uuid.NewSHA1(namespace, key.Marshal()).String(),
		DisplayName: displayName(userName),
		Source:      SourcePublicKey,
	}
}

// FromUserName identifies a keyless player by user name alone. The id is
// prefixed so it never collides with a local account of the same name.
func FromUserName(userName string) Player {
	name := displayName(userName)
	return Player{UserID: "user:" + name, DisplayName: name, Source: SourceUserName}
}

// FromSession identifies the player of an SSH session.
func FromSession(s ssh.Session) Player {
	if key := s.PublicKey(); key != nil {
		return FromKey(s.User(), key)
	}
	return FromUserName(s.User())
}

// Local identifies the player at the local terminal by OS account.
func Local() Player {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	// DOMAIN\user on Windows
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	name = displayName(name)
	return Player{UserID: "local:" + name, DisplayName: name, Source: SourceLocal}
}

func displayName(userName string) string {
	name := strings.TrimSpace(userName)
	if name == "" {
		return "player"
	}
	return name
}
