package room

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/synacor/argon2id"
	"pokerroom-server/pkg/playable/poker/texasholdem"
)

// ErrIncorrectPassword is returned when a client cannot join a private table
var ErrIncorrectPassword = texasholdem.UserError("incorrect table password")

var wordChar = regexp.MustCompile(`\w`)

// TableOptions describes a table in the lobby and the game played at it
type TableOptions struct {
	Name string
	// Host is the username of the player who opened the table
	Host string

	// Private tables can only be joined with Password
	Private  bool
	Password string

	Game texasholdem.Options
}

func validateTableOptions(opts TableOptions) error {
	if !wordChar.MatchString(opts.Name) || len(opts.Name) < 3 || len(opts.Name) > 40 {
		return texasholdem.UserError("name must be 3-40 characters")
	}

	if opts.Private && opts.Password == "" {
		return texasholdem.UserError("a password is required for private tables")
	}

	return nil
}

func errTableNameTaken(name string) error {
	return texasholdem.UserError(fmt.Sprintf("a table named %s already exists", name))
}

// Name returns the table name shown in the lobby
func (d *Dealer) Name() string {
	return d.name
}

// Host returns the username of the player who opened the table
func (d *Dealer) Host() string {
	return d.host
}

// Private returns true if a password is needed to join the table
func (d *Dealer) Private() bool {
	return d.passwordHash != ""
}

// CheckPassword returns true if password lets a client join the table
// Every password is accepted at a public table.
func (d *Dealer) CheckPassword(password string) bool {
	if !d.Private() {
		return true
	}

	return argon2id.Compare(d.passwordHash, password) == nil
}

// matches returns true if the name or host contains query, ignoring case
func (d *Dealer) matches(query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.name), query) || strings.Contains(strings.ToLower(d.host), query)
}
