// Package identity resolves the user and machine names recorded with an arrival.
package identity

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is recorded when no user lookup succeeds.
const Unknown = "unknown"

// Lookup holds the host lookups used to build an identity. Each field may be
// replaced in tests.
type Lookup struct {
	CurrentUser func() (string, error)
	Getenv      func(string) string
	Hostname    func() (string, error)
}

// Host returns the Lookup backed by the running process.
func Host() Lookup {
	return Lookup{
		CurrentUser: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		Getenv:   os.Getenv,
		Hostname: os.Hostname,
	}
}

// User returns the invoking user's name. It tries the account database,
// then USER and USERNAME, then returns Unknown.
func (l Lookup) User() string {
	if l.CurrentUser != nil {
		if name, err := l.CurrentUser(); err == nil {
			if name = trimDomain(name); name != "" {
				return name
			}
		}
	}
	if l.Getenv != nil {
		for _, key := range []string{"USER", "USERNAME"} {
			if name := trimDomain(l.Getenv(key)); name != "" {
				return name
			}
		}
	}
	return Unknown
}

// Machine returns COMPUTERNAME, falling back to the reported host name. It
// returns an empty string when neither is available.
func (l Lookup) Machine() string {
	if l.Getenv != nil {
		if name := strings.TrimSpace(l.Getenv("COMPUTERNAME")); name != "" {
			return name
		}
	}
	if l.Hostname != nil {
		if name, err := l.Hostname(); err == nil {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// trimDomain drops a DOMAIN\ prefix.
func trimDomain(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
