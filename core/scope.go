package core

import (
	"sort"
	"strings"
)

// i.e.
// read write:statuses follow       // Mastodon and Pleroma, space separated
// read:account,write:notes         // Firefish permission list
// a scope grants itself and every scope nested under it: read grants read:accounts

type Scopes struct {
	Body map[string]bool
}

func ParseScopes(input string) Scopes {
	scopes := Scopes{Body: make(map[string]bool)}
	split := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	for _, scope := range split {
		scopes.Body[scope] = true
	}
	return scopes
}

func NewScopes(list []string) Scopes {
	return ParseScopes(strings.Join(list, " "))
}

// Grants returns true if scope, or one of its parents, is held
func (s Scopes) Grants(scope string) bool {
	for {
		if s.Body[scope] {
			return true
		}
		i := strings.LastIndexByte(scope, ':')
		if i < 0 {
			return false
		}
		scope = scope[:i]
	}
}

// Missing returns the requested scopes that s does not grant, sorted
func (s Scopes) Missing(requested Scopes) []string {
	var missing []string
	for scope := range requested.Body {
		if !s.Grants(scope) {
			missing = append(missing, scope)
		}
	}
	sort.Strings(missing)
	return missing
}

func (s Scopes) List() []string {
	list := make([]string, 0, len(s.Body))
	for scope := range s.Body {
		list = append(list, scope)
	}
	sort.Strings(list)
	return list
}
