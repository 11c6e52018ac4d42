package dom

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidSelector = errors.New("invalid selector")

// Matches supports selector groups ("a, b") of compound simple selectors
// made of an optional tag or '*', '#id' and any number of '.class' parts.
// Combinators are not supported.
func (n *Node) Matches(selector string) (bool, error) {
	groups := strings.Split(selector, ",")
	matched := false
	for _, g := range groups {
		c, err := parseCompound(strings.TrimSpace(g))
		if err != nil {
			return false, fmt.Errorf("%w: %q", err, selector)
		}
		if !matched && c.matches(n) {
			matched = true
		}
	}
	return matched, nil
}

type compound struct {
	tag     string
	id      string
	classes []string
}

func (c compound) matches(n *Node) bool {
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, n.Tag) {
		return false
	}
	if c.id != "" && c.id != n.ID {
		return false
	}
	for _, cls := range c.classes {
		if !slices.Contains(n.Classes, cls) {
			return false
		}
	}
	return true
}

func parseCompound(s string) (compound, error) {
	if s == "" || strings.ContainsAny(s, " \t>+~[]:()") {
		return compound{}, ErrInvalidSelector
	}
	var c compound
	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' {
		i++
	}
	c.tag = s[:i]
	for i < len(s) {
		kind := s[i]
		j := i + 1
		for j < len(s) && s[j] != '#' && s[j] != '.' {
			j++
		}
		name := s[i+1 : j]
		if name == "" {
			return compound{}, ErrInvalidSelector
		}
		switch kind {
		case '#':
			if c.id != "" {
				return compound{}, ErrInvalidSelector
			}
			c.id = name
		case '.':
			c.classes = append(c.classes, name)
		}
		i = j
	}
	return c, nil
}
