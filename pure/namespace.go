package pure

import (
	"errors"
	"strings"
)

var ErrInvalidNamespace = errors.New("invalid namespace")

// StoreInNamespace stores value under a dotted path such as "app.widgets.grid",
// creating intermediate maps on the way. Intermediate values that are not
// maps are replaced.
func StoreInNamespace(root map[string]any, namespace string, value any) error {
	if root == nil {
		return ErrInvalidNamespace
	}
	parts, err := splitNamespace(namespace)
	if err != nil {
		return err
	}
	node := root
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
	return nil
}

// NamespaceExists reports whether every segment of the dotted path is present.
func NamespaceExists(root map[string]any, namespace string) bool {
	parts, err := splitNamespace(namespace)
	if err != nil {
		return false
	}
	var node any = root
	for _, part := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return false
		}
		if node, ok = m[part]; !ok {
			return false
		}
	}
	return true
}

func splitNamespace(namespace string) ([]string, error) {
	if namespace == "" {
		return nil, ErrInvalidNamespace
	}
	parts := strings.Split(namespace, ".")
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidNamespace
		}
	}
	return parts, nil
}
