// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// routesKey optionally wraps the path mapping of a declaration file.
const routesKey = "routes"

// declaredRoute is one path and verb pair read from a file.
type declaredRoute struct {
	path  string
	verb  string
	names []string
}

// isDeclarationFile reports whether name has a supported extension.
func isDeclarationFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// moduleName is the file name without its extension.
func moduleName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readDeclaration parses a YAML or JSON declaration file. Paths are
// returned in file order, verbs in the order they appear under each path.
//
//	/users/:id:
//	  get: show
//	  put: [requireUser, update]
func readDeclaration(file string) ([]declaredRoute, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("error opening route declaration: %w", err)
	}
	defer f.Close()

	var doc yaml.Node
	if err = yaml.NewDecoder(f).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDeclaration, file, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, malformed(file, root, "expected a mapping of paths")
	}

	if len(root.Content) == 2 && root.Content[0].Value == routesKey {
		root = root.Content[1]
		if root.Kind != yaml.MappingNode {
			return nil, malformed(file, root, "expected a mapping of paths under %q", routesKey)
		}
	}

	var declared []declaredRoute
	for i := 0; i < len(root.Content); i += 2 {
		pathNode, verbsNode := root.Content[i], root.Content[i+1]

		if pathNode.Kind != yaml.ScalarNode || !strings.HasPrefix(pathNode.Value, "/") {
			return nil, malformed(file, pathNode, "path must start with /")
		}
		if verbsNode.Kind != yaml.MappingNode {
			return nil, malformed(file, verbsNode, "expected a mapping of verbs for %s", pathNode.Value)
		}

		for j := 0; j < len(verbsNode.Content); j += 2 {
			verbNode, valueNode := verbsNode.Content[j], verbsNode.Content[j+1]

			names, err := handlerNames(valueNode)
			if err != nil {
				return nil, malformed(file, valueNode, "%s %s: %v", verbNode.Value, pathNode.Value, err)
			}

			declared = append(declared, declaredRoute{
				path:  pathNode.Value,
				verb:  verbNode.Value,
				names: names,
			})
		}
	}

	return declared, nil
}

// handlerNames accepts a name or a non-empty list of names.
func handlerNames(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil, errors.New("empty handler name")
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, errors.New("empty handler list")
		}
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Value == "" {
				return nil, errors.New("handler list entries must be names")
			}
			names = append(names, item.Value)
		}
		return names, nil
	default:
		return nil, errors.New("expected a handler name or a list of names")
	}
}

func malformed(file string, node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrMalformedDeclaration, file, node.Line, fmt.Sprintf(format, args...))
}
