// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/nuragic/rendr-app-template/internal/logger"
	"github.com/nuragic/rendr-app-template/internal/resolver"
	"gopkg.in/yaml.v3"
)

// BaseName is the file name (without extension) of the base layer.
const BaseName = "base"

type decodeFunc func(data []byte) (any, error)

var decoders = map[string]decodeFunc{
	".yml":  decodeYAML,
	".yaml": decodeYAML,
	".json": decodeJSON,
}

// Dir is a [Source] reading layers from a directory. The file base.<ext> is
// the base layer and every other <name>.<ext> is the profile for environment
// <name>. Supported extensions are .yml, .yaml and .json; other files and
// sub-directories are ignored. A missing base file yields an empty base.
type Dir struct {
	fsys fs.FS
	log  *logger.Logger
}

// NewDir returns a Dir reading from the directory at root.
func NewDir(root string, log *logger.Logger) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error opening profiles dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	return NewFS(os.DirFS(root), log), nil
}

// NewFS returns a Dir reading from the root of fsys.
func NewFS(fsys fs.FS, log *logger.Logger) *Dir {
	return &Dir{fsys: fsys, log: log.Component("profile")}
}

func (d *Dir) Load(ctx context.Context) (resolver.Node, resolver.Profiles, error) {
	entries, err := fs.ReadDir(d.fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("error reading profiles dir: %w", err)
	}

	var base resolver.Node
	seen := make(map[string]string)
	profiles := make(resolver.Profiles)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fileName := entry.Name()
		ext := path.Ext(fileName)
		decode, ok := decoders[strings.ToLower(ext)]
		if entry.IsDir() || !ok || strings.HasPrefix(fileName, ".") {
			continue
		}

		name := strings.TrimSuffix(fileName, ext)
		if previous, dup := seen[name]; dup {
			return nil, nil, fmt.Errorf("%w: %q defined by %s and %s", ErrDuplicateProfile, name, previous, fileName)
		}
		seen[name] = fileName

		node, err := d.readFile(fileName, decode)
		if err != nil {
			return nil, nil, err
		}

		d.log.Debug().Str("file", fileName).Str("profile", name).Int("keys", len(node)).Msg("loaded config layer")

		if name == BaseName {
			base = node
			continue
		}
		profiles[name] = node
	}

	if base == nil {
		d.log.Debug().Msg("no base layer found, using empty base")
		base = resolver.Node{}
	}

	return base, profiles, nil
}

func (d *Dir) readFile(fileName string, decode decodeFunc) (resolver.Node, error) {
	data, err := fs.ReadFile(d.fsys, fileName)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", fileName, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", fileName, err)
	}

	switch m := doc.(type) {
	case nil:
		return resolver.Node{}, nil
	case map[string]any:
		node, err := resolver.NormalizeNode(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: %s holds a %T", ErrInvalidDocument, fileName, doc)
	}
}

func decodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func decodeJSON(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}
