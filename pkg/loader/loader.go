// Package loader reads tab definitions from YAML or JSON documents.
//
//	tab:
//	  name: My Tab
//	  slug: my_tab
//	fields:
//	  store_name:
//	    title: Store name
//	    default: Acme
//	  mode:
//	    type: select
//	    options:
//	      a: Option A
//	      b: Option B
//
// fields may also be a sequence, in which case keys are generated during
// normalization. Mapping order is preserved for both fields and options.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Document is one parsed tab definition.
type Document struct {
	Name   string
	Slug   string
	Page   string
	Fields []model.Descriptor
	// Associative is true when fields were declared as a mapping.
	Associative bool
	Source      string
}

type tabHeader struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Page string `yaml:"page"`
}

var descriptorKeys = map[string]struct{}{
	"key": {}, "type": {}, "id": {}, "title": {}, "desc": {}, "description": {},
	"default": {}, "placeholder": {}, "class": {}, "desc_tip": {},
	"custom_attributes": {}, "options": {}, "select2": {}, "allow_clear": {},
}

// LoadFile parses the document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS parses the named document from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("loader: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// LoadAll parses every .yaml, .yml and .json file in fsys, sorted by slug.
// Two documents declaring the same slug is an error.
func LoadAll(fsys fs.FS) ([]Document, error) {
	if fsys == nil {
		return nil, nil
	}
	var docs []Document
	seen := map[string]string{}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}
		doc, err := LoadFS(fsys, path)
		if err != nil {
			return err
		}
		if previous, exists := seen[doc.Slug]; exists {
			return fmt.Errorf("loader: duplicate tab slug %q (files %s and %s)", doc.Slug, previous, path)
		}
		seen[doc.Slug] = path
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Slug < docs[j].Slug })
	return docs, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Parse decodes a YAML or JSON document. source names the document in
// errors.
func Parse(data []byte, source string) (Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Document{}, fmt.Errorf("loader: file %s is empty", source)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("loader: parse %s: %w", source, err)
	}
	body := &root
	if body.Kind == yaml.DocumentNode && len(body.Content) > 0 {
		body = body.Content[0]
	}
	if body.Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("loader: file %s: document must be a mapping", source)
	}

	doc := Document{Source: source}
	if node := lookup(body, "tab"); node != nil {
		var header tabHeader
		if err := node.Decode(&header); err != nil {
			return Document{}, fmt.Errorf("loader: file %s: tab: %w", source, err)
		}
		doc.Name = strings.TrimSpace(header.Name)
		doc.Slug = strings.TrimSpace(header.Slug)
		doc.Page = strings.TrimSpace(header.Page)
	}
	if doc.Slug == "" {
		return Document{}, fmt.Errorf("loader: file %s: tab.slug is required", source)
	}
	if doc.Name == "" {
		return Document{}, fmt.Errorf("loader: file %s: tab.name is required", source)
	}

	fields := lookup(body, "fields")
	if fields == nil {
		return doc, nil
	}
	switch fields.Kind {
	case yaml.MappingNode:
		doc.Associative = true
		for i := 0; i+1 < len(fields.Content); i += 2 {
			key := fields.Content[i].Value
			d, err := decodeDescriptor(fields.Content[i+1])
			if err != nil {
				return Document{}, fmt.Errorf("loader: file %s: field %q: %w", source, key, err)
			}
			d.Key = key
			doc.Fields = append(doc.Fields, d)
		}
	case yaml.SequenceNode:
		for idx, item := range fields.Content {
			d, err := decodeDescriptor(item)
			if err != nil {
				return Document{}, fmt.Errorf("loader: file %s: field %d: %w", source, idx, err)
			}
			doc.Fields = append(doc.Fields, d)
		}
	default:
		return Document{}, fmt.Errorf("loader: file %s: fields must be a mapping or a sequence", source)
	}
	return doc, nil
}

func decodeDescriptor(node *yaml.Node) (model.Descriptor, error) {
	var d model.Descriptor
	if node.Kind != yaml.MappingNode {
		return d, fmt.Errorf("expected a mapping, got %s", kindName(node.Kind))
	}
	if err := node.Decode(&d); err != nil {
		return d, err
	}
	if d.Description == "" {
		if desc := lookup(node, "description"); desc != nil {
			d.Description = desc.Value
		}
	}
	if opts := lookup(node, "options"); opts != nil {
		options, err := decodeOptions(opts)
		if err != nil {
			return d, fmt.Errorf("options: %w", err)
		}
		d.Options = options
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if _, known := descriptorKeys[name]; known {
			continue
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return d, fmt.Errorf("%s: %w", name, err)
		}
		if d.Extra == nil {
			d.Extra = map[string]any{}
		}
		d.Extra[name] = value
	}
	return d, nil
}

func decodeOptions(node *yaml.Node) (model.Options, error) {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(model.Options, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			label := node.Content[i+1]
			if label.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("label of %q must be a scalar", node.Content[i].Value)
			}
			out = append(out, model.Option{Value: node.Content[i].Value, Label: label.Value})
		}
		return out, nil
	case yaml.SequenceNode:
		out := make(model.Options, 0, len(node.Content))
		for idx, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, model.Option{Value: item.Value, Label: item.Value})
			case yaml.MappingNode:
				var opt model.Option
				if err := item.Decode(&opt); err != nil {
					return nil, fmt.Errorf("item %d: %w", idx, err)
				}
				if opt.Label == "" {
					opt.Label = opt.Value
				}
				out = append(out, opt)
			default:
				return nil, fmt.Errorf("item %d must be a scalar or a mapping", idx)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a mapping or a sequence")
	}
}

func lookup(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
