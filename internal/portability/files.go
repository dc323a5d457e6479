package portability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
)

// PublishDir walks every .json file under root, substitutes absolute paths
// with placeholders, and rewrites files whose content changed. Files that
// fail to parse are logged and skipped; the batch always runs to the end.
// Returned warnings carry the file path relative to root.
func (m *Mapper) PublishDir(root string) ([]Warning, error) {
	var all []Warning

	err := m.walkJSONFiles(root, func(path string, doc any) (any, error) {
		transformed, warnings := m.Substitute(doc)
		for _, w := range warnings {
			w.File = relWarningFile(root, path)
			all = append(all, w)
		}
		return transformed, nil
	})

	return all, err
}

// ImportDir walks every .json file under root and expands placeholders to
// this machine's paths, rewriting files whose content changed.
func (m *Mapper) ImportDir(root string) error {
	return m.walkJSONFiles(root, func(path string, doc any) (any, error) {
		return m.Expand(doc), nil
	})
}

// walkJSONFiles parses each .json file under root, applies transform, and
// writes the result back only when it differs from the original. Avoiding
// spurious writes keeps timestamps and git diffs quiet.
func (m *Mapper) walkJSONFiles(root string, transform func(path string, doc any) (any, error)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			m.Logger.WarnfUser("Could not read %s: %v", relWarningFile(root, path), err)
			return nil
		}

		doc, err := decodeJSON(data)
		if err != nil {
			m.Logger.WarnfUser("Could not parse %s: %v", relWarningFile(root, path), err)
			return nil
		}

		transformed, err := transform(path, doc)
		if err != nil {
			return err
		}

		if reflect.DeepEqual(transformed, doc) {
			return nil
		}

		out, err := encodeJSON(transformed)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("rewriting %s: %w", path, err)
		}
		m.Logger.Debugf("Transformed paths in %s", relWarningFile(root, path))
		return nil
	})
}

// decodeJSON parses a document keeping numbers as json.Number, so values
// like 1e100 or 64-bit integers survive a substitute/expand round trip
// byte-for-byte.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// encodeJSON writes without HTML escaping so strings holding shell
// fragments like "a && b" survive a rewrite byte-for-byte.
func encodeJSON(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
