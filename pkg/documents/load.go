package documents

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotaudit/pkg/errors"
	"github.com/arthur-debert/dotaudit/pkg/types"
)

// Load reads and decodes the document at path. Read and parse failures
// are returned as ErrDocumentRead and ErrDocumentParse; a document that
// decodes but has no usable files array is not an error.
func Load(fsys types.FS, path string) (types.ProgramDocument, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return types.ProgramDocument{}, errors.Wrapf(err, errors.ErrDocumentRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return types.ProgramDocument{}, errors.Wrapf(err, errors.ErrDocumentParse, "cannot parse %s", path).
			WithDetail("path", path)
	}

	return Extract(ProgramName(path), path, doc), nil
}

// LoadAll loads every path in order and stops at the first failure.
func LoadAll(fsys types.FS, paths []string) ([]types.ProgramDocument, error) {
	docs := make([]types.ProgramDocument, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Parse decodes JSON into a generic document tree.
func Parse(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ProgramName derives the program name from a document path:
// programs/neovim.json is "neovim".
func ProgramName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
