package framework

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

// ErrNotFound is returned when a named document does not exist.
var ErrNotFound = errors.New("document not found")

// Library provides read access to the framework documents (prompt chains,
// business-context documents and reference material) under a root directory.
type Library struct {
	root string
}

// NewLibrary creates a library over the given root directory. The directory
// does not have to exist yet; a missing root lists as empty.
func NewLibrary(root string) *Library {
	return &Library{root: root}
}

// Root returns the library's root directory.
func (l *Library) Root() string {
	return l.root
}

// List discovers every markdown document under the root, in stable name
// order. Unreadable files are skipped.
func (l *Library) List() ([]Document, error) {
	docs := make([]Document, 0)

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		doc, err := l.describe(path)
		if err != nil {
			return nil // skip unreadable documents
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return docs, nil
		}
		return nil, fmt.Errorf("failed to list documents under %s: %w", l.root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Get returns the metadata of a single named document.
func (l *Library) Get(name string) (Document, error) {
	docs, err := l.List()
	if err != nil {
		return Document{}, err
	}
	for _, doc := range docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Read returns the full content of a named document, front matter excluded.
func (l *Library) Read(name string) (string, error) {
	doc, err := l.Get(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", name, err)
	}
	_, body := splitFrontMatter(string(data))
	return body, nil
}

// describe builds a Document from a file path, reading YAML front matter
// when present and falling back to path-derived metadata.
func (l *Library) describe(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), ".md")
	doc := Document{
		Name:  name,
		Title: name,
		Path:  path,
		Kind:  kindFromPath(l.root, path),
	}

	meta, _ := splitFrontMatter(string(data))
	if meta == "" {
		return doc, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return doc, nil // malformed front matter degrades to path metadata
	}
	if fm.Title != "" {
		doc.Title = fm.Title
	}
	if fm.Kind != "" {
		doc.Kind = parseKind(fm.Kind)
	}
	doc.Description = fm.Description
	doc.Tags = fm.Tags
	return doc, nil
}

// kindFromPath derives the document kind from its first directory component
// under the root.
func kindFromPath(root, path string) DocumentKind {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return KindReference
	}
	dir := strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
	switch dir {
	case "chains":
		return KindChain
	case "context":
		return KindContext
	}
	return KindReference
}

const frontMatterDelimiter = "---"

// splitFrontMatter separates an optional leading YAML front-matter block
// from the document body.
func splitFrontMatter(content string) (meta, body string) {
	if !strings.HasPrefix(content, frontMatterDelimiter+"\n") {
		return "", content
	}
	rest := content[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return "", content
	}
	meta = rest[:end]
	body = rest[end+1+len(frontMatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")
	return meta, body
}
