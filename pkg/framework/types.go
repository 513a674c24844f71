package framework

import "strings"

// DocumentKind classifies a framework document.
type DocumentKind string

const (
	// KindChain is a prompt-chain document: an ordered prompt sequence.
	KindChain DocumentKind = "chain"
	// KindContext is a business-context document fed to prompts as input.
	KindContext DocumentKind = "context"
	// KindReference is static reference material.
	KindReference DocumentKind = "reference"
)

// Document describes one markdown document in the library.
type Document struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Path        string       `json:"path"`
	Kind        DocumentKind `json:"kind"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// frontMatter is the optional YAML header of a document.
type frontMatter struct {
	Title       string   `json:"title"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// FilterByKind returns the documents of the given kind; an empty kind
// returns the input unchanged.
func FilterByKind(docs []Document, kind DocumentKind) []Document {
	if kind == "" {
		return docs
	}
	filtered := make([]Document, 0)
	for _, doc := range docs {
		if doc.Kind == kind {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// FilterByTag returns the documents carrying the given tag; an empty tag
// returns the input unchanged.
func FilterByTag(docs []Document, tag string) []Document {
	if tag == "" {
		return docs
	}
	filtered := make([]Document, 0)
	for _, doc := range docs {
		for _, t := range doc.Tags {
			if strings.EqualFold(t, tag) {
				filtered = append(filtered, doc)
				break
			}
		}
	}
	return filtered
}

// parseKind maps a front-matter kind value to a DocumentKind, defaulting to
// reference for anything unrecognized.
func parseKind(value string) DocumentKind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "chain":
		return KindChain
	case "context":
		return KindContext
	}
	return KindReference
}
