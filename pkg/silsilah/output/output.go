// Package output serializes family hierarchies.
package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
)

// SearchResult is a filtered hierarchy together with the term that produced it.
type SearchResult struct {
	Term string            `json:"term" yaml:"term"`
	Tree *models.Hierarchy `json:"tree" yaml:"tree"`
}

// ToJSON serializes a hierarchy to JSON.
func ToJSON(h *models.Hierarchy, pretty bool) ([]byte, error) {
	return marshalJSON(orEmpty(h), pretty)
}

// ResultToJSON serializes a search result to JSON.
func ResultToJSON(term string, h *models.Hierarchy, pretty bool) ([]byte, error) {
	return marshalJSON(SearchResult{Term: term, Tree: orEmpty(h)}, pretty)
}

// ToYAML serializes a hierarchy to YAML.
func ToYAML(h *models.Hierarchy) ([]byte, error) {
	return yaml.Marshal(orEmpty(h))
}

// ResultToYAML serializes a search result to YAML.
func ResultToYAML(term string, h *models.Hierarchy) ([]byte, error) {
	return yaml.Marshal(SearchResult{Term: term, Tree: orEmpty(h)})
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func orEmpty(h *models.Hierarchy) *models.Hierarchy {
	if h == nil {
		return models.NewHierarchy()
	}
	return h
}
