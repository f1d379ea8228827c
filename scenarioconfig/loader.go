package scenarioconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the document at path, follows its parent chain, and
// folds the chain parent-first, child-last into a single effective
// configuration.
func Load(path string) (*ScenarioConfig, error) {
	chain, err := resolveImportChain(path)
	if err != nil {
		return nil, err
	}

	// chain is discovery order (child to parent); fold parent-first.
	var merged *PartialScenarioConfig
	for i := len(chain) - 1; i >= 0; i-- {
		if merged == nil {
			merged = chain[i]
			continue
		}
		merged = mergePartial(merged, chain[i])
	}

	return finalize(merged)
}

// resolveImportChain walks the parent chain starting at path, tracking
// visited literal path strings to detect cycles. Returns documents in
// child-to-parent discovery order.
func resolveImportChain(path string) ([]*PartialScenarioConfig, error) {
	var chain []*PartialScenarioConfig
	visited := make(map[string]bool)

	current := path
	for {
		if visited[current] {
			return nil, &CircularDependencyError{Path: current}
		}
		visited[current] = true

		doc, err := loadDocument(current)
		if err != nil {
			return nil, err
		}
		chain = append(chain, doc)

		if doc.Parent == nil {
			return chain, nil
		}

		parentPath := resolveImportPath(current, *doc.Parent)
		if _, statErr := os.Stat(parentPath); statErr != nil {
			return nil, &ParentConfigNotFoundError{Path: parentPath}
		}
		current = parentPath
	}
}

// resolveImportPath resolves a parent reference against the directory
// of the document that declared it: an absolute path is kept as-is; a
// relative path is resolved against the referring document's directory.
func resolveImportPath(referringPath, parent string) string {
	if filepath.IsAbs(parent) {
		return parent
	}
	return filepath.Join(filepath.Dir(referringPath), parent)
}

func loadDocument(path string) (*PartialScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CannotOpenConfigError{Path: path, Err: err}
	}

	var doc PartialScenarioConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &CannotReadConfigError{Path: path, Err: err}
	}
	return &doc, nil
}
