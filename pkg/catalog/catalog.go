// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"
)

func Load(path string) (*TemplateCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat TemplateCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}
