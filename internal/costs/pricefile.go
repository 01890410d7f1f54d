package costs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type priceFileEntry struct {
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

// LoadPriceOverrides merges per-model prices from a YAML file into the price
// table. Keys are model names in USD per million tokens; the key "default"
// replaces the fallback row for unknown models. Safe to call concurrently
// with EstimateCost.
func LoadPriceOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read price table file %q: %w", path, err)
	}

	var entries map[string]priceFileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse price table file %q: %w", path, err)
	}

	priceMu.Lock()
	defer priceMu.Unlock()
	for name, entry := range entries {
		price := modelPrice{entry.InputPerMTok, entry.OutputPerMTok}
		if name == "default" {
			defaultPrice = price
			continue
		}
		priceTable[name] = price
	}

	return nil
}
