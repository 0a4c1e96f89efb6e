package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata describes the trained model bundle: display name plus the
// evaluation numbers recorded at export time. Served verbatim by the
// health endpoint.
type Metadata struct {
	ModelName string  `yaml:"model_name" json:"model_name"`
	Accuracy  float64 `yaml:"accuracy" json:"accuracy"`
	F1Score   float64 `yaml:"f1_score" json:"f1_score"`
	Version   string  `yaml:"version" json:"version"`
}

// LoadMetadata reads metadata.yaml from the bundle.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}
	if meta.ModelName == "" {
		meta.ModelName = "fakenews_v1"
	}
	return meta, nil
}
