package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPhoneRegion is used when no region is configured.
const DefaultPhoneRegion = "US"

// Config holds seeder settings.
type Config struct {
	// DatasetPath points at a JSON array of advocates. Empty means the
	// dataset embedded in the binary.
	DatasetPath string `yaml:"dataset_path"   env:"SEEDER_DATASET_PATH"`
	// PhoneRegion is the region phone numbers are checked against.
	PhoneRegion string `yaml:"phone_region"   env:"SEEDER_PHONE_REGION"   env-default:"US"`
	DryRun      bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
	Migrate     bool   `yaml:"migrate"        env:"SEEDER_MIGRATE"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
