package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is a saved view of the occupancy chart: zoom or explicit range,
// reference date and filters. Zero values mean "use the default".
type Profile struct {
	Locale        string         `yaml:"locale" toml:"locale" validate:"omitempty,oneof=en de"`
	Zoom          int            `yaml:"zoom" toml:"zoom" validate:"omitempty,oneof=3 6 12 24 36 60"`
	Range         *ProfileRange  `yaml:"range" toml:"range"`
	ReferenceDate string         `yaml:"referenceDate" toml:"reference_date" validate:"omitempty,datetime=2006-01-02"`
	BandCount     int            `yaml:"bandCount" toml:"band_count" validate:"omitempty,min=1,max=10"`
	Filters       ProfileFilters `yaml:"filters" toml:"filters"`
}

type ProfileRange struct {
	Start string `yaml:"start" toml:"start" validate:"required,datetime=2006-01-02"`
	End   string `yaml:"end" toml:"end" validate:"required,datetime=2006-01-02"`
}

type ProfileFilters struct {
	Search           string `yaml:"search" toml:"search"`
	Fuzzy            bool   `yaml:"fuzzy" toml:"fuzzy"`
	RelevanceType    string `yaml:"relevanceType" toml:"relevance_type"`
	OrganizationUnit string `yaml:"organizationUnit" toml:"organization_unit"`
	TariffGroup      string `yaml:"tariffGroup" toml:"tariff_group"`
	UnfilledOnly     bool   `yaml:"unfilledOnly" toml:"unfilled_only"`
}

// LoadProfile decodes a YAML (.yaml, .yml) or TOML (.toml) profile.
func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile")
	}
	p := &Profile{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, p); err != nil {
			return nil, errors.Wrapf(err, "failed to parse profile %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(b, p); err != nil {
			return nil, errors.Wrapf(err, "failed to parse profile %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported profile format: %s", path)
	}
	if err := validate.Struct(p); err != nil {
		return nil, errors.Wrapf(err, "invalid profile %s", path)
	}
	return p, nil
}
