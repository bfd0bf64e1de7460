package configuration

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tum-aet/staffplan/pkg/logging"
)

const Production = "production"

var validate = validator.New()

// LoadEnv loads the env files that exist and returns how many were found.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

type EngineOptions struct {
	BandCount          int     `env:"STAFFPLAN_BAND_COUNT" envDefault:"4" validate:"min=1,max=10"`
	DefaultZoomMonths  int     `env:"STAFFPLAN_DEFAULT_ZOOM" envDefault:"12" validate:"oneof=3 6 12 24 36 60"`
	OuterYears         int     `env:"STAFFPLAN_OUTER_YEARS" envDefault:"3" validate:"min=1,max=50"`
	GapMinWidthPercent float64 `env:"STAFFPLAN_GAP_MIN_WIDTH_PERCENT" envDefault:"0.5" validate:"gte=0,lte=100"`
	FuzzySearch        bool    `env:"STAFFPLAN_FUZZY_SEARCH" envDefault:"false"`
}

type Configuration struct {
	Engine EngineOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	Locale           string `env:"STAFFPLAN_LOCALE" envDefault:"de" validate:"oneof=en de"`
	// silent, error, warn, info, debug
	LogLevel        string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath         string `env:"LOG_PATH"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"`

	logFile io.Closer
	logger  *logrus.Logger
}

// Load reads the env files and the process environment into a fresh configuration.
func Load(envFiles []string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		c.Unload()
		return nil, err
	}
	return c, nil
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return errors.Wrap(err, "failed to load env files")
	}
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "failed to parse environment")
	}
	if n == 0 && c.GoAppEnvironment == Production {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if c.LogPath == "" {
		c.logger = logging.ConsoleLogger(c.LogrusLogLevel())
		return nil
	}
	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open log file %s", c.LogPath)
	}
	c.logFile = f
	c.logger = logger
	return nil
}

// Unload releases the log file.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
		c.logFile = nil
	}
}
