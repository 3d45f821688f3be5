package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./config/config.yaml"

	configFileEnv  = "BIKESHARE_CONFIG"
	logLevelEnv    = "LOG_LEVEL"
	datasetsDirEnv = "DATASETS_DIR"
	stationsEnv    = "STATIONS_FILE"
)

// PaginationConfig controls the raw data view
// + PageSize: rows shown per window
// + FirstPageOffset: position of the first row shown
type PaginationConfig struct {
	PageSize        int `yaml:"page_size"`
	FirstPageOffset int `yaml:"first_page_offset"`
}

// ExplorerConfig
// + LogLevel: logrus level name
// + DatasetsDir: directory relative dataset paths are resolved against
// + Datasets: city -> dataset file
// + StationsFile: optional station coordinates file
// + CSVDelimiter: field separator of the dataset files
// + TimestampLayouts: layouts tried to parse Start Time and End Time
type ExplorerConfig struct {
	LogLevel         string            `yaml:"log_level"`
	DatasetsDir      string            `yaml:"datasets_dir"`
	Datasets         map[string]string `yaml:"datasets"`
	StationsFile     string            `yaml:"stations_file"`
	CSVDelimiter     string            `yaml:"csv_delimiter"`
	TimestampLayouts []string          `yaml:"timestamp_layouts"`
	Pagination       PaginationConfig  `yaml:"pagination"`
}

func defaults() ExplorerConfig {
	return ExplorerConfig{
		LogLevel:         "info",
		DatasetsDir:      ".",
		CSVDelimiter:     ",",
		TimestampLayouts: []string{"2006-01-02 15:04:05"},
		Pagination: PaginationConfig{
			PageSize:        5,
			FirstPageOffset: 5,
		},
	}
}

// LoadConfig reads the .env file if present, then the YAML config file named by
// BIKESHARE_CONFIG (./config/config.yaml by default). LOG_LEVEL, DATASETS_DIR and
// STATIONS_FILE override the file.
func LoadConfig() (*ExplorerConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("error loading .env file: %s", err)
	}

	configFilepath := os.Getenv(configFileEnv)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadConfigFrom(configFilepath)
}

// LoadConfigFrom reads the YAML config file at configFilepath and applies env overrides
func LoadConfigFrom(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	explorerConfig := defaults()
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if datasetsDir := os.Getenv(datasetsDirEnv); datasetsDir != "" {
		explorerConfig.DatasetsDir = datasetsDir
	}
	if stationsFile := os.Getenv(stationsEnv); stationsFile != "" {
		explorerConfig.StationsFile = stationsFile
	}

	if err := explorerConfig.validate(); err != nil {
		return nil, err
	}
	return &explorerConfig, nil
}

func (c *ExplorerConfig) validate() error {
	if len(c.Datasets) == 0 {
		return fmt.Errorf("invalid config: no datasets configured")
	}
	if len([]rune(c.CSVDelimiter)) != 1 {
		return fmt.Errorf("invalid config: csv_delimiter must be a single character, got %q", c.CSVDelimiter)
	}
	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("invalid config: pagination.page_size must be positive, got %v", c.Pagination.PageSize)
	}
	if c.Pagination.FirstPageOffset < 0 {
		return fmt.Errorf("invalid config: pagination.first_page_offset cannot be negative, got %v", c.Pagination.FirstPageOffset)
	}
	return nil
}

// DatasetPaths returns city -> dataset path, with relative paths joined to DatasetsDir.
// City names are lowercased so the file can use any case.
func (c *ExplorerConfig) DatasetPaths() map[string]string {
	paths := make(map[string]string, len(c.Datasets))
	for city, path := range c.Datasets {
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.DatasetsDir, path)
		}
		paths[strings.ToLower(strings.TrimSpace(city))] = path
	}
	return paths
}

// Delimiter returns CSVDelimiter as a rune
func (c *ExplorerConfig) Delimiter() rune {
	return []rune(c.CSVDelimiter)[0]
}
