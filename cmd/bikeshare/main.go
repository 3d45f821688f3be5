package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/explorer"
	"bikeshare/loader"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading config: %s", err)
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	datasetLoader, err := loader.NewLoader(explorerConfig.DatasetPaths(), loader.Options{
		Delimiter:        explorerConfig.Delimiter(),
		TimestampLayouts: explorerConfig.TimestampLayouts,
	})
	if err != nil {
		log.Fatalf("error configuring datasets: %s", err)
	}

	stations, err := loader.LoadStations(explorerConfig.StationsFile)
	if err != nil {
		log.Warnf("error loading stations, journey distances disabled: %s", err)
		stations = nil
	}

	bikeshareExplorer := explorer.NewExplorer(
		explorer.Config{
			PageSize:        explorerConfig.Pagination.PageSize,
			FirstPageOffset: explorerConfig.Pagination.FirstPageOffset,
		},
		datasetLoader,
		stations,
		os.Stdin,
		os.Stdout,
	)

	if err := bikeshareExplorer.Run(); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debug("Finish main.go")
}
