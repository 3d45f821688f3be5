package utils

import (
	"fmt"
	"io"
	"os"
)

// GetConfigFile returns the content of the file at filepath
func GetConfigFile(filepath string) ([]byte, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filepath, err)
	}

	return configFileBytes, nil
}
