package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config represents cmd/packetdump's on-disk configuration: which
// protocol version to decode against, the input format, and verbosity.
type Config struct {
	Dump DumpConfig
}

// DumpConfig controls a packetdump run.
type DumpConfig struct {
	ShieldID    int
	InputFormat string
	Verbose     bool
}

// LoadConfig loads configuration from an INI file.
func LoadConfig(filename string) (*Config, error) {
	content, err := readFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{Dump: DumpConfig{InputFormat: "hex"}}
	if err := parseINI(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func readFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	content := make([]byte, 0, 1024)
	buffer := make([]byte, 512)
	for {
		n, err := file.Read(buffer)
		if n > 0 {
			content = append(content, buffer[:n]...)
		}
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return "", err
		}
	}
	return string(content), nil
}

func parseINI(content string, config *Config) error {
	lines := strings.Split(content, "\n")
	var currentSection string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.Trim(line, "[]")
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if err := setConfigValue(config, currentSection, key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func setConfigValue(config *Config, section, key, value string) error {
	if section != "Dump" {
		return nil
	}
	switch key {
	case "ShieldID":
		id, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ShieldID value: %s", value)
		}
		config.Dump.ShieldID = id
	case "InputFormat":
		config.Dump.InputFormat = value
	case "Verbose":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid Verbose value: %s", value)
		}
		config.Dump.Verbose = v
	}
	return nil
}
