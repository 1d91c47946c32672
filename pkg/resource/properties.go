package resource

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Init loads application properties from a YAML file, exiting when the file can not be read
func Init(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	defer func() { _ = file.Close() }()

	if err := Load(file); err != nil {
		log.Fatalf("Fail to load properties: %v", err)
	}
}

// Load replaces the current properties with the YAML document read from r.
// String values in the ${ENV_NAME:default} form are resolved against the environment.
func Load(r io.Reader) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("failed to parse properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable checks if the value is an environment variable pattern and resolves it
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a single property. Used by tests and command line overrides.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetInt64(key string) int64 {
	return properties.GetInt64(key)
}

func GetUint32(key string) uint32 {
	return properties.GetUint32(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
