package configs

import (
	"bytes"
	_ "embed"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env file: %v", err)
	}

	loadProperties()
	loadMessages()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-data-api"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", resource.GetString("app.server.context-path")),
	}
}

// loadProperties reads PROPERTIES_FILE_PATH when set, the embedded application.yml otherwise
func loadProperties() {
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		resource.Init(path)
		return
	}
	if err := resource.Load(bytes.NewReader(applicationYAML)); err != nil {
		log.Fatalf("Fail to load embedded properties: %v", err)
	}
}

// loadMessages reads MESSAGES_FILE_PATH when set, the embedded messages.yml otherwise
func loadMessages() {
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		msg.Init(path)
		return
	}
	if err := msg.Load(bytes.NewReader(messagesYAML)); err != nil {
		log.Fatalf("Fail to load embedded messages: %v", err)
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
