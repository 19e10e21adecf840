package config

// Config holds the application configuration
type Config struct {
	Port    int
	DataDir string
	Version string
}
