package config

// Configfile represents the structure of the dpms.yaml configuration file.
type Configfile struct {
	Mirror string    `yaml:"mirror"`
	Log    LogConfig `yaml:"log"`
}

// LogConfig represents the log section of the configuration file.
type LogConfig struct {
	Format string `yaml:"format"`
}
