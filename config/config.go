package config

import (
	"errors"
	"io"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Version of sliceresize
var Version = "0.1.0"

const (
	// NameSpace is the environment prefix, e.g. SLICERESIZE_WIDTH
	NameSpace = "sliceresize"

	dotenvFile = ".env"
)

// Config holds the defaults of a run, every field can be overridden on the command line
type Config struct {
	Width   uint   `envconfig:"WIDTH" default:"1200"`
	Height  uint   `envconfig:"HEIGHT" default:"800"`
	Suffix  string `envconfig:"SUFFIX" default:"slice.jpg"`
	Naming  string `envconfig:"NAMING" default:"hyphen"` // hyphen or underscore
	Quality int    `envconfig:"QUALITY" default:"90"`
	Engine  string `envconfig:"ENGINE" default:"imaging"`
	Workers int    `envconfig:"WORKERS" default:"1"`
	Develop bool   `envconfig:"DEVELOP"`
}

// Current the loaded config
var Current Config

func init() {
	if err := Load(); err != nil {
		log.Printf("load config fail: %s", err)
	}
}

// Load reads an optional .env file then the environment into Current
func Load() error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load %s fail: %s", dotenvFile, err)
	}
	var c Config
	if err := envconfig.Process(NameSpace, &c); err != nil {
		return err
	}
	Current = c
	return nil
}

// InDevelop returns true when the development logger should be used
func InDevelop() bool {
	return Current.Develop
}

// Usage writes the environment variables understood by Load
func Usage(w io.Writer) error {
	return envconfig.Usagef(NameSpace, &Config{}, w, envconfig.DefaultTableFormat)
}
