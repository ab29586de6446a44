package config

import "github.com/ilyakaznacheev/cleanenv"

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FileReader reads the file at Path and then overrides
// its values with the ones set in the environment.
type FileReader struct {
	Path string
}

func NewFileReader(path string) FileReader {
	return FileReader{Path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.Path, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewReader picks a FileReader when path is set and an EnvReader otherwise.
func NewReader(path string) Reader {
	if path == "" {
		return NewEnvReader()
	}
	return NewFileReader(path)
}

func ReadClientEnv() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
