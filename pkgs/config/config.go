package config

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Structures
////////////////////////////////////////////////////////////////////////////////

// Credentials holds the OAuth 1.0a key material for the configured account
type Credentials struct {
	APIKey            string `yaml:"api_key"`
	APISecret         string `yaml:"api_secret"`
	AccessToken       string `yaml:"access_token"`
	AccessTokenSecret string `yaml:"access_token_secret"`
}

// Config represents the main application configuration
type Config struct {
	Credentials  Credentials `yaml:"credentials"`
	Username     string      `yaml:"username"`
	Port         string      `yaml:"port"`
	MessageCount int         `yaml:"message_count"`
}

const (
	DEFAULT_PORT          = "3000"
	DEFAULT_MESSAGE_COUNT = 20
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Management Functions
////////////////////////////////////////////////////////////////////////////////

// ReadConfig reads configuration from the specified path
func ReadConfig(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var result Config
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	result.applyDefaults()
	return &result, nil
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}

// PromptConfig interactively prompts user for configuration and saves it
func PromptConfig(saveto string) (*Config, error) {
	conf := Config{}
	scan := bufio.NewScanner(os.Stdin)

	print("enter api key: ")
	scan.Scan()
	conf.Credentials.APIKey = scan.Text()

	print("enter api secret: ")
	scan.Scan()
	conf.Credentials.APISecret = scan.Text()

	print("enter access token: ")
	scan.Scan()
	conf.Credentials.AccessToken = scan.Text()

	print("enter access token secret: ")
	scan.Scan()
	conf.Credentials.AccessTokenSecret = scan.Text()

	print("enter username: ")
	scan.Scan()
	conf.Username = scan.Text()

	conf.applyDefaults()
	return &conf, WriteConfig(saveto, &conf)
}

// applyDefaults fills in the optional fields the config file may omit
func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = DEFAULT_PORT
	}
	if c.MessageCount <= 0 {
		c.MessageCount = DEFAULT_MESSAGE_COUNT
	}
}
