package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Secrets struct {
	Db            DbSecrets    `json:"db"`
	Jwt           string       `json:"jwt"`
	AdminApiKey   string       `json:"adminApiKey"`
	ChatGPTApiKey string       `json:"gpt"`
	SES           SesSecrets   `json:"ses"`
	Redis         RedisSecrets `json:"redis"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

type SesSecrets struct {
	Region    string `json:"region"`
	FromEmail string `json:"fromEmail"`
}

type RedisSecrets struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// SecretsFile picks the secrets file for the given environment. An
// explicit path always wins.
func SecretsFile(env, override string) string {
	if override != "" {
		return override
	}
	switch strings.ToLower(env) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

func LoadSecrets(path string) (*Secrets, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secrets: %w", err)
	}

	return &secrets, nil
}
