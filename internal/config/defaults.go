package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"provider": "deepseek",
		"deepseek": map[string]interface{}{
			"api_key":  "",
			"base_url": "https://api.deepseek.com",
			"timeout":  120,
		},
		"ollama": map[string]interface{}{
			"base_url": "http://localhost:11434",
			"timeout":  120,
		},
		"model": map[string]interface{}{
			"name":        "deepseek-chat",
			"max_tokens":  1024,
			"temperature": 0.2,
		},
		"server": map[string]interface{}{
			"addr": ":5000",
		},
		"database": map[string]interface{}{
			"path": "reminders.db",
		},
		"scheduler": map[string]interface{}{
			"tick": 1,
		},
		"twilio": map[string]interface{}{
			"account_sid":     "",
			"auth_token":      "",
			"whatsapp_number": "",
		},
		"voice": map[string]interface{}{
			"enabled": true,
			"command": "",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.remindagent/config.yaml"
}
