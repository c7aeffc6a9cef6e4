package config

type TelegramConfig struct {
	On       bool   `yaml:"enabled"`
	ApiToken string `yaml:"token"`
	Chat     int64  `yaml:"chat-id"`
	Commands bool   `yaml:"listen"`
}

func (t *TelegramConfig) Enabled() bool {
	return t.On
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// ChatID is the only chat notified and the only one whose commands are served.
func (t *TelegramConfig) ChatID() int64 {
	return t.Chat
}

func (t *TelegramConfig) Listen() bool {
	return t.Commands
}
