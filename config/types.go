package config

type Config struct {
	Palette string `json:"palette"`
}
