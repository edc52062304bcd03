package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv carrega o .env quando existe; em produção as variáveis vêm do
// ambiente e o arquivo não está lá.
func LoadEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("erro ao carregar .env: %v", err)
	}
}
