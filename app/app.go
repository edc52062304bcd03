package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"shoplend-totem/db"
	"shoplend-totem/session"
	"shoplend-totem/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Atalhos usados pelos handlers.
type Ctx = gin.Context
type H = gin.H

// App agrega as dependências do totem.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *zap.Logger
	Config Config

	opSess *session.OperatorSessionStore
}

// Config é lida das variáveis de ambiente.
type Config struct {
	RedisAddr   string
	RedisPwd    string
	WebOrigins  []string
	OperatorTTL time.Duration
}

func (a *App) OperatorSessions() *session.OperatorSessionStore { return a.opSess }

func MustNew() *App {
	cfg := loadConfig()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis inacessível", zap.Error(err))
	}

	// Regras de validação de CPF e telefone usadas nos binding tags.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterRules(v)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigins)
	a := &App{
		Router: r, DB: dbConn, RDB: rdb, Log: logger, Config: cfg,
		opSess: session.NewOperatorSessionStore(rdb, cfg.OperatorTTL),
	}
	return a
}

func (a *App) Close() {
	_ = a.RDB.Close()
	_ = a.Log.Sync()
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	// Turno padrão de 8h: o operador escolhido no início do expediente
	// permanece até sair ou a sessão expirar.
	ttl := 8 * time.Hour
	if d, err := time.ParseDuration(get("OPERATOR_TTL_SECONDS", "28800") + "s"); err == nil {
		ttl = d
	}

	originsCSV := get("WEB_ORIGINS", "http://localhost:5173")
	var origins []string
	for _, o := range strings.Split(originsCSV, ",") {
		if s := strings.TrimSpace(o); s != "" {
			origins = append(origins, s)
		}
	}

	return Config{
		RedisAddr:   get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:    os.Getenv("REDIS_PASSWORD"),
		WebOrigins:  origins,
		OperatorTTL: ttl,
	}
}
