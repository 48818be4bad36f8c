package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends
const (
	BackendMock   = "mock"
	BackendRemote = "remote"
)

type Config struct {
	AppName      string
	Env          string // DEV (local; default), TEST, QA, PROD
	Build        string
	Debug        bool
	TestMode     bool
	RollbarToken string
	Backend      string

	Remote struct {
		BaseURL   string
		ProjectID string
		PublicKey string
		Timeout   time.Duration
	}

	Mock struct {
		MinLatency time.Duration
		MaxLatency time.Duration
		NoSeed     bool
	}

	Server struct {
		Address         string
		ShutdownTimeout time.Duration
	}
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Shule")
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("backend", BackendMock)
	v.SetDefault("remote.baseURL", "http://localhost:8000")
	v.SetDefault("remote.projectID", "")
	v.SetDefault("remote.publicKey", "")
	v.SetDefault("remote.timeout", 15*time.Second)
	v.SetDefault("mock.minLatency", 200*time.Millisecond)
	v.SetDefault("mock.maxLatency", 400*time.Millisecond)
	v.SetDefault("mock.noSeed", false)
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("mock.minLatency", time.Duration(0))
		v.SetDefault("mock.maxLatency", time.Duration(0))
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(ProjectRoot(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbarToken"),
		Backend:      CleanString(v.GetString("backend"), true /* lower */),
	}
	conf.Remote.BaseURL = strings.TrimRight(v.GetString("remote.baseURL"), "/")
	conf.Remote.ProjectID = v.GetString("remote.projectID")
	conf.Remote.PublicKey = v.GetString("remote.publicKey")
	conf.Remote.Timeout = v.GetDuration("remote.timeout")
	conf.Mock.MinLatency = v.GetDuration("mock.minLatency")
	conf.Mock.MaxLatency = v.GetDuration("mock.maxLatency")
	conf.Mock.NoSeed = v.GetBool("mock.noSeed")
	conf.Server.Address = v.GetString("server.address")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdownTimeout")
	return conf
}
