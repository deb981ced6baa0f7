package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server Server
	Users  Users
	Roster Roster
	Exam   Exam
	Auth   Auth
}

type Server struct {
	Port        uint16 `envconfig:"CRADLE_HTTP_PORT" default:"8123"`
	TemplateDir string `envconfig:"CRADLE_TEMPLATE_DIR" default:"web/tmpl"`
}

type Users struct {
	Path string `envconfig:"CRADLE_USERS_FILE" default:"data/users.json"`
}

type Roster struct {
	// Path optionally points at a YAML roster overriding the built-in
	// demo patients and children.
	Path string `envconfig:"CRADLE_ROSTER_FILE" default:""`

	// DemoPatients pads the doctor roster with synthetic entries, which
	// keeps demos interesting on big screens.
	DemoPatients int   `envconfig:"CRADLE_DEMO_PATIENTS" default:"0"`
	DemoSeed     int64 `envconfig:"CRADLE_DEMO_SEED" default:"1"`
}

type Exam struct {
	ConnectDelay time.Duration `envconfig:"CRADLE_CONNECT_DELAY" default:"2s"`
}

type Auth struct {
	// Simulated submission latency, matching the device-less demo feel.
	LoginDelay    time.Duration `envconfig:"CRADLE_LOGIN_DELAY" default:"800ms"`
	RegisterDelay time.Duration `envconfig:"CRADLE_REGISTER_DELAY" default:"700ms"`
}

func New() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}
	return c, nil
}
