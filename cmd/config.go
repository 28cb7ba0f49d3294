package main

import "time"

type Config struct {
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=8080"`
	SQLiteFilepath  string        `env:"SQLITE_FILEPATH,default=board.db"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=board-sessions"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	SessionDuration time.Duration `env:"SESSION_DURATION,default=24h"`
	DisplayTimezone string        `env:"DISPLAY_TIMEZONE,default=America/New_York"`
}
