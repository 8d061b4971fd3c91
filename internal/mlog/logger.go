package mlog

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

var (
	l   = initLogger()
	nop = zerolog.Nop()
)

func initLogger() zerolog.Logger {
	var logger zerolog.Logger
	if ok, _ := strconv.ParseBool(os.Getenv("SLIST_JSON_LOGGER")); ok {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return logger.With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func L() *zerolog.Logger {
	return &l
}

func Nop() *zerolog.Logger {
	return &nop
}

func SetLvl(lvl zerolog.Level) {
	l = l.Level(lvl)
}

func Lvl() zerolog.Level {
	return l.GetLevel()
}
