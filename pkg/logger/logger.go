// Package logger configura el logging estructurado de la aplicación.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New construye el logger raíz y lo fija como logger global de zerolog.
// En development escribe consola legible; en cualquier otro ambiente, una
// línea JSON por evento. Un nivel desconocido cae a info.
func New(env, level string) zerolog.Logger {
	var zl zerolog.Logger
	if env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zl = zerolog.New(os.Stdout)
	}

	lv, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lv == zerolog.NoLevel {
		lv = zerolog.InfoLevel
	}
	zl = zl.Level(lv).With().Timestamp().Logger()

	log.Logger = zl
	return zl
}

// Component devuelve un sublogger etiquetado con el nombre del componente.
func Component(zl zerolog.Logger, name string) zerolog.Logger {
	return zl.With().Str("component", name).Logger()
}
