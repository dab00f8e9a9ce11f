package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер с JSON-форматом и заданным уровнем. Журнал инцидентов
// читается машинами (агрегаторы, алерты), поэтому формат всегда JSON.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
