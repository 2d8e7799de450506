package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel парсит уровень логирования из строки конфига
// Неизвестные значения трактуются как info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger пишет структурированные строки лога в файл (с ротацией) и в stdout
type Logger struct {
	level  Level
	out    *log.Logger
	closer io.Closer
}

// New создает логгер с выводом в файл file и дублированием в stdout
// Ротация файла - через lumberjack (100 МБ, 5 бэкапов, 30 дней)
// Если file пустой, пишем только в stdout
func New(file string, level string) (*Logger, error) {
	var writer io.Writer = os.Stdout
	var closer io.Closer

	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
		}
		writer = io.MultiWriter(os.Stdout, rotated)
		closer = rotated
	}

	return &Logger{
		level:  ParseLevel(level),
		out:    log.New(writer, "", log.LstdFlags|log.Lmicroseconds),
		closer: closer,
	}, nil
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Debug логирует сообщение с уровнем DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение с уровнем INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение с уровнем WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение с уровнем ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение с уровнем FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	if l.closer != nil {
		l.closer.Close()
	}
	os.Exit(1)
}

func (l *Logger) write(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}
