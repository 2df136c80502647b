// Package log is a small leveled logger used by the binaries in cmd/.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

type Logger interface {
	SetLevel(LogLevel)
	IsOutput(LogLevel) bool
	Debugf(string, ...any)
	Debugln(...any)
	Infof(string, ...any)
	Infoln(...any)
	Warningf(string, ...any)
	Warningln(...any)
	Errorf(string, ...any)
	Errorln(...any)
	SetOutput(io.Writer)
}

var DefaultLogger Logger = NewLogger(1)

func SetLevel(l LogLevel)              { DefaultLogger.SetLevel(l) }
func IsOutput(l LogLevel) bool         { return DefaultLogger.IsOutput(l) }
func SetOutput(w io.Writer)            { DefaultLogger.SetOutput(w) }
func Debugf(format string, v ...any)   { DefaultLogger.Debugf(format, v...) }
func Debugln(v ...any)                 { DefaultLogger.Debugln(v...) }
func Infof(format string, v ...any)    { DefaultLogger.Infof(format, v...) }
func Infoln(v ...any)                  { DefaultLogger.Infoln(v...) }
func Warningf(format string, v ...any) { DefaultLogger.Warningf(format, v...) }
func Warningln(v ...any)               { DefaultLogger.Warningln(v...) }
func Errorf(format string, v ...any)   { DefaultLogger.Errorf(format, v...) }
func Errorln(v ...any)                 { DefaultLogger.Errorln(v...) }

type logger struct {
	log   *log.Logger
	level LogLevel
	depth int32
}

func NewLogger(depth int32) *logger {
	return &logger{
		log:   log.New(os.Stdout, "", log.Lshortfile|log.LstdFlags),
		level: LevelInfo,
		depth: 2 + depth,
	}
}

func (l *logger) SetLevel(z LogLevel)     { l.level = z }
func (l logger) IsOutput(z LogLevel) bool { return l.level <= z }

func (l *logger) Debugf(format string, v ...any) {
	if l.level <= LevelDebug {
		l.log.Output(int(l.depth), fmt.Sprintf(format, v...))
	}
}

func (l *logger) Debugln(v ...any) {
	if l.level <= LevelDebug {
		l.log.Output(int(l.depth), fmt.Sprintln(v...))
	}
}

func (l *logger) Infof(format string, v ...any) {
	if l.level <= LevelInfo {
		l.log.Output(int(l.depth), fmt.Sprintf(format, v...))
	}
}

func (l *logger) Infoln(v ...any) {
	if l.level <= LevelInfo {
		l.log.Output(int(l.depth), fmt.Sprintln(v...))
	}
}

func (l *logger) Warningf(format string, v ...any) {
	if l.level <= LevelWarning {
		l.log.Output(int(l.depth), fmt.Sprintf(format, v...))
	}
}

func (l *logger) Warningln(v ...any) {
	if l.level <= LevelWarning {
		l.log.Output(int(l.depth), fmt.Sprintln(v...))
	}
}

func (l *logger) Errorf(format string, v ...any) {
	if l.level <= LevelError {
		l.log.Output(int(l.depth), fmt.Sprintf(format, v...))
	}
}

func (l *logger) Errorln(v ...any) {
	if l.level <= LevelError {
		l.log.Output(int(l.depth), fmt.Sprintln(v...))
	}
}

func (l *logger) SetOutput(w io.Writer) { l.log.SetOutput(w) }
