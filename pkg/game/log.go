package game

import (
	"fmt"
	"log"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

func (s *Session) Log(level int, a ...interface{}) {
	if level > s.LogLevel {
		return
	}

	log.Print(fmt.Sprint(a...))
}

func (s *Session) Logf(level int, format string, a ...interface{}) {
	if level > s.LogLevel {
		return
	}

	log.Printf(format, a...)
}
