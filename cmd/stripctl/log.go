package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// colorFormatter prints the message colored by level, for use on a terminal. Debug and trace entries get their level
// and fields too, since those are the ones carrying frame and channel details.
type colorFormatter struct{}

func levelColor(level log.Level) int {
	switch level {
	case log.DebugLevel, log.TraceLevel:
		return 90 // dark grey
	case log.WarnLevel:
		return 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		return 91 // bright red
	default:
		return 39
	}
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "\x1b[%dm", levelColor(entry.Level))
	verbose := entry.Level >= log.DebugLevel
	if verbose {
		fmt.Fprintf(b, "%-5s ", strings.ToUpper(entry.Level.String()))
	}
	b.WriteString(entry.Message)

	if verbose && len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}
	b.WriteString("\x1b[0m\n")
	return b.Bytes(), nil
}

func setupLogging(colored, debug bool) {
	if colored {
		log.SetFormatter(&colorFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	if debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}
}
