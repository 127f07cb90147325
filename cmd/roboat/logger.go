package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// logger adapts logrus to roboat.Logger. Key-value pairs become fields.
type logger struct {
	l *log.Logger
}

func newLogger(l *log.Logger) *logger {
	return &logger{l: l}
}

func (l *logger) entry(keysAndValues []interface{}) *log.Entry {
	fields := log.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = nil
		}
	}
	return l.l.WithFields(fields)
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Debug(msg)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Info(msg)
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Warn(msg)
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.entry(keysAndValues).Error(msg)
}
