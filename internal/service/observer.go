package service

import (
	"covid19-tracker-service/internal/model"

	"github.com/sirupsen/logrus"
)

// Observer is notified after every applied transition and every failed fetch.
// Calls happen one at a time in commit order, after the controller has
// released its state lock, on whichever goroutine is draining the queue. An observer may read
// State or LastError but must not start another transition from inside a call.
type Observer interface {
	StateChanged(state model.ViewState, event Event)
	FetchFailed(err error)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnStateChange func(state model.ViewState, event Event)
	OnFetchError  func(err error)
}

func (o ObserverFuncs) StateChanged(state model.ViewState, event Event) {
	if o.OnStateChange != nil {
		o.OnStateChange(state, event)
	}
}

func (o ObserverFuncs) FetchFailed(err error) {
	if o.OnFetchError != nil {
		o.OnFetchError(err)
	}
}

// LoggingObserver writes transitions and failures to logrus.
type LoggingObserver struct {
	Entry *logrus.Entry
}

func NewLoggingObserver(sessionID string) *LoggingObserver {
	return &LoggingObserver{Entry: logrus.WithField("session", sessionID)}
}

func (l *LoggingObserver) StateChanged(state model.ViewState, event Event) {
	l.Entry.WithFields(logrus.Fields{
		"event":      event.Name(),
		"country":    state.SelectedCountry,
		"cases_type": state.SelectedCasesType,
	}).Debug("View state changed")
}

func (l *LoggingObserver) FetchFailed(err error) {
	l.Entry.WithError(err).Warn("Failed fetching dashboard data")
}
