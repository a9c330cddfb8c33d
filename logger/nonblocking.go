package logger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const backlog = 10000

type line struct {
	data  *Fields
	msg   string
	level Level
	time  time.Time
}

type nonBlocking struct {
	lines        chan line
	avoidChannel bool
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NonBlocking is the package-wide asynchronous log writer
var NonBlocking *nonBlocking

func init() {
	NonBlocking = newNonBlockingLogger()
}

func logOneLine(l line) {
	entry := logrus.NewEntry(logrus.StandardLogger())
	entry.Time = l.time
	if l.data != nil {
		entry = entry.WithFields(logrus.Fields(*l.data))
	}
	entry.Log(logrus.Level(l.level), l.msg)
}

func newNonBlockingLogger() *nonBlocking {
	lines := make(chan line, backlog)
	ctx, cancel := context.WithCancel(context.Background())
	l := &nonBlocking{lines: lines, ctx: ctx, cancel: cancel}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case oneLine, ok := <-lines:
				if !ok {
					logrus.Errorf("non blocking log channel unexpectedly closed, writer stopped")
					return
				}
				logOneLine(oneLine)
			case <-ctx.Done():
				for {
					select {
					case oneLine := <-lines:
						logOneLine(oneLine)
					default:
						return
					}
				}
			}
		}
	}()
	return l
}

// AvoidChannel should be used in tests only
func (l *nonBlocking) AvoidChannel() {
	l.avoidChannel = true
}

// Logf formats and queues a log line
func (l *nonBlocking) Logf(level Level, fields *Fields, format string, args ...interface{}) {
	if !IsLevelEnabled(level) {
		return
	}

	oneLine := line{
		msg:   fmt.Sprintf(format, args...),
		data:  fields,
		level: level,
		time:  time.Now(),
	}

	if l.avoidChannel {
		logOneLine(oneLine)
		return
	}

	select {
	case l.lines <- oneLine:
	default:
		logrus.Errorf("log backlog is full, dropping line")
	}
}

// Log queues a log line
func (l *nonBlocking) Log(level Level, fields *Fields, a ...interface{}) {
	if !IsLevelEnabled(level) {
		return
	}
	oneLine := line{
		msg:   fmt.Sprint(a...),
		data:  fields,
		level: level,
		time:  time.Now(),
	}
	if l.avoidChannel {
		logOneLine(oneLine)
		return
	}

	select {
	case l.lines <- oneLine:
	default:
		logrus.Errorf("log backlog is full, dropping line")
	}
}

// Exit verifies all queued log records are written before exiting
func (l *nonBlocking) Exit() {
	l.AvoidChannel()
	l.cancel()
	l.wg.Wait()
}
