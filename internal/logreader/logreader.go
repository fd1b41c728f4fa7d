// Package logreader tails the game client's append-only log files and
// turns raw lines into channel-tagged records for the session.
//
// The client truncates Power.log on restart rather than rotating it, so
// the tailer watches for shrinking files and starts over from the top
// when that happens. File-system notifications via fsnotify drive reads
// when available; a poll ticker covers platforms and network mounts
// where notifications are unreliable.
package logreader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// PowerLogFile is the file name carrying the Power channel.
const PowerLogFile = "Power.log"

// Line is one parsed log line.
type Line struct {
	Channel string
	Text    string
	Time    time.Time
}

// Watcher tails a single log file.
type Watcher struct {
	dir      string
	file     string
	channel  string
	interval time.Duration
	logger   *zap.Logger

	offset int64
	rest   string
}

// NewPowerWatcher tails Power.log in dir, emitting lines on the Power
// channel.
func NewPowerWatcher(dir string, interval time.Duration, logger *zap.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		file:     filepath.Join(dir, PowerLogFile),
		channel:  strings.TrimSuffix(PowerLogFile, ".log"),
		interval: interval,
		logger:   logger,
	}
}

// Watch starts tailing and returns the line channel. The channel closes
// when ctx is cancelled. The watched file does not have to exist yet;
// tailing begins once it appears.
func (w *Watcher) Watch(ctx context.Context) (<-chan Line, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fs watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.dir, err)
	}

	out := make(chan Line, 256)
	go w.run(ctx, fw, out)
	return out, nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, out chan<- Line) {
	defer close(out)
	defer fw.Close()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("watching log file", zap.String("file", w.file))
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("fs watcher error", zap.Error(err))
			continue
		case <-ticker.C:
		}
		if err := w.drain(ctx, out); err != nil {
			w.logger.Warn("reading log file", zap.Error(err))
		}
	}
}

// drain reads everything appended since the last call and emits it.
func (w *Watcher) drain(ctx context.Context, out chan<- Line) error {
	f, err := os.Open(w.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < w.offset {
		w.logger.Info("log file truncated, restarting from top",
			zap.String("file", w.file))
		w.offset = 0
		w.rest = ""
	}
	if info.Size() == w.offset {
		return nil
	}
	if _, err := f.Seek(w.offset, io.SeekStart); err != nil {
		return err
	}

	r := bufio.NewReader(f)
	for {
		raw, err := r.ReadString('\n')
		if err == io.EOF {
			// Keep the partial tail until the writer finishes the line.
			w.rest += raw
			w.offset += int64(len(raw))
			return nil
		}
		if err != nil {
			return err
		}
		w.offset += int64(len(raw))
		full := w.rest + raw
		w.rest = ""
		line, ok := ParseLine(w.channel, strings.TrimRight(full, "\r\n"))
		if !ok {
			continue
		}
		select {
		case out <- line:
		case <-ctx.Done():
			return nil
		}
	}
}

// ParseLine strips the client's line prefix, e.g.
//
//	D 21:35:08.4425287 GameState.DebugPrintPower() -     TAG_CHANGE ...
//
// keeping everything after the timestamp. Lines that do not carry the
// prefix are not log output and are dropped.
func ParseLine(channel, raw string) (Line, bool) {
	if len(raw) < 2 || raw[1] != ' ' {
		return Line{}, false
	}
	body := raw[2:]
	idx := strings.IndexByte(body, ' ')
	if idx < 0 {
		return Line{}, false
	}
	ts, err := time.Parse("15:04:05.0000000", body[:idx])
	if err != nil {
		return Line{}, false
	}
	return Line{
		Channel: channel,
		Text:    body[idx+1:],
		Time:    ts,
	}, true
}
