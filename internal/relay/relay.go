package relay

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/xeruf/mostr-go/internal/debug"
	"github.com/xeruf/mostr-go/internal/event"
)

// Relay implements event.Sender against a local JSONL journal file,
// standing in for the relay transport boundary: Submit appends
// synchronously under an exclusive file lock and returns the event for
// local re-insertion; the same event is later picked back up by Watch
// and fed to the store like any other inbound event.
type Relay struct {
	journalPath string
	author event.PubKey

	mu sync.Mutex
	offset int64
}

// New opens (creating if necessary) the journal file at journalPath for
// an author identity.
func New(journalPath string, author event.PubKey) (*Relay, error) {
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return nil, fmt.Errorf("relay: creating journal directory: %w", err)
	}
	f, err := os.OpenFile(journalPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("relay: opening journal: %w", err)
	}
	_ = f.Close()
	return &Relay{journalPath: journalPath, author: author}, nil
}

// Submit appends an unsigned builder to the journal as a synthetically
// "signed" event and returns it for local re-insertion. While another
// process holds the journal lock, Submit waits, retrying every 50ms with
// no timeout. A lock error or a failed write is non-fatal — Submit
// reports (zero, false) and the caller treats it as "no value".
func (r *Relay) Submit(b event.Builder) (event.Event, bool) {
	return r.SubmitAt(b, time.Now())
}

// SubmitAt is Submit with an explicit created_at, used by the CLI's
// backdated tracking command where the parsed timestamp, not wall-clock
// now, is what the tracking event should carry.
func (r *Relay) SubmitAt(b event.Builder, at time.Time) (event.Event, bool) {
	lock := flock.New(r.journalPath + ".lock")
	locked, err := lock.TryLockContext(context.Background(), 50*time.Millisecond)
	if err != nil || !locked {
		debug.Logf("relay: could not acquire journal lock: %v", err)
		return event.Event{}, false
	}
	defer func() { _ = lock.Unlock() }()

	createdAt := at.Unix()
	ev := event.Event{
		ID: syntheticID(r.author, createdAt, b),
		Author: r.author,
		CreatedAt: createdAt,
		Kind: b.Kind,
		Content: b.Content,
		Tags: b.Tags,
	}

	f, err := os.OpenFile(r.journalPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		debug.Logf("relay: opening journal for append: %v", err)
		return event.Event{}, false
	}
	defer f.Close()

	line, err := marshalLine(ev)
	if err != nil {
		debug.Logf("relay: encoding event: %v", err)
		return event.Event{}, false
	}
	if _, err := f.Write(line); err != nil {
		debug.Logf("relay: appending to journal: %v", err)
		return event.Event{}, false
	}
	return ev, true
}

// ReadAll replays every event currently in the journal, in file order,
// and advances the internal read offset past them. Used for the initial
// bulk load at startup.
func (r *Relay) ReadAll() ([]event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readFrom(0)
}

func (r *Relay) readFrom(offset int64) ([]event.Event, error) {
	f, err := os.Open(r.journalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, 0); err != nil {
		return nil, err
	}
	var out []event.Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var consumed int64
	for scanner.Scan() {
		line := scanner.Bytes()
		consumed += int64(len(line)) + 1
		if len(line) == 0 {
			continue
		}
		ev, err := unmarshalLine(line)
		if err != nil {
			debug.Logf("relay: skipping malformed journal line: %v", err)
			continue
		}
		out = append(out, ev)
	}
	r.offset = offset + consumed
	return out, scanner.Err()
}

// Watch starts an fsnotify watch on the journal file's directory and
// calls onEvent for every event newly appended to the journal —
// including those appended by this same process's own Submit calls,
// which the store deduplicates by id.
func (r *Relay) Watch(ctx context.Context, onEvent func(event.Event)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("relay: creating watcher: %w", err)
	}

	dir := filepath.Dir(r.journalPath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("relay: watching journal directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != r.journalPath {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				r.mu.Lock()
				events, err := r.readFrom(r.offset)
				r.mu.Unlock()
				if err != nil {
					debug.Logf("relay: reading journal tail: %v", err)
					continue
				}
				for _, e := range events {
					onEvent(e)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				debug.Logf("relay: watcher error: %v", err)
			}
		}
	}()
	return nil
}
