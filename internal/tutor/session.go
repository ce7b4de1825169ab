package tutor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultDebounce coalesces editor write bursts into one re-check.
const defaultDebounce = 150 * time.Millisecond

// Session watches one exercise file and re-checks it on every change,
// streaming results to the consumer.
type Session struct {
	path     string
	log      *zap.Logger
	debounce time.Duration
	results  chan *Result
}

// NewSession prepares a watch session for path. Results are delivered on
// Results; Run must be started for anything to flow.
func NewSession(path string, log *zap.Logger) *Session {
	return &Session{
		path:     path,
		log:      log,
		debounce: defaultDebounce,
		results:  make(chan *Result, 1),
	}
}

// WithDebounce overrides the write-coalescing window. Non-positive durations
// are ignored.
func (s *Session) WithDebounce(d time.Duration) *Session {
	if d > 0 {
		s.debounce = d
	}
	return s
}

// Results is the stream of check results, starting with one for the file's
// current contents.
func (s *Session) Results() <-chan *Result { return s.results }

// Run watches until the context is cancelled. The containing directory is
// watched rather than the file itself: editors commonly replace files by
// rename, which drops a direct file watch.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.results)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	s.log.Info("watching", zap.String("file", s.path))

	if err := s.deliver(ctx); err != nil {
		return err
	}

	var pending *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !s.relevant(ev) {
				continue
			}
			s.log.Debug("change detected", zap.String("op", ev.Op.String()))
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(s.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", zap.Error(err))
		case <-fire:
			if err := s.deliver(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *Session) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (s *Session) deliver(ctx context.Context) error {
	res, err := CheckFile(s.path)
	if err != nil {
		// Transient: the editor may be mid-replace. Log and wait for the
		// next event.
		s.log.Warn("check failed", zap.Error(err))
		return nil
	}
	select {
	case s.results <- res:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
