package workspace

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the set of files below a directory.
//
// Creates, removes and renames anywhere below the root are coalesced into a
// single pending signal on [Watcher.Changes]; content writes are ignored
// since they do not change the listing. New subdirectories are watched as
// they appear.
//
// Create instances with [NewWatcher] and release them with [Watcher.Close].
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher starts watching root and all of its subdirectories.
func NewWatcher(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	err = w.addTree(root)
	if err != nil {
		//nolint:errcheck // Already returning the add error.
		fsw.Close()

		return nil, err
	}

	w.wg.Add(1)

	go w.run()

	return w, nil
}

// Changes delivers a value after the listing below the root has changed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Done is closed once [Watcher.Close] has been called.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops the watcher and waits for its goroutine to exit. Idempotent.
func (w *Watcher) Close() error {
	var err error

	w.once.Do(func() {
		close(w.done)

		err = w.fsw.Close()

		w.wg.Wait()
	})

	return err
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		addErr := w.fsw.Add(path)
		if addErr != nil {
			return fmt.Errorf("watching %s: %w", path, addErr)
		}

		return nil
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			slog.Warn("watch directory", slog.Any("err", err))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	if ev.Has(fsnotify.Create) {
		info, err := os.Stat(ev.Name)
		if err == nil && info.IsDir() {
			addErr := w.addTree(ev.Name)
			if addErr != nil {
				slog.Warn("watch new directory", slog.String("path", ev.Name), slog.Any("err", addErr))
			}
		}
	}

	select {
	case w.changes <- struct{}{}:
	default:
	}
}
