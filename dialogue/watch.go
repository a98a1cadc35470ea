package dialogue

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads the phrase override file so insult writers don't have
// to restart the game to test their material.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	closeCh chan struct{}
	once    sync.Once
}

// WatchPhrases watches the override file's directory and reapplies the file
// on every write. A nil return with no error means there is nothing to
// watch.
func WatchPhrases(path string) (*Watcher, error) {
	if path == "" {
		return nil, nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, path: path, closeCh: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isPhraseFile(event.Name) || filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			tiers, err := LoadPhrases(w.path)
			if err != nil {
				log.Printf("[dialogue] reload phrases: %v", err)
				continue
			}
			SetPhrases(tiers)
			log.Printf("[dialogue] reloaded phrases from %s", w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[dialogue] watch: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func isPhraseFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
