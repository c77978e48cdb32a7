package codebase

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWatcher polls the workspace and keeps the codebase in step with the
// files on disk. Documents opened in the editor are overwritten by a poll
// only when the file on disk changes.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(c *Codebase, interval time.Duration) *FileWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *FileWatcher) scan() {
	root := w.codebase.RootDir()
	rels, err := Files(root)
	if err != nil {
		log.Warningf("watch %s: %s", root, err)
		return
	}

	current := make(map[string]bool, len(rels))
	for _, rel := range rels {
		path := filepath.Join(root, rel)
		current[path] = true

		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			if err := w.codebase.ScanFile(path); err != nil {
				log.Warningf("watch: %s", err)
			}
		}
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			log.Debugf("removed %s", path)
		}
	}
}
