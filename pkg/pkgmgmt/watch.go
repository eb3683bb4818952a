package pkgmgmt

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchCacheDir watches dir for filesystem events (a module fetched or
// removed out-of-band, e.g. by a concurrent metta process sharing the same
// cache) and invokes onChange for each one. It runs until the returned
// stop function is called or the watcher's event channel closes. Errors
// from the underlying watcher are logged, not returned, since a watch
// failure should not abort the caller's already-resolved session.
func WatchCacheDir(dir string, log *zap.Logger, onChange func(path string)) (stop func() error, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				log.Debug("pkgmgmt.cache.event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				onChange(ev.Name)
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("pkgmgmt.cache.watch_error", zap.Error(werr))
			}
		}
	}()

	return w.Close, nil
}
