package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long path must stay quiet before onChange runs, so the
// truncate and write of one editor save produce a single run on the final
// content.
const settle = 50 * time.Millisecond

// watchFile calls onChange once path has been written or replaced and then
// left alone for settle. It watches the parent directory so that editors
// which save by renaming are seen. It returns ctx.Err() once ctx is
// cancelled.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	quiet := time.NewTimer(settle)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			quiet.Reset(settle)
		case <-quiet.C:
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			loggerFromContext(ctx).Warn("watch", "path", path, "err", err)
		}
	}
}
