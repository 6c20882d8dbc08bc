package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	defaultMaxSizeMB = 10
	logFileName      = "themestore.log"
	backupTimeLayout = "20060102T150405.000"
)

// RotatorConfig sizes the rotating log file.
type RotatorConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int // 0 keeps every backup
	MaxAgeDays int // 0 disables age pruning
	Compress   bool
}

// LogRotator appends to <Dir>/themestore.log and moves it aside once it
// would exceed MaxSizeMB. Backups are named themestore-<time>.log[.gz].
type LogRotator struct {
	cfg RotatorConfig
	now func() time.Time

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewLogRotator opens (or creates) the log file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	r := &LogRotator{cfg: cfg, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.cfg.Dir, logFileName)
}

func (r *LogRotator) maxBytes() int64 {
	return int64(r.cfg.MaxSizeMB) << 20
}

func (r *LogRotator) open() error {
	if err := os.MkdirAll(r.cfg.Dir, 0o700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write implements io.Writer. A single write larger than the limit still
// lands in a fresh file instead of being split.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes() {
		if err := r.rotateLocked(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Rotate forces a rotation.
func (r *LogRotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotateLocked()
}

func (r *LogRotator) rotateLocked() error {
	if r.file != nil {
		_ = r.file.Close()
		r.file = nil
	}

	backup := filepath.Join(r.cfg.Dir, "themestore-"+r.now().Format(backupTimeLayout)+".log")
	if err := os.Rename(r.path(), backup); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("rotate log file: %w", err)
	}

	var errs []error
	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			errs = append(errs, fmt.Errorf("compress %s: %w", filepath.Base(backup), err))
		}
	}
	if err := r.prune(); err != nil {
		errs = append(errs, err)
	}
	if err := r.open(); err != nil {
		return err
	}
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "themestore: log rotation: %v\n", errors.Join(errs...))
	}
	return nil
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := path + ".gz.tmp"
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	_, copyErr := io.Copy(zw, in)
	closeErr := errors.Join(zw.Close(), out.Close())
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path+".gz"); err != nil {
		return err
	}
	return os.Remove(path)
}

// backups lists rotated files, oldest first. The timestamp layout sorts lexically.
func (r *LogRotator) backups() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "themestore-") {
			continue
		}
		if strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

func (r *LogRotator) prune() error {
	names, err := r.backups()
	if err != nil {
		return err
	}

	var (
		errs   []error
		cutoff time.Time
	)
	if r.cfg.MaxAgeDays > 0 {
		cutoff = r.now().Add(-time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour)
	}
	keep := names[:0]
	for _, name := range names {
		full := filepath.Join(r.cfg.Dir, name)
		if !cutoff.IsZero() {
			if info, statErr := os.Stat(full); statErr == nil && info.ModTime().Before(cutoff) {
				errs = append(errs, os.Remove(full))
				continue
			}
		}
		keep = append(keep, name)
	}

	if r.cfg.MaxBackups > 0 {
		for len(keep) > r.cfg.MaxBackups {
			errs = append(errs, os.Remove(filepath.Join(r.cfg.Dir, keep[0])))
			keep = keep[1:]
		}
	}
	return errors.Join(errs...)
}

// Close closes the current file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
