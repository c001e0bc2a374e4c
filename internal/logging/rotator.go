package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	bytesPerMB      = 1024 * 1024
	backupTimeStamp = "20060102-150405.000"
	logFilePerm     = 0o600
	logDirPerm      = 0o755
)

// RotatorConfig describes a size-rotated log file.
type RotatorConfig struct {
	// Path is the active log file. Backups are written next to it.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Rotator is an io.WriteCloser that moves the log file aside once it would
// exceed MaxSizeMB and prunes old backups.
type Rotator struct {
	mu       sync.Mutex
	dir      string
	name     string
	maxSize  int64
	maxAge   time.Duration
	backups  int
	compress bool

	file *os.File
	size int64
	now  func() time.Time
}

var _ io.WriteCloser = (*Rotator)(nil)

// NewRotator opens (or creates) cfg.Path for appending.
func NewRotator(cfg RotatorConfig) (*Rotator, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &Rotator{
		dir:      dir,
		name:     filepath.Base(cfg.Path),
		maxSize:  int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:   time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		backups:  cfg.MaxBackups,
		compress: cfg.Compress,
		now:      time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file.
func (r *Rotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *Rotator) open() error {
	path := r.Path()
	r.size = 0
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

// Write implements io.Writer. A single write larger than the limit still goes
// to a fresh file.
func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, fmt.Sprintf("%s.%s", r.name, r.now().Format(backupTimeStamp)))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// prune removes backups older than maxAge, then the oldest beyond maxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := r.now()
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, info.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.backups <= 0 || len(backups) <= r.backups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].ModTime().Equal(backups[j].ModTime()) {
			return backups[i].Name() < backups[j].Name()
		}
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.backups] {
		if err := os.Remove(filepath.Join(r.dir, info.Name())); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
	}
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
