package services

import (
	"context"
	"fmt"
	"sync"

	"font-previewer/internal/fonts"
	"font-previewer/internal/logger"
	"font-previewer/internal/models"
)

// ScanResult reports the outcome of a system scan back to the UI.
type ScanResult struct {
	Added int
	Err   error
}

// FolderLoadResult reports the outcome of a custom folder load.
type FolderLoadResult struct {
	Folder  string
	Added   int
	Skipped int
	Err     error
}

// FontService owns the worker goroutines that perform blocking font I/O.
// Completion callbacks run on the worker; callers marshal any UI mutation
// back to the UI goroutine themselves.
type FontService struct {
	scanner *fonts.Scanner
	loader  *fonts.FolderLoader
	catalog *models.Catalog
	logger  logger.Logger

	mu          sync.Mutex
	folderBusy  bool
	scanRunning bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewFontService(scanner *fonts.Scanner, loader *fonts.FolderLoader, catalog *models.Catalog, log logger.Logger) *FontService {
	ctx, cancel := context.WithCancel(context.Background())
	return &FontService{
		scanner: scanner,
		loader:  loader,
		catalog: catalog,
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ScanSystemFonts enumerates installed fonts on a worker goroutine and
// appends them to the catalog. Only one scan runs at a time.
func (fs *FontService) ScanSystemFonts(onDone func(ScanResult)) {
	fs.mu.Lock()
	if fs.scanRunning {
		fs.mu.Unlock()
		fs.logger.Debug("FontService", "system scan already active", nil)
		return
	}
	fs.scanRunning = true
	fs.mu.Unlock()

	go func() {
		defer func() {
			fs.mu.Lock()
			fs.scanRunning = false
			fs.mu.Unlock()
		}()

		entries, err := fs.scanner.ScanSystem(fs.ctx)
		result := ScanResult{Err: err}
		if err == nil {
			result.Added = fs.catalog.AddBatch(entries)
		}

		if onDone != nil {
			onDone(result)
		}
	}()
}

// LoadFolder loads font files from a directory on a worker goroutine.
// Folder loads are serialized; a request while one is active returns an
// error immediately.
func (fs *FontService) LoadFolder(dir string, onDone func(FolderLoadResult)) error {
	fs.mu.Lock()
	if fs.folderBusy {
		fs.mu.Unlock()
		return fmt.Errorf("a folder load is already in progress")
	}
	fs.folderBusy = true
	fs.mu.Unlock()

	go func() {
		defer func() {
			fs.mu.Lock()
			fs.folderBusy = false
			fs.mu.Unlock()
		}()

		loaded, err := fs.loader.LoadFolder(fs.ctx, dir)
		result := FolderLoadResult{Folder: dir, Err: err}
		if err == nil {
			result.Added = fs.catalog.AddBatch(loaded.Entries)
			result.Skipped = loaded.Skipped
		}

		if onDone != nil {
			onDone(result)
		}
	}()

	return nil
}

// IsBusy reports whether any background font work is active.
func (fs *FontService) IsBusy() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.folderBusy || fs.scanRunning
}

// Shutdown cancels in-flight work.
func (fs *FontService) Shutdown() {
	fs.cancel()
	fs.logger.Info("FontService", "shutdown completed", nil)
}
