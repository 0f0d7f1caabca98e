package config

import "sync"

// FrameSettings holds the frame pacing values that can change while running
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 disables the limiter
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 60, // default value
}

// GetFPSLimit returns the current frame rate cap
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; values <= 0 disable it
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalFrameSettings.fpsLimit = limit
}
