package core

import (
	"errors"
)

var (
	ErrLibraryNotFound     = errors.New("vulkan loader library not found")
	ErrSymbolNotFound      = errors.New("symbol not found")
	ErrCommandNotLoaded    = errors.New("command not loaded")
	ErrMissingCommands     = errors.New("extension commands missing")
	ErrUnsupportedPlatform = errors.New("foreign calls are not supported on this platform")
	ErrRegistry            = errors.New("malformed registry")
	ErrUnknown             = errors.New("unknown")
)
