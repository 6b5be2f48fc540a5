package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrInvalidEnv  = errors.New("invalid environment")
	ErrWriteOutput = errors.New("failed to write output")
	ErrReadInput   = errors.New("failed to read input")
)
