package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"scribepad/internal/app/api"
	"scribepad/internal/app/metrics"
	"scribepad/internal/app/scratch"
	"scribepad/internal/app/worker"
)

// TranscriptionServiceImpl implements TranscriptionService by staging
// audio to a per-call scratch file and delegating to the external
// speech model through a bounded worker pool.
type TranscriptionServiceImpl struct {
	transcriber api.Transcriber
	scratch     *scratch.Dir
	pool        *worker.Pool
	timeout     time.Duration
	logger      *slog.Logger
}

// NewTranscriptionService creates a new transcription service.
func NewTranscriptionService(
	transcriber api.Transcriber,
	scratchDir *scratch.Dir,
	pool *worker.Pool,
	timeout time.Duration,
	logger *slog.Logger,
) *TranscriptionServiceImpl {
	return &TranscriptionServiceImpl{
		transcriber: transcriber,
		scratch:     scratchDir,
		pool:        pool,
		timeout:     timeout,
		logger:      logger,
	}
}

// TranscribeClip writes the payload to a unique scratch path, runs the
// model under a pool slot and a deadline, and removes the scratch file
// regardless of outcome.
func (s *TranscriptionServiceImpl) TranscribeClip(ctx context.Context, audio io.Reader) (string, error) {
	path, err := s.scratch.Create(audio, ".wav")
	if err != nil {
		return "", fmt.Errorf("stage audio: %w", err)
	}
	defer func() {
		if err := s.scratch.Remove(path); err != nil {
			s.logger.Error("Failed to remove scratch file", "path", path, "error", err)
		}
	}()

	if err := s.pool.Acquire(ctx); err != nil {
		return "", fmt.Errorf("wait for transcription slot: %w", err)
	}
	defer s.pool.Release()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.transcriber.Transcript(callCtx, path)
	metrics.ModelLatencySeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues(metrics.StatusError).Inc()
		s.logger.Error("Error during transcription", "error", err)
		return "", err
	}

	metrics.TranscriptionsTotal.WithLabelValues(metrics.StatusOK).Inc()
	s.logger.Info("Transcription completed", "chars", len(text))
	return text, nil
}
