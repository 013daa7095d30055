package marblereplay

import (
	"sync"
	"time"
)

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// Logger interface for custom logging implementations
type Logger interface {
	// Debug logs a debug message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info message with optional fields
	Info(msg string, fields ...Field)

	// Error logs an error message with optional fields
	Error(msg string, fields ...Field)
}

// MetricsCollector interface for metrics collection
type MetricsCollector interface {
	// RecordDecodeDuration records the time taken by one decode phase
	// ("envelope" or "buffer")
	RecordDecodeDuration(phase string, duration time.Duration)

	// RecordBytes records the compressed input and inflated payload sizes
	RecordBytes(compressed, inflated int64)

	// RecordRewindables records the rewindable count of a decoded buffer
	RecordRewindables(count int)

	// RecordError records a failed decode by error kind
	RecordError(kind string)
}

// DecodeStats provides running decode statistics
type DecodeStats struct {
	mu sync.RWMutex

	Decoded       int64
	Failed        int64
	BytesIn       int64
	BytesInflated int64
	Rewindables   int64
	LastDecode    time.Time

	// Errors counts failures by ErrorKind
	Errors map[string]int64
}

func (s *DecodeStats) recordSuccess(in, inflated int64, rewindables int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Decoded++
	s.BytesIn += in
	s.BytesInflated += inflated
	s.Rewindables += int64(rewindables)
	s.LastDecode = time.Now()
}

func (s *DecodeStats) recordFailure(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed++
	if s.Errors == nil {
		s.Errors = make(map[string]int64)
	}
	s.Errors[kind]++
	s.LastDecode = time.Now()
}

// GetDecoded returns the number of successful decodes (thread-safe)
func (s *DecodeStats) GetDecoded() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Decoded
}

// GetFailed returns the number of failed decodes (thread-safe)
func (s *DecodeStats) GetFailed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Failed
}

// GetBytesInflated returns the total inflated payload size (thread-safe)
func (s *DecodeStats) GetBytesInflated() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.BytesInflated
}

// GetRewindables returns the total number of rewindables decoded (thread-safe)
func (s *DecodeStats) GetRewindables() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Rewindables
}

// GetErrorCount returns the failure count for an error kind (thread-safe)
func (s *DecodeStats) GetErrorCount(kind string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Errors[kind]
}
