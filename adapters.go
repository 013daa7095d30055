package marblereplay

import "time"

// replayLogger implements replay.Logger interface
type replayLogger struct {
	logger Logger
}

func (rl *replayLogger) Debug(msg string, fields ...interface{}) {
	rl.logger.Debug(msg, convertFields(fields...)...)
}

func (rl *replayLogger) Info(msg string, fields ...interface{}) {
	rl.logger.Info(msg, convertFields(fields...)...)
}

func (rl *replayLogger) Error(msg string, fields ...interface{}) {
	rl.logger.Error(msg, convertFields(fields...)...)
}

func convertFields(fields ...interface{}) []Field {
	result := make([]Field, 0, len(fields)/2)
	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			result = append(result, Field{
				Key:   key,
				Value: fields[i+1],
			})
		}
	}
	return result
}

// nopMetrics is used when no collector is configured
type nopMetrics struct{}

func (nopMetrics) RecordDecodeDuration(string, time.Duration) {}
func (nopMetrics) RecordBytes(int64, int64)                   {}
func (nopMetrics) RecordRewindables(int)                      {}
func (nopMetrics) RecordError(string)                         {}
