package middleware

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/logger"
	"github.com/guttosm/pantry-service/internal/service"
)

// ErrLogBufferFull is returned when a request or audit entry is dropped because the writer is behind.
var ErrLogBufferFull = errors.New("log buffer full")

// LogWriterConfig holds configuration for the batching log writer.
type LogWriterConfig struct {
	// BufferSize is how many entries may wait for the next batch.
	BufferSize int
	// BatchSize flushes as soon as this many entries are waiting.
	BatchSize int
	// FlushInterval flushes a partial batch.
	FlushInterval time.Duration
	// WriteTimeout bounds one bulk insert.
	WriteTimeout time.Duration
}

// DefaultLogWriterConfig returns the defaults used by the app.
func DefaultLogWriterConfig() LogWriterConfig {
	return LogWriterConfig{
		BufferSize:    1000,
		BatchSize:     50,
		FlushInterval: 2 * time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// LogWriterStats counts what happened to the entries handed to a LogWriter.
type LogWriterStats struct {
	Queued  int64
	Dropped int64
	Written int64
	Failed  int64
}

// LogWriter is a LoggingService that queues request and inventory audit entries and stores
// them in batches through the wrapped service's CreateLogs, off the request path.
// Queries go straight to the wrapped service.
type LogWriter struct {
	next          service.LoggingService
	entries       chan *model.LogEntry
	batchSize     int
	flushInterval time.Duration
	writeTimeout  time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}

	queued  atomic.Int64
	dropped atomic.Int64
	written atomic.Int64
	failed  atomic.Int64
}

var _ service.LoggingService = (*LogWriter)(nil)

// NewLogWriter starts a writer in front of next. It returns nil when next is nil.
func NewLogWriter(next service.LoggingService, cfg LogWriterConfig) *LogWriter {
	if next == nil {
		return nil
	}
	def := DefaultLogWriterConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	w := &LogWriter{
		next:          next,
		entries:       make(chan *model.LogEntry, cfg.BufferSize),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		writeTimeout:  cfg.WriteTimeout,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	go w.run()
	return w
}

// CreateLog queues entry without waiting for the database.
func (w *LogWriter) CreateLog(_ context.Context, entry *model.LogEntry) error {
	select {
	case <-w.stop:
		return w.next.CreateLog(context.Background(), entry)
	default:
	}
	select {
	case w.entries <- entry:
		w.queued.Add(1)
		return nil
	default:
		w.dropped.Add(1)
		return ErrLogBufferFull
	}
}

// CreateLogs queues every entry, stopping at the first one that does not fit.
func (w *LogWriter) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	for _, e := range entries {
		if err := w.CreateLog(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// QueryLogs reads through to the wrapped service; queued entries are not visible yet.
func (w *LogWriter) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return w.next.QueryLogs(ctx, opts)
}

// CountLogs reads through to the wrapped service.
func (w *LogWriter) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return w.next.CountLogs(ctx, opts)
}

func (w *LogWriter) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, w.batchSize)
	for {
		select {
		case e := <-w.entries:
			batch = append(batch, e)
			if len(batch) >= w.batchSize {
				batch = w.flush(batch)
			}
		case <-ticker.C:
			batch = w.flush(batch)
		case <-w.stop:
			for {
				select {
				case e := <-w.entries:
					batch = append(batch, e)
					if len(batch) >= w.batchSize {
						batch = w.flush(batch)
					}
				default:
					w.flush(batch)
					return
				}
			}
		}
	}
}

func (w *LogWriter) flush(batch []*model.LogEntry) []*model.LogEntry {
	if len(batch) == 0 {
		return batch
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	if err := w.next.CreateLogs(ctx, batch); err != nil {
		w.failed.Add(int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to store log batch")
	} else {
		w.written.Add(int64(len(batch)))
	}
	return batch[:0]
}

// Close flushes what is queued and stops the writer. Entries arriving afterwards are
// written synchronously. Close is safe to call more than once.
func (w *LogWriter) Close() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}

// Stats returns the writer's counters.
func (w *LogWriter) Stats() LogWriterStats {
	return LogWriterStats{
		Queued:  w.queued.Load(),
		Dropped: w.dropped.Load(),
		Written: w.written.Load(),
		Failed:  w.failed.Load(),
	}
}
