// Package core exposes the sequence repository service: validated
// creation, point mutations, and read-only query accessors.
package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	blobcore "proteinlab/internal/blob/core"
	"proteinlab/internal/infra/persistence/memory"
	"proteinlab/internal/sequence"
	"proteinlab/pkg/domain"
)

// Service wires the record store, validator, and mutation engine
// behind one synchronous call surface consumed by presentation layers.
type Service struct {
	store   domain.RecordStore
	archive blobcore.Store
	logger  Logger
	clock   Clock
	metrics MetricsRecorder
	tracer  Tracer
}

// Option customizes service construction.
type Option func(*Service)

// WithLogger overrides the no-op default logger.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the service clock.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithMetricsRecorder attaches a metrics sink for operation outcomes.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTracer attaches a tracer wrapping each service operation.
func WithTracer(t Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithFASTAArchive attaches a blob store that retains the raw bytes of
// uploaded FASTA documents.
func WithFASTAArchive(b blobcore.Store) Option {
	return func(s *Service) { s.archive = b }
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.RecordStore, opts ...Option) *Service {
	s := &Service{
		store:   store,
		logger:  noopLogger{},
		clock:   ClockFunc(func() time.Time { return time.Now().UTC() }),
		metrics: noopMetricsRecorder{},
		tracer:  noopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemoryService creates a service over a fresh in-memory store.
func NewInMemoryService(opts ...Option) *Service {
	return NewService(memory.NewStore(), opts...)
}

// Store returns the underlying record store.
func (s *Service) Store() domain.RecordStore { return s.store }

// observe wraps fn with tracing, metrics, and outcome logging.
func (s *Service) observe(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, op)
	err := fn(ctx)
	duration := time.Since(start)
	span.End(err)
	s.metrics.Observe(ctx, op, err == nil, duration)
	if err != nil {
		s.logger.Error(op+" failed", "error", err)
	} else {
		s.logger.Debug(op + " completed")
	}
	return err
}

// CreateSequence validates raw sequence text and inserts a new record.
// The raw text may carry a FASTA header line, which is stripped and
// discarded; the supplied name labels the record.
func (s *Service) CreateSequence(ctx context.Context, name, raw string) (domain.ProteinRecord, error) {
	var created domain.ProteinRecord
	err := s.observe(ctx, "create_sequence", func(ctx context.Context) error {
		if strings.TrimSpace(name) == "" {
			return domain.InvalidInputError{Field: "name"}
		}
		if strings.TrimSpace(raw) == "" {
			return domain.InvalidInputError{Field: "sequence"}
		}
		seq, err := sequence.Normalize(raw)
		if err != nil {
			return err
		}
		created, err = s.store.Insert(ctx, domain.NewRecord{Name: name, Sequence: seq})
		return err
	})
	if err != nil {
		return domain.ProteinRecord{}, err
	}
	s.logger.Info("sequence registered", "id", created.ID, "name", created.Name, "length", created.Length)
	return created, nil
}

// ImportFASTA registers the first entry of a FASTA document. The header
// id becomes the record name; when a FASTA archive is configured the
// raw document is retained under an uploads/ key for later retrieval.
func (s *Service) ImportFASTA(ctx context.Context, r io.Reader) (domain.ProteinRecord, error) {
	var created domain.ProteinRecord
	err := s.observe(ctx, "import_fasta", func(ctx context.Context) error {
		raw, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read fasta: %w", err)
		}
		name, seq, err := sequence.ParseFASTA(bytes.NewReader(raw))
		if err != nil {
			return err
		}
		if name == "" {
			return domain.InvalidInputError{Field: "name"}
		}
		created, err = s.store.Insert(ctx, domain.NewRecord{Name: name, Sequence: seq})
		if err != nil {
			return err
		}
		if s.archive != nil {
			key := fmt.Sprintf("uploads/%s.fasta", uuid.NewString())
			if _, aErr := s.archive.Put(ctx, key, bytes.NewReader(raw), blobcore.PutOptions{
				ContentType: "text/x-fasta",
				Metadata:    map[string]string{"record_id": fmt.Sprint(created.ID)},
			}); aErr != nil {
				// The record is committed; losing the raw copy is not fatal.
				s.logger.Warn("fasta archive write failed", "error", aErr, "id", created.ID)
			}
		}
		return nil
	})
	if err != nil {
		return domain.ProteinRecord{}, err
	}
	s.logger.Info("fasta imported", "id", created.ID, "name", created.Name, "length", created.Length)
	return created, nil
}

// GetRecord retrieves one record by identity.
func (s *Service) GetRecord(ctx context.Context, id int64) (domain.ProteinRecord, error) {
	var rec domain.ProteinRecord
	err := s.observe(ctx, "get_record", func(ctx context.Context) error {
		var err error
		rec, err = s.store.Get(ctx, id)
		return err
	})
	return rec, err
}

// ListRecords returns all records in insertion order.
func (s *Service) ListRecords(ctx context.Context) ([]domain.ProteinRecord, error) {
	var recs []domain.ProteinRecord
	err := s.observe(ctx, "list_records", func(ctx context.Context) error {
		var err error
		recs, err = s.store.List(ctx)
		return err
	})
	return recs, err
}

// Summaries returns the listing projection of all records in insertion
// order.
func (s *Service) Summaries(ctx context.Context) ([]domain.RecordSummary, error) {
	recs, err := s.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RecordSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Summary())
	}
	return out, nil
}

// Catalog returns the amino acid catalog in stable code order.
func (s *Service) Catalog() []domain.AminoAcid { return domain.AminoAcids() }

// Profile returns the composition profile of a stored record.
func (s *Service) Profile(ctx context.Context, id int64) (sequence.Profile, error) {
	var prof sequence.Profile
	err := s.observe(ctx, "profile_record", func(ctx context.Context) error {
		rec, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		prof = sequence.Summarize(rec.Sequence)
		return nil
	})
	return prof, err
}
