package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/hwbits"
	"github.com/hupe1980/hwbits/blobstore"
)

// Store saves and loads named snapshots against a blob store. A Store is
// safe for concurrent use as long as the underlying blobstore.Store is.
type Store struct {
	blobs   blobstore.Store
	codec   Codec
	limiter *rate.Limiter
	logger  *hwbits.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCodec sets the compression codec for saved snapshots. Default: LZ4.
func WithCodec(c Codec) StoreOption {
	return func(s *Store) {
		s.codec = c
	}
}

// WithRateLimit caps upload throughput to bytesPerSec. Uploads block until
// the limiter admits the snapshot's encoded size.
func WithRateLimit(bytesPerSec float64) StoreOption {
	return func(s *Store) {
		burst := int(bytesPerSec)
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), burst)
	}
}

// WithLogger sets the logger for save/load diagnostics.
func WithLogger(l *hwbits.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates a snapshot store backed by blobs.
func NewStore(blobs blobstore.Store, opts ...StoreOption) *Store {
	s := &Store{
		blobs:  blobs,
		codec:  CodecLZ4,
		logger: hwbits.NoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save encodes the snapshot and uploads it under name.
func (st *Store) Save(ctx context.Context, name string, s *Snapshot) error {
	start := time.Now()

	var buf bytes.Buffer
	if err := s.Write(&buf, st.codec); err != nil {
		return fmt.Errorf("encode snapshot %q: %w", name, err)
	}

	if st.limiter != nil {
		if err := st.waitForQuota(ctx, buf.Len()); err != nil {
			return err
		}
	}

	if err := st.blobs.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put snapshot %q: %w", name, err)
	}

	st.logger.WithSnapshot(name).Info("snapshot saved",
		"registers", s.Len(),
		"bytes", buf.Len(),
		"codec", st.codec.String(),
		"took", time.Since(start),
	)
	return nil
}

// Load downloads and decodes the snapshot stored under name.
func (st *Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	blob, err := st.blobs.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %q: %w", name, err)
	}
	defer blob.Close()

	s := New()
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		if err := s.Read(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode snapshot %q: %w", name, err)
		}
		return s, nil
	}

	r, err := blob.Reader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if err := s.Read(r); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", name, err)
	}
	return s, nil
}

// SaveAll uploads multiple snapshots concurrently. If any upload fails, the
// remaining ones are canceled and the first error is returned.
func (st *Store) SaveAll(ctx context.Context, snapshots map[string]*Snapshot) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for name, s := range snapshots {
		g.Go(func() error {
			return st.Save(ctx, name, s)
		})
	}
	return g.Wait()
}

// List returns the names of stored snapshots under prefix.
func (st *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return st.blobs.List(ctx, prefix)
}

// Delete removes the snapshot stored under name.
func (st *Store) Delete(ctx context.Context, name string) error {
	return st.blobs.Delete(ctx, name)
}

// waitForQuota blocks until the rate limiter admits n bytes. Requests
// larger than the burst are split so they cannot starve forever.
func (st *Store) waitForQuota(ctx context.Context, n int) error {
	burst := st.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := st.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
