package mrb

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// BufferTestSuite covers creation, teardown and the cursor arithmetic.
type BufferTestSuite struct {
	suite.Suite
	page int
}

func (s *BufferTestSuite) SetupSuite() {
	s.page = os.Getpagesize()
}

// checkInvariant asserts the sacrificed-byte relation that must hold after
// every operation.
func (s *BufferTestSuite) checkInvariant(b *Buffer) {
	s.Require().Equal(b.Size()-1, b.Used()+b.Available())
}

func (s *BufferTestSuite) TestCreateRejectsUnalignedSizes() {
	for _, size := range []int{0, -1, -s.page, 1, s.page - 1, s.page + 1, 3*s.page + 7} {
		b, err := New(size)
		s.Require().ErrorIs(err, ErrInvalidSize, "size %d", size)
		s.Require().Nil(b)
	}
}

func (s *BufferTestSuite) TestCreateAlignedSizes() {
	for _, mult := range []int{1, 2, 8} {
		b, err := New(mult * s.page)
		s.Require().NoError(err)
		s.Require().Equal(mult*s.page, b.Size())
		s.Require().True(b.IsEmpty())
		s.Require().False(b.IsFull())
		s.Require().Equal(0, b.Used())
		s.Require().Equal(b.Size()-1, b.Available())
		s.checkInvariant(b)
		s.Require().NoError(b.Close())
	}
}

func (s *BufferTestSuite) TestCloseTwice() {
	b, err := New(s.page)
	s.Require().NoError(err)
	s.Require().NoError(b.Close())
	s.Require().ErrorIs(b.Close(), ErrClosed)
}

func (s *BufferTestSuite) TestReset() {
	b, err := New(s.page)
	s.Require().NoError(err)
	defer b.Close() //nolint:errcheck // test cleanup, error ignored intentionally

	b.Put([]byte("leftover"))
	s.Require().False(b.IsEmpty())
	b.Reset()
	s.Require().True(b.IsEmpty())
	s.Require().Equal(b.Size()-1, b.Available())
	s.checkInvariant(b)
}

func (s *BufferTestSuite) TestInstrumentedCreate() {
	opts := Options{
		Meter:  metricnoop.NewMeterProvider().Meter("mrb-test"),
		Tracer: tracenoop.NewTracerProvider().Tracer("mrb-test"),
	}
	b, err := NewWithOptions(context.Background(), s.page, opts)
	s.Require().NoError(err)

	s.Require().Equal(5, b.Put([]byte("hello")))
	out := make([]byte, 5)
	s.Require().Equal(5, b.Get(out))
	s.Require().Equal("hello", string(out))
	s.checkInvariant(b)
	s.Require().NoError(b.Close())
}

func TestBufferTestSuite(t *testing.T) {
	suite.Run(t, new(BufferTestSuite))
}
