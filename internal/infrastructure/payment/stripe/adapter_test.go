package stripe

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestAdapter_ForwardsToMakeTransaction(t *testing.T) {
	var direct, adapted bytes.Buffer
	require.NoError(t, NewService(&direct).MakeTransaction(7500))
	require.NoError(t, NewAdapter(NewService(&adapted)).Process(context.Background(), 7500))

	assert.Equal(t, "[Stripe] Transaction completed: 7500 тг\n", adapted.String())
	assert.Equal(t, direct.String(), adapted.String())
}

func TestAdapter_AcceptsNonPositiveAmounts(t *testing.T) {
	var out bytes.Buffer
	a := NewAdapter(NewService(&out))

	require.NoError(t, a.Process(context.Background(), 0))
	require.NoError(t, a.Process(context.Background(), -10))
	assert.Contains(t, out.String(), "-10 тг")
}

func TestAdapter_PropagatesWriteError(t *testing.T) {
	boom := errors.New("closed")
	err := NewAdapter(NewService(failingWriter{err: boom})).Process(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
