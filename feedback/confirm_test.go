package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmAccepted(t *testing.T) {
	confirmer := NewConfirmer(func(title, message string) bool { return true })

	calls := 0
	confirmed, err := confirmer.Confirm(context.Background(),
		"Kategoriyani o'chirish", "'Divanlar' o'chirilsinmi?",
		func(ctx context.Context) error {
			calls++
			return nil
		})

	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, 1, calls)
}

func TestConfirmCancelledSkipsAction(t *testing.T) {
	confirmer := NewConfirmer(func(title, message string) bool { return false })

	calls := 0
	confirmed, err := confirmer.Confirm(context.Background(),
		"Mahsulotni o'chirish", "'Oddiy divan' o'chirilsinmi?",
		func(ctx context.Context) error {
			calls++
			return nil
		})

	// Bekor qilinsa chaqiruv umuman yuborilmaydi
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Zero(t, calls)
}

func TestConfirmPropagatesActionError(t *testing.T) {
	confirmer := NewConfirmer(func(title, message string) bool { return true })
	actionErr := errors.New("server xatosi")

	confirmed, err := confirmer.Confirm(context.Background(), "O'chirish", "Rostdanmi?",
		func(ctx context.Context) error { return actionErr })

	assert.True(t, confirmed)
	assert.ErrorIs(t, err, actionErr)
}
