package gate

import (
	"context"
	"testing"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinder - UserFinder fake
type fakeFinder struct {
	user  *models.UserAuthData
	err   error
	calls int
}

func (f *fakeFinder) FindUserByChatID(ctx context.Context, chatID string) (*models.UserAuthData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("CONFIRMED foydalanuvchi - ruxsat", func(t *testing.T) {
		finder := &fakeFinder{user: &models.UserAuthData{
			ChatID: 7882316826, Firstname: "Aziz", Status: models.UserConfirmed,
		}}

		result := New(finder).Check(ctx, "7882316826")

		assert.Equal(t, StateAuthorized, result.State)
		require.NotNil(t, result.User)
		assert.Equal(t, "Aziz", result.User.Firstname)
		assert.Equal(t, 1, finder.calls)
	})

	t.Run("PENDING foydalanuvchi - ruxsat yo'q", func(t *testing.T) {
		finder := &fakeFinder{user: &models.UserAuthData{
			ChatID: 1, Status: models.UserPending,
		}}

		result := New(finder).Check(ctx, "1")
		assert.Equal(t, StateUnauthorized, result.State)
	})

	t.Run("legacy exists flag - status bo'sh bo'lsa ruxsat", func(t *testing.T) {
		exists := true
		finder := &fakeFinder{user: &models.UserAuthData{ChatID: 1, Exists: &exists}}

		result := New(finder).Check(ctx, "1")
		assert.Equal(t, StateAuthorized, result.State)
	})

	t.Run("topilmadi (domain xato) - ruxsat yo'q", func(t *testing.T) {
		finder := &fakeFinder{err: apperror.NewDomainError("Foydalanuvchi topilmadi")}

		result := New(finder).Check(ctx, "999")
		assert.Equal(t, StateUnauthorized, result.State)
		assert.Error(t, result.Err)
	})

	t.Run("transport xato - error holati, rad emas", func(t *testing.T) {
		finder := &fakeFinder{err: apperror.NewTransportError("Server bilan bog'lanib bo'lmadi", nil)}

		result := New(finder).Check(ctx, "1")
		assert.Equal(t, StateError, result.State)
		assert.True(t, apperror.IsTransport(result.Err))
	})
}

func TestResolveChatID(t *testing.T) {
	t.Run("CLI argument birinchi", func(t *testing.T) {
		t.Setenv("CHAT_ID", "222")
		assert.Equal(t, "111", ResolveChatID([]string{"111"}, "333"))
	})

	t.Run("env ikkinchi", func(t *testing.T) {
		t.Setenv("CHAT_ID", "222")
		assert.Equal(t, "222", ResolveChatID(nil, "333"))
	})

	t.Run("default oxirgi", func(t *testing.T) {
		t.Setenv("CHAT_ID", "")
		assert.Equal(t, "333", ResolveChatID(nil, "333"))
	})
}
