package gate

import (
	"context"
	"os"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"
	"bozorcha-admin/pkg/logger"

	"go.uber.org/zap"
)

// State - access gate yakuniy holati
type State int

const (
	StateAuthorized State = iota
	StateUnauthorized
	StateError
)

func (s State) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "error"
	}
}

// Result - tekshiruv natijasi
// StateError (lookup o'zi muvaffaqiyatsiz) va StateUnauthorized (lookup
// ishladi, lekin status mos emas) ajratiladi: birinchisida qayta urinish
// taklif qilinadi, ikkinchisi yakuniy rad.
type Result struct {
	State State
	User  *models.UserAuthData
	Err   error
}

// UserFinder - chat_id bo'yicha foydalanuvchi qidirish
type UserFinder interface {
	FindUserByChatID(ctx context.Context, chatID string) (*models.UserAuthData, error)
}

// Gate - Telegram chat_id asosidagi access gate
// Sessiya boshida aynan bitta lookup qilinadi, avtomatik retry yo'q.
type Gate struct {
	finder UserFinder
}

// New - yangi access gate yaratish
func New(finder UserFinder) *Gate {
	return &Gate{finder: finder}
}

// Check - chat_id ni tekshirish
func (g *Gate) Check(ctx context.Context, chatID string) Result {
	user, err := g.finder.FindUserByChatID(ctx, chatID)
	if err != nil {
		if apperror.IsTransport(err) {
			logger.Error("Auth lookup muvaffaqiyatsiz", zap.String("chat_id", chatID), zap.Error(err))
			return Result{State: StateError, Err: err}
		}
		// Domain xato (masalan topilmadi) - ruxsat yo'q
		logger.Warn("Foydalanuvchi topilmadi", zap.String("chat_id", chatID), zap.Error(err))
		return Result{State: StateUnauthorized, Err: err}
	}

	if user == nil || !user.IsConfirmed() {
		logger.Warn("Foydalanuvchi tasdiqlanmagan",
			zap.String("chat_id", chatID),
			zap.String("status", statusOf(user)))
		return Result{State: StateUnauthorized, User: user}
	}

	logger.Info("Foydalanuvchi tasdiqlandi",
		zap.String("chat_id", chatID),
		zap.String("name", user.DisplayName()))
	return Result{State: StateAuthorized, User: user}
}

func statusOf(user *models.UserAuthData) string {
	if user == nil {
		return ""
	}
	return string(user.Status)
}

// ResolveChatID - chat_id ni aniqlash tartibi:
// CLI argument -> CHAT_ID env -> konfiguratsiyadagi default
func ResolveChatID(args []string, defaultChatID string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if envID := os.Getenv("CHAT_ID"); envID != "" {
		return envID
	}
	return defaultChatID
}
