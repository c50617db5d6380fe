package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierReplacesPrevious(t *testing.T) {
	n := NewNotifier()

	n.Success("Kategoriya saqlandi")
	n.Error("Server bilan bog'lanib bo'lmadi")

	// Navbat yo'q - faqat oxirgi xabar faol
	msg := n.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "Server bilan bog'lanib bo'lmadi", msg.Text)
	assert.Equal(t, SeverityError, msg.Severity)
}

func TestNotifierDismiss(t *testing.T) {
	n := NewNotifier()

	n.Info("Mavzu: dark")
	require.NotNil(t, n.Current())

	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestNotifierAutoDismiss(t *testing.T) {
	n := &Notifier{delay: 20 * time.Millisecond}

	n.Success("Mahsulot saqlandi")
	require.NotNil(t, n.Current())

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestNotifierStaleTimerKeepsNewMessage(t *testing.T) {
	// Oldingi xabarning timeri ishga tushib bo'lgan, lekin hali yopmagan
	// holat: eskirgan callback yangi xabarni yopmasligi kerak
	t.Run("eskirgan callback e'tiborsiz qoladi", func(t *testing.T) {
		n := NewNotifier()
		n.Success("birinchi")
		staleGen := n.gen

		n.Error("ikkinchi")
		n.dismissGen(staleGen)

		msg := n.Current()
		require.NotNil(t, msg)
		assert.Equal(t, "ikkinchi", msg.Text)
	})

	t.Run("o'z avlodi yopadi", func(t *testing.T) {
		n := NewNotifier()
		n.Success("birinchi")
		n.dismissGen(n.gen)
		assert.Nil(t, n.Current())
	})

	t.Run("timer chegarasida almashtirilgan xabar saqlanadi", func(t *testing.T) {
		n := &Notifier{delay: 20 * time.Millisecond}
		n.Success("birinchi")
		time.Sleep(20 * time.Millisecond)

		n.Error("ikkinchi")
		time.Sleep(2 * time.Millisecond)

		msg := n.Current()
		require.NotNil(t, msg)
		assert.Equal(t, "ikkinchi", msg.Text)

		// Yangi xabar o'z muddatidan keyin baribir yopiladi
		assert.Eventually(t, func() bool {
			return n.Current() == nil
		}, time.Second, 5*time.Millisecond)
	})
}

func TestNotifierCurrentReturnsCopy(t *testing.T) {
	n := NewNotifier()
	n.Success("Saqlandi")

	msg := n.Current()
	msg.Text = "o'zgartirildi"

	assert.Equal(t, "Saqlandi", n.Current().Text)
}
