package feedback

import (
	"sync"
	"time"
)

// DismissAfter - xabar avtomatik yopilish vaqti
const DismissAfter = 4 * time.Second

// Severity - xabar darajasi
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Message - bitta faol xabar
type Message struct {
	Text     string
	Severity Severity
}

// Notifier - o'tkinchi toast xabarlar
// Bir vaqtda faqat bitta faol xabar bo'ladi: yangi xabar oldingisini
// almashtiradi, navbat yo'q. Xabar 4 soniyadan keyin o'zi yopiladi yoki
// Dismiss bilan yopiladi.
type Notifier struct {
	mu      sync.Mutex
	current *Message
	timer   *time.Timer
	delay   time.Duration

	// gen - har bir yangi xabar uchun oshadi; ishga tushib bo'lgan, lekin
	// mutexni hali olmagan eski timer callback yangiroq xabarni yopmasligi
	// uchun callback o'z avlod raqamini tekshiradi
	gen uint64
}

// NewNotifier - yangi notifier
func NewNotifier() *Notifier {
	return &Notifier{delay: DismissAfter}
}

// Show - xabar ko'rsatish (oldingisi almashtiriladi)
func (n *Notifier) Show(text string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.current = &Message{Text: text, Severity: severity}
	n.timer = time.AfterFunc(n.delay, func() { n.dismissGen(gen) })
}

// dismissGen - faqat o'sha avlod xabari hali faol bo'lsa yopish
func (n *Notifier) dismissGen(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.gen {
		// Eskirgan timer - xabar allaqachon almashtirilgan
		return
	}
	n.clearLocked()
}

// Success - muvaffaqiyat xabari
func (n *Notifier) Success(text string) {
	n.Show(text, SeveritySuccess)
}

// Error - xato xabari
func (n *Notifier) Error(text string) {
	n.Show(text, SeverityError)
}

// Info - ma'lumot xabari
func (n *Notifier) Info(text string) {
	n.Show(text, SeverityInfo)
}

// Current - hozirgi faol xabar (yo'q bo'lsa nil)
func (n *Notifier) Current() *Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	msg := *n.current
	return &msg
}

// Dismiss - faol xabarni yopish
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	n.clearLocked()
}

func (n *Notifier) clearLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
