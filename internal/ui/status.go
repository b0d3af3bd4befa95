package ui

import "time"

// noticeTTL is how long an info message stays under the rows.
const noticeTTL = 5 * time.Second

// notice is a transient info message such as "Pinned Users".
type notice struct {
	text    string
	expires time.Time
}

func (n *notice) show(text string, now time.Time) {
	n.text = text
	n.expires = now.Add(noticeTTL)
}

func (n *notice) reset() {
	*n = notice{}
}

// visible returns the message until it expires.
func (n *notice) visible(now time.Time) string {
	if n.text != "" && now.After(n.expires) {
		n.reset()
	}
	return n.text
}

func (m *Model) clock() time.Time {
	if m.now != nil {
		return m.now()
	}
	return time.Now()
}

func (m *Model) setInfo(message string) {
	m.info.show(message, m.clock())
}

// expireInfo drops the message only once its time is up.
func (m *Model) expireInfo() {
	m.info.visible(m.clock())
}

// dismissInfo drops the message immediately.
func (m *Model) dismissInfo() {
	m.info.reset()
}

func (m *Model) currentInfo() string {
	return m.info.visible(m.clock())
}
