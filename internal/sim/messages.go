package sim

// MessageKind loosely colors a log line for the HUD.
type MessageKind int

const (
	MsgInfo MessageKind = iota
	MsgGood
	MsgBad
	MsgStory
)

// Message is one line of the in-game event log.
type Message struct {
	Text string
	Kind MessageKind
	Day  int
}

const maxMessages = 64

// MessageLog is a bounded FIFO of game events. Oldest entries are dropped
// once the log is full.
type MessageLog struct {
	entries []Message
}

func NewMessageLog() *MessageLog {
	return &MessageLog{entries: make([]Message, 0, maxMessages)}
}

func (l *MessageLog) Add(day int, kind MessageKind, text string) {
	if len(l.entries) >= maxMessages {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, Message{Text: text, Kind: kind, Day: day})
}

// Recent returns up to n of the newest entries, oldest first.
func (l *MessageLog) Recent(n int) []Message {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}

func (l *MessageLog) Len() int { return len(l.entries) }
