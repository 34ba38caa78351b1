package payment

type Mode string

const (
	ModeCash     Mode = "cash"
	ModeTerminal Mode = "terminal"
	ModeOnline   Mode = "online"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeCash, ModeTerminal, ModeOnline:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusSettled  Status = "settled"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSettled, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}
