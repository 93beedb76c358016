package sale

// Episode — решение одного цикла: что (и нужно ли) сообщать.
// Эфемерное значение, никуда не сохраняется.
type Episode int

const (
	EpisodeNone Episode = iota
	EpisodeSaleStarted
	EpisodeSaleEnded
)

func (e Episode) String() string {
	switch e {
	case EpisodeSaleStarted:
		return "sale_started"
	case EpisodeSaleEnded:
		return "sale_ended"
	default:
		return "none"
	}
}

// Machine — строгий двухфазный автомат Quiet/Active.
// Каждый цикл оценивается против последнего ПЕРСИСТИРОВАННОГО флага,
// никакой истории в памяти между запусками нет.
type Machine struct {
	notifySaleEnd bool
}

func NewMachine() *Machine {
	return &Machine{}
}

// WithSaleEndNotice включает уведомление на переходе Active -> Quiet.
// По умолчанию этот переход молчаливый: состояние просто «взводится» заново.
func (m *Machine) WithSaleEndNotice(enabled bool) *Machine {
	m.notifySaleEnd = enabled
	return m
}

// Next решает, какой эпизод породил переход.
// Единственный переход, заметный пользователю по умолчанию — Quiet -> Active.
func (m *Machine) Next(wasActive, saleNow bool) Episode {
	switch {
	case !wasActive && saleNow:
		return EpisodeSaleStarted
	case wasActive && !saleNow && m.notifySaleEnd:
		return EpisodeSaleEnded
	default:
		return EpisodeNone
	}
}
