package property

type Type string

const (
	TypeHotel  Type = "hotel"
	TypeHouse  Type = "house"
	TypeStudio Type = "studio"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHotel, TypeHouse, TypeStudio:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// TariffUnit is the billing granularity of the base rate. The booking path
// currently prices every unit as a daily rate; the unit is stored and exposed
// for catalog display.
type TariffUnit string

const (
	UnitHour  TariffUnit = "hour"
	UnitDay   TariffUnit = "day"
	UnitMonth TariffUnit = "month"
)

func (u TariffUnit) String() string {
	return string(u)
}

func (u TariffUnit) IsValid() bool {
	switch u {
	case UnitHour, UnitDay, UnitMonth:
		return true
	default:
		return false
	}
}
