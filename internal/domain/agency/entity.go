package agency

// Agency owns listed properties and collects reviews. Only the identity and
// display fields matter to the booking core; contact and ranking are optional.
type Agency struct {
	id      int64
	name    string
	contact *string
	ranking *float64
}

func Reconstruct(id int64, name string, contact *string, ranking *float64) *Agency {
	return &Agency{
		id:      id,
		name:    name,
		contact: contact,
		ranking: ranking,
	}
}

func (a *Agency) ID() int64         { return a.id }
func (a *Agency) Name() string      { return a.name }
func (a *Agency) Contact() *string  { return a.contact }
func (a *Agency) Ranking() *float64 { return a.ranking }
