package models

// Occupancy is the set of days a reservation holds.
// It is either a RoomInterval or an ExperienceSlot.
type Occupancy interface {
	Occupies() Span
}

// RoomInterval occupies every day from CheckIn through CheckOut, both included.
type RoomInterval struct {
	CheckIn  Date `json:"check_in"`
	CheckOut Date `json:"check_out"`
}

func (r RoomInterval) Occupies() Span {
	return Span{Start: r.CheckIn, End: r.CheckOut}
}

// ExperienceSlot occupies a single day.
type ExperienceSlot struct {
	Day Date `json:"experience_time"`
}

func (e ExperienceSlot) Occupies() Span {
	return Span{Start: e.Day, End: e.Day}
}
