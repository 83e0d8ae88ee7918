package availability

// GenerateSlots returns the candidate slot start times at fixed 30-minute
// steps from start up to, but not including, end. An empty window yields no
// slots.
func GenerateSlots(start, end Clock) []Clock {
	if end <= start {
		return nil
	}
	slots := make([]Clock, 0, int(end-start)/SlotMinutes+1)
	for c := start; c < end; c += SlotMinutes {
		slots = append(slots, c)
	}
	return slots
}

// splitBooked partitions the candidate slots into free and booked using
// interval overlap: a slot [t, t+30) is booked when any blocking or pending
// booking on that day intersects it. Matching on intervals rather than exact
// start strings means an appointment at 14:15 still blocks both the 14:00 and
// 14:30 slots.
func splitBooked(slots []Clock, bookings []Booking) (free, booked []string) {
	free = []string{}
	booked = []string{}
	for _, slot := range slots {
		taken := false
		for _, b := range bookings {
			if ClocksOverlap(slot, slot+SlotMinutes, ClockOf(b.StartAt), ClockOf(b.EndAt)) {
				taken = true
				break
			}
		}
		if taken {
			booked = append(booked, slot.String())
		} else {
			free = append(free, slot.String())
		}
	}
	return free, booked
}
