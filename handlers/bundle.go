package handlers

// HandlerBundle groups all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Booking      *BookingHandler
	Availability *AvailabilityHandler
}
