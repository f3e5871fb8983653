package scheduling

// ShopSlot is the read model for the shop slot listing: one slot joined
// to its barber's display name.
type ShopSlot struct {
	SlotID     uint   `json:"slot_id"`
	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`
	TimeOfDay  string `json:"time_of_day"`
	Status     string `json:"status"`
}

// BookedSlot summarizes one successfully claimed slot.
type BookedSlot struct {
	SlotID    uint   `json:"slot_id"`
	Date      string `json:"date"`
	TimeOfDay string `json:"time_of_day"`
	Status    string `json:"status"`
}
