package set_slot_status

// SetSlotStatusRequest HTTP request model
// Дата и период берутся из URL, тело несет только статус
type SetSlotStatusRequest struct {
	Status string `json:"status"`
}
