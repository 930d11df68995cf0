package get_unread_count

// UnreadCountResponse HTTP response model
type UnreadCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}
