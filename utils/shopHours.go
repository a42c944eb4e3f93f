package utils

import "time"

const (
	openingHour = 10
	closingHour = 22
)

type ShopStatus struct {
	Open bool   `json:"open"`
	Text string `json:"text"`
}

// ShopStatusAt reports whether the shop takes orders at the given
// local time. Hours are 10:00 to 22:00.
func ShopStatusAt(t time.Time) ShopStatus {
	hour := t.Hour()
	if hour >= openingHour && hour < closingHour {
		return ShopStatus{Open: true, Text: "Open Now - Taking Orders"}
	}
	return ShopStatus{Open: false, Text: "Closed (Opens 10:00 AM)"}
}
