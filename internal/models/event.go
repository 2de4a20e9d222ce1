package models

// RateUpdateEvent is published to Kafka after every committed refresh.
type RateUpdateEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Anchor    string `json:"anchor"`
	RateCount int    `json:"rate_count"`
}
