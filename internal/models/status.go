package models

import "time"

// NetworkSize reports how much of the network is loaded.
type NetworkSize interface {
	StopCount() int
	BusCount() int
}

// StatusEntry is served by the current-time endpoint. Clients use it both as
// a clock and as a quick check that the catalogue loaded.
type StatusEntry struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
	StopCount    int    `json:"stopCount"`
	BusCount     int    `json:"busCount"`
}

func NewStatusEntry(now time.Time, network NetworkSize) StatusEntry {
	entry := StatusEntry{
		ReadableTime: now.Format(time.RFC3339),
		Time:         now.UnixMilli(),
	}
	if network != nil {
		entry.StopCount = network.StopCount()
		entry.BusCount = network.BusCount()
	}
	return entry
}
