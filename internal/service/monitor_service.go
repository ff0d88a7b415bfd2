package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// StorePinger is the slice of the store client the monitor needs.
type StorePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// MonitorService periodically pings the document store and logs reachability
// transitions. It observes only: reconnection is left to the store client's
// own transport behavior.
type MonitorService struct {
	pinger   StorePinger
	interval time.Duration
}

func NewMonitorService(pinger StorePinger, interval time.Duration) *MonitorService {
	return &MonitorService{
		pinger:   pinger,
		interval: interval,
	}
}

// Start runs the monitor loop until the context is cancelled.
func (m *MonitorService) Start(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	log.Printf("Store monitor started - pinging every %s", m.interval)

	reachable := true
	for {
		select {
		case <-ctx.Done():
			log.Println("Store monitor stopped")
			return
		case <-ticker.C:
			reachable = m.checkStore(ctx, reachable)
		}
	}
}

// checkStore pings once and logs only when reachability changes.
func (m *MonitorService) checkStore(ctx context.Context, wasReachable bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	if err := m.pinger.Ping(pingCtx, readpref.Primary()); err != nil {
		if wasReachable {
			log.Printf("Store unreachable: %v", err)
		}
		return false
	}

	if !wasReachable {
		log.Println("Store reachable again")
	}
	return true
}
