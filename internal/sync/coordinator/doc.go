// Package coordinator runs the sync engine in the background.
//
// When a sync interval is configured the coordinator runs one round at startup
// and then one round per interval, each tick shifted by a random jitter so that
// several middleware instances do not hit the foreign systems together. A round
// syncs the inventory and then the appointments through the same Engine the HTTP
// endpoints use, so status and metrics are recorded identically.
//
// A failed sync is logged and the loop carries on; the next attempt happens on
// the next tick.
//
// # Usage Example
//
//	c := coordinator.New(engine, cfg.Sync.GetInterval())
//	go func() { _ = c.Start(ctx) }()
//	// ... run server ...
//	_ = c.Stop()
package coordinator
