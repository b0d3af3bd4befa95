package events

import "github.com/atomicstack/navshell/internal/logging"

type PinTracer struct{}

type RecentTracer struct{}

type StorageTracer struct{}

var (
	Pin     = PinTracer{}
	Recent  = RecentTracer{}
	Storage = StorageTracer{}
)

func (PinTracer) Add(id, parentID string) {
	logging.Trace("pin.add", map[string]interface{}{"id": id, "parent": parentID})
}

func (PinTracer) AddCategory(categoryID string) {
	logging.Trace("pin.add-category", map[string]interface{}{"category": categoryID})
}

func (PinTracer) Remove(id string) {
	logging.Trace("pin.remove", map[string]interface{}{"id": id})
}

func (PinTracer) Seed(ids []string) {
	logging.Trace("pin.seed", map[string]interface{}{"ids": ids})
}

func (PinTracer) Backfill(ids []string) {
	logging.Trace("pin.backfill", map[string]interface{}{"ids": ids})
}

func (RecentTracer) Track(id string, size int) {
	logging.Trace("recent.track", map[string]interface{}{"id": id, "size": size})
}

func (RecentTracer) Clear() {
	logging.Trace("recent.clear", nil)
}

func (StorageTracer) Load(key string, count int) {
	logging.Trace("storage.load", map[string]interface{}{"key": key, "count": count})
}

func (StorageTracer) Save(key string, count int) {
	logging.Trace("storage.save", map[string]interface{}{"key": key, "count": count})
}

func (StorageTracer) Decode(key string, err error) {
	logging.Trace("storage.decode", map[string]interface{}{"key": key, "error": err.Error()})
}

func (StorageTracer) Error(key string, err error) {
	logging.Trace("storage.error", map[string]interface{}{"key": key, "error": err.Error()})
}
