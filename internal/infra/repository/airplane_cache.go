package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/hangarhq/hangar/internal/domain"
)

const airplaneCacheTTL = 10 * time.Minute

// CachedAirplaneRepository layers memcached over airplane reads by id.
// Writes pass through to the inner repository and drop the cached entry.
type CachedAirplaneRepository struct {
	inner *AirplaneRepository
	mc    *memcache.Client
}

func NewCachedAirplaneRepository(inner *AirplaneRepository, mc *memcache.Client) *CachedAirplaneRepository {
	return &CachedAirplaneRepository{inner: inner, mc: mc}
}

func cacheKey(id string) string {
	return "airplane:" + id
}

func (r *CachedAirplaneRepository) Add(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	return r.inner.Add(ctx, airplane)
}

func (r *CachedAirplaneRepository) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	stored, err := r.inner.Update(ctx, airplane)
	if err != nil {
		return domain.Airplane{}, err
	}
	r.invalidate(airplane.ID)
	return stored, nil
}

func (r *CachedAirplaneRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *CachedAirplaneRepository) FindByID(ctx context.Context, id string) (domain.Airplane, error) {
	if item, err := r.mc.Get(cacheKey(id)); err == nil {
		var airplane domain.Airplane
		if err := json.Unmarshal(item.Value, &airplane); err == nil {
			return airplane, nil
		}
	}

	airplane, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return domain.Airplane{}, err
	}

	if payload, err := json.Marshal(airplane); err == nil {
		r.mc.Set(&memcache.Item{
			Key:        cacheKey(id),
			Value:      payload,
			Expiration: int32(airplaneCacheTTL.Seconds()),
		})
	}

	return airplane, nil
}

func (r *CachedAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	return r.inner.List(ctx)
}

func (r *CachedAirplaneRepository) invalidate(id string) {
	// a miss is fine, and a failed delete just means the entry expires on its own
	_ = r.mc.Delete(cacheKey(id))
}
