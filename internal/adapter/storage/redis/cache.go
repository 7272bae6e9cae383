package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

const (
	rateTTL    = time.Hour
	countryTTL = 24 * time.Hour

	countriesKey = "countries:all"
)

// Cache holds the short-lived lookup data: exchange rates and the country
// directory. All failures degrade to cache misses.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func rateKey(from, to string) string {
	return fmt.Sprintf("fxrate:%s:%s", from, to)
}

func (c *Cache) GetRate(ctx context.Context, from, to string) (float64, bool) {
	val, err := c.client.Get(ctx, rateKey(from, to)).Result()
	if err != nil {
		return 0, false
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil || rate <= 0 {
		return 0, false
	}
	return rate, true
}

func (c *Cache) SetRate(ctx context.Context, from, to string, rate float64) error {
	return c.client.Set(ctx, rateKey(from, to), strconv.FormatFloat(rate, 'f', -1, 64), rateTTL).Err()
}

func (c *Cache) GetCountries(ctx context.Context) ([]domain.Country, bool) {
	val, err := c.client.Get(ctx, countriesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var countries []domain.Country
	if err := json.Unmarshal(val, &countries); err != nil {
		return nil, false
	}
	return countries, true
}

func (c *Cache) SetCountries(ctx context.Context, countries []domain.Country) error {
	payload, err := json.Marshal(countries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, countriesKey, payload, countryTTL).Err()
}
