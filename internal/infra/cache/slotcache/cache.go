package slotcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// Cache кэш еженедельных шаблонов слотов поверх Redis
// Шаблоны меняются редко (только администратором), поэтому кэшируются
// по ключу (объект, день недели) с коротким TTL
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш шаблонов слотов
func New(addr, password string, db int, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// NewWithClient создает кэш поверх готового клиента (используется в тестах)
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetDayTemplates получает шаблоны объекта на день недели
// Возвращает (nil, nil) при промахе кэша
func (c *Cache) GetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error) {
	data, err := c.client.Get(ctx, dayTemplatesKey(facilityID, dayOfWeek)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("slotcache: get day templates: %w", err)
	}

	var templates []*domain.SlotTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("slotcache: unmarshal day templates: %w", err)
	}
	return templates, nil
}

// SetDayTemplates сохраняет шаблоны объекта на день недели
func (c *Cache) SetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int, templates []*domain.SlotTemplate) error {
	payload, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("slotcache: marshal day templates: %w", err)
	}
	return c.client.Set(ctx, dayTemplatesKey(facilityID, dayOfWeek), payload, c.ttl).Err()
}

// InvalidateFacility сбрасывает кэш всех дней недели объекта
// Вызывается после изменения шаблонов администратором
func (c *Cache) InvalidateFacility(ctx context.Context, facilityID string) error {
	keys := make([]string, 0, domain.MaxDayOfWeek+1)
	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		keys = append(keys, dayTemplatesKey(facilityID, day))
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	return c.client.Close()
}

func dayTemplatesKey(facilityID string, dayOfWeek int) string {
	return fmt.Sprintf("cache:slots:%s:day:%d", facilityID, dayOfWeek)
}
