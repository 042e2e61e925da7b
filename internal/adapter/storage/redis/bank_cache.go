package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-payments/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// BankCache implements ports.BankCache. The directory is stored as one JSON
// document per currency.
type BankCache struct {
	client goredis.UniversalClient
	key    string
}

// NewBankCache creates a bank directory cache for currency.
func NewBankCache(client goredis.UniversalClient, currency string) *BankCache {
	return &BankCache{
		client: client,
		key:    "mkp:banks:" + currency,
	}
}

// GetBanks returns the cached directory, or nil on a miss.
func (c *BankCache) GetBanks(ctx context.Context) ([]domain.Bank, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis bank cache get: %w", err)
	}

	var banks []domain.Bank
	if err := json.Unmarshal(raw, &banks); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next fetch.
		return nil, nil
	}
	return banks, nil
}

// SetBanks stores the directory for ttl.
func (c *BankCache) SetBanks(ctx context.Context, banks []domain.Bank, ttl time.Duration) error {
	raw, err := json.Marshal(banks)
	if err != nil {
		return fmt.Errorf("encode bank list: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis bank cache set: %w", err)
	}
	return nil
}
