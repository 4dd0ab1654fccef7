package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"time"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"

	bolt "go.etcd.io/bbolt"
)

type deviceRepository struct {
	runner
}

// UpsertDevice creates the device or refreshes its platform and last-seen time.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketDevices)

		stored := *device
		if existing := bkt.Get([]byte(device.ID)); existing != nil {
			var prev entity.Device
			if err := json.Unmarshal(existing, &prev); err != nil {
				return err
			}
			stored.CreatedAt = prev.CreatedAt
		}

		payload, err := json.Marshal(&stored)
		if err != nil {
			return err
		}

		return bkt.Put([]byte(device.ID), payload)
	})
}

// FindDeviceByID retrieves a device by its client identity.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var device *entity.Device

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketDevices).Get([]byte(id))
		if raw == nil {
			return repository.ErrDeviceNotFound
		}

		device = new(entity.Device)

		return json.Unmarshal(raw, device)
	})
	if err != nil {
		return nil, err
	}

	return device, nil
}

type tokenRepository struct {
	runner
}

// deviceTokenKey indexes tokens by device: "<deviceID>\x00<token>".
func deviceTokenKey(deviceID, token string) []byte {
	key := make([]byte, 0, len(deviceID)+1+len(token))
	key = append(key, deviceID...)
	key = append(key, 0)

	return append(key, token...)
}

func devicePrefix(deviceID string) []byte {
	return append([]byte(deviceID), 0)
}

func putToken(tx *bolt.Tx, token *entity.Token) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return err
	}

	return tx.Bucket(bucketTokens).Put([]byte(token.Value), payload)
}

func getToken(tx *bolt.Tx, value string) (*entity.Token, error) {
	raw := tx.Bucket(bucketTokens).Get([]byte(value))
	if raw == nil {
		return nil, repository.ErrTokenNotFound
	}

	token := new(entity.Token)
	if err := json.Unmarshal(raw, token); err != nil {
		return nil, err
	}

	return token, nil
}

func deviceTokens(tx *bolt.Tx, deviceID string) ([]*entity.Token, error) {
	var tokens []*entity.Token

	prefix := devicePrefix(deviceID)
	cursor := tx.Bucket(bucketDeviceTokens).Cursor()
	for k, _ := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cursor.Next() {
		token, err := getToken(tx, string(k[len(prefix):]))
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// CreateToken persists a new token.
func (repo *tokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		if tx.Bucket(bucketTokens).Get([]byte(token.Value)) != nil {
			return repository.ErrDuplicateToken
		}

		if err := putToken(tx, token); err != nil {
			return err
		}

		return tx.Bucket(bucketDeviceTokens).Put(deviceTokenKey(token.DeviceID, token.Value), nil)
	})
}

// FindTokenByValue retrieves a token by its opaque value.
func (repo *tokenRepository) FindTokenByValue(ctx context.Context, value string) (*entity.Token, error) {
	var token *entity.Token

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		found, err := getToken(tx, value)
		token = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// FindTokensByDevice retrieves every token of a device regardless of status.
func (repo *tokenRepository) FindTokensByDevice(ctx context.Context, deviceID string) ([]*entity.Token, error) {
	return repo.FindTokensByDevices(ctx, []string{deviceID})
}

// FindTokensByDevices retrieves every token of the given devices, newest first.
func (repo *tokenRepository) FindTokensByDevices(ctx context.Context, deviceIDs []string) ([]*entity.Token, error) {
	var tokens []*entity.Token

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		for _, deviceID := range deviceIDs {
			found, err := deviceTokens(tx, deviceID)
			if err != nil {
				return err
			}
			tokens = append(tokens, found...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].IssuedAt.After(tokens[j].IssuedAt)
	})

	return tokens, nil
}

// UpdateToken persists owner, status and timestamps of an existing token.
func (repo *tokenRepository) UpdateToken(ctx context.Context, token *entity.Token) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		prev, err := getToken(tx, token.Value)
		if err != nil {
			return err
		}

		if prev.DeviceID != token.DeviceID {
			index := tx.Bucket(bucketDeviceTokens)
			if err := index.Delete(deviceTokenKey(prev.DeviceID, prev.Value)); err != nil {
				return err
			}
			if err := index.Put(deviceTokenKey(token.DeviceID, token.Value), nil); err != nil {
				return err
			}
		}

		return putToken(tx, token)
	})
}

// MarkDeviceTokensStale marks every active token of the device except keep as stale.
func (repo *tokenRepository) MarkDeviceTokensStale(ctx context.Context, deviceID, keep string, at time.Time) (int64, error) {
	var marked int64

	err := repo.update(ctx, func(tx *bolt.Tx) error {
		tokens, err := deviceTokens(tx, deviceID)
		if err != nil {
			return err
		}

		for _, token := range tokens {
			if token.Value == keep || token.Status != entity.TokenActive {
				continue
			}

			token.MarkStale(at)
			if err := putToken(tx, token); err != nil {
				return err
			}
			marked++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return marked, nil
}
