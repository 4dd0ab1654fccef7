package postgres

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice creates the device or refreshes its platform and last-seen time.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "last_seen_at", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		return storeError(err, "failed to upsert device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its client identity.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, storeError(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// CreateToken persists a new token.
func (repo *tokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	if err := repo.db.WithContext(ctx).Create(fromTokenDomain(token)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateToken
		}

		return storeError(err, "failed to create token")
	}

	return nil
}

// FindTokenByValue retrieves a token by its opaque value.
func (repo *tokenRepository) FindTokenByValue(ctx context.Context, value string) (*entity.Token, error) {
	var tokenM model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, storeError(err, "failed to find token")
	}

	return toTokenDomain(&tokenM), nil
}

// FindTokensByDevice retrieves every token of a device regardless of status.
func (repo *tokenRepository) FindTokensByDevice(ctx context.Context, deviceID string) ([]*entity.Token, error) {
	return repo.FindTokensByDevices(ctx, []string{deviceID})
}

// FindTokensByDevices retrieves every token of the given devices.
func (repo *tokenRepository) FindTokensByDevices(ctx context.Context, deviceIDs []string) ([]*entity.Token, error) {
	if len(deviceIDs) == 0 {
		return []*entity.Token{}, nil
	}

	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("device_id IN ?", deviceIDs).
		Order("issued_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, storeError(err, "failed to find tokens by devices")
	}

	tokens := make([]*entity.Token, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens, nil
}

// UpdateToken persists owner, status and timestamps of an existing token.
func (repo *tokenRepository) UpdateToken(ctx context.Context, token *entity.Token) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("value = ?", token.Value).
		Updates(map[string]any{
			"device_id":      token.DeviceID,
			"status":         string(token.Status),
			"issued_at":      token.IssuedAt,
			"stale_at":       token.StaleAt,
			"invalidated_at": token.InvalidatedAt,
			"updated_at":     token.UpdatedAt,
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to update token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// MarkDeviceTokensStale marks every active token of the device except keep as stale.
func (repo *tokenRepository) MarkDeviceTokensStale(ctx context.Context, deviceID, keep string, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("device_id = ? AND status = ? AND value <> ?", deviceID, string(entity.TokenActive), keep).
		Updates(map[string]any{
			"status":     string(entity.TokenStale),
			"stale_at":   at,
			"updated_at": at,
		})

	if result.Error != nil {
		return 0, storeError(result.Error, "failed to mark device tokens stale")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		Platform:   data.Platform,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		Platform:   data.Platform,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toTokenDomain converts a GORM PushTokenModel to a domain Token entity.
func toTokenDomain(data *model.PushTokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		Value:         data.Value,
		DeviceID:      data.DeviceID,
		Status:        entity.TokenStatus(data.Status),
		IssuedAt:      data.IssuedAt,
		StaleAt:       data.StaleAt,
		InvalidatedAt: data.InvalidatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM PushTokenModel.
func fromTokenDomain(data *entity.Token) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		Value:         data.Value,
		DeviceID:      data.DeviceID,
		Status:        string(data.Status),
		IssuedAt:      data.IssuedAt,
		StaleAt:       data.StaleAt,
		InvalidatedAt: data.InvalidatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
