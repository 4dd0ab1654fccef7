package impl

import (
	"context"
	"testing"
	"time"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	mockRepo "pushrelay/internal/mocks/repository"
	"pushrelay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service    usecase.TokenUsecase
	txManager  *mockRepo.MockTransactionManager
	tokenRepo  *mockRepo.MockTokenRepository
	txDevices  *mockRepo.MockDeviceRepository
	txTokens   *mockRepo.MockTokenRepository
	setNowFunc func(func() time.Time)
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	service := NewTokenService(TokenServiceParams{
		TxManager: txManager,
		TokenRepo: tokenRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	impl := service.(*tokenService)
	impl.now = func() time.Time { return fixedNow }

	return tokenServiceFixtures{
		service:    service,
		txManager:  txManager,
		tokenRepo:  tokenRepo,
		txDevices:  mockRepo.NewMockDeviceRepository(t),
		txTokens:   mockRepo.NewMockTokenRepository(t),
		setNowFunc: func(now func() time.Time) { impl.now = now },
	}
}

func TestTokenService_Register_NewToken(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, fx.txDevices, fx.txTokens)

	fx.txDevices.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.ID == "device-1" && d.Platform == "android" && d.LastSeenAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-new").Return(nil, repository.ErrTokenNotFound)
	fx.txTokens.EXPECT().
		CreateToken(ctx, mock.MatchedBy(func(tok *entity.Token) bool {
			return tok.Value == "token-new" && tok.DeviceID == "device-1" && tok.Status == entity.TokenActive
		})).
		Return(nil)
	fx.txTokens.EXPECT().MarkDeviceTokensStale(ctx, "device-1", "token-new", fixedNow).Return(int64(1), nil)

	token, err := fx.service.Register(ctx, &usecase.RegisterTokenInput{
		DeviceID: "device-1",
		Token:    "token-new",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-new", token.Value)
	assert.Equal(t, entity.TokenActive, token.Status)
	assert.Equal(t, fixedNow, token.IssuedAt)
}

func TestTokenService_Register_SameTokenIsNoop(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, fx.txDevices, fx.txTokens)

	existing := newActiveToken("device-1", "token-a")

	fx.txDevices.EXPECT().UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-a").Return(existing, nil)

	token, err := fx.service.Register(ctx, &usecase.RegisterTokenInput{DeviceID: "device-1", Token: "token-a"})
	require.NoError(t, err)
	assert.Same(t, existing, token)
	fx.txTokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
	fx.txTokens.AssertNotCalled(t, "UpdateToken", mock.Anything, mock.Anything)
	fx.txTokens.AssertNotCalled(t, "MarkDeviceTokensStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenService_Register_TakesOverTokenFromOtherDevice(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, fx.txDevices, fx.txTokens)

	existing := newActiveToken("device-old", "token-a")

	fx.txDevices.EXPECT().UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-a").Return(existing, nil)
	fx.txTokens.EXPECT().
		UpdateToken(ctx, mock.MatchedBy(func(tok *entity.Token) bool {
			return tok.DeviceID == "device-new" && tok.Status == entity.TokenActive && tok.StaleAt == nil
		})).
		Return(nil)
	fx.txTokens.EXPECT().MarkDeviceTokensStale(ctx, "device-new", "token-a", fixedNow).Return(int64(0), nil)

	token, err := fx.service.Register(ctx, &usecase.RegisterTokenInput{DeviceID: "device-new", Token: "token-a"})
	require.NoError(t, err)
	assert.Equal(t, "device-new", token.DeviceID)
}

func TestTokenService_Register_ReactivatesStaleToken(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, fx.txDevices, fx.txTokens)

	existing := newActiveToken("device-1", "token-a")
	existing.MarkStale(fixedNow.Add(-time.Minute))

	fx.txDevices.EXPECT().UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-a").Return(existing, nil)
	fx.txTokens.EXPECT().UpdateToken(ctx, existing).Return(nil)
	fx.txTokens.EXPECT().MarkDeviceTokensStale(ctx, "device-1", "token-a", fixedNow).Return(int64(1), nil)

	token, err := fx.service.Register(ctx, &usecase.RegisterTokenInput{DeviceID: "device-1", Token: "token-a"})
	require.NoError(t, err)
	assert.Equal(t, entity.TokenActive, token.Status)
	assert.Nil(t, token.StaleAt)
}

func TestTokenService_Invalidate(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, nil, fx.txTokens)

	stored := newActiveToken("device-1", "token-a")
	fx.tokenRepo.EXPECT().FindTokenByValue(ctx, "token-a").Return(stored, nil)

	reloaded := newActiveToken("device-1", "token-a")
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-a").Return(reloaded, nil)
	fx.txTokens.EXPECT().
		UpdateToken(ctx, mock.MatchedBy(func(tok *entity.Token) bool {
			return tok.Status == entity.TokenInvalid && tok.InvalidatedAt != nil
		})).
		Return(nil)

	require.NoError(t, fx.service.Invalidate(ctx, "token-a"))
}

func TestTokenService_Invalidate_AlreadyInvalidIsNoop(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	expectTransaction(t, fx.txManager, nil, fx.txTokens)

	invalid := newActiveToken("device-1", "token-a")
	invalid.MarkInvalid(fixedNow)

	fx.tokenRepo.EXPECT().FindTokenByValue(ctx, "token-a").Return(invalid, nil)
	fx.txTokens.EXPECT().FindTokenByValue(ctx, "token-a").Return(invalid, nil)

	require.NoError(t, fx.service.Invalidate(ctx, "token-a"))
	fx.txTokens.AssertNotCalled(t, "UpdateToken", mock.Anything, mock.Anything)
}

func TestTokenService_Lookup_FiltersByStatusAndGrace(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	active := newActiveToken("device-1", "token-active")

	freshStale := newActiveToken("device-1", "token-fresh-stale")
	freshStale.MarkStale(fixedNow.Add(-10 * time.Minute))

	expiredStale := newActiveToken("device-1", "token-expired-stale")
	expiredStale.MarkStale(fixedNow.Add(-2 * time.Hour))

	invalid := newActiveToken("device-1", "token-invalid")
	invalid.MarkInvalid(fixedNow.Add(-time.Minute))

	fx.tokenRepo.EXPECT().
		FindTokensByDevice(ctx, "device-1").
		Return([]*entity.Token{active, freshStale, expiredStale, invalid}, nil)

	tokens, err := fx.service.Lookup(ctx, "device-1")
	require.NoError(t, err)

	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"token-active", "token-fresh-stale"}, values)
}

func TestTokenService_Lookup_StaleExcludedAfterGraceWindow(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	previous := newActiveToken("device-1", "token-old")
	previous.MarkStale(fixedNow)
	current := newActiveToken("device-1", "token-new")

	fx.tokenRepo.EXPECT().
		FindTokensByDevice(ctx, "device-1").
		Return([]*entity.Token{current, previous}, nil).
		Times(2)

	tokens, err := fx.service.Lookup(ctx, "device-1")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)

	fx.setNowFunc(func() time.Time { return fixedNow.Add(time.Hour + time.Second) })

	tokens, err = fx.service.Lookup(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "token-new", tokens[0].Value)
}

func TestTokenService_Lookup_UnknownDeviceReturnsEmpty(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().FindTokensByDevice(ctx, "ghost").Return([]*entity.Token{}, nil)

	tokens, err := fx.service.Lookup(ctx, "ghost")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestTokenService_LookupMany(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	t.Run("no devices", func(t *testing.T) {
		tokens, err := fx.service.LookupMany(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("filters invalid tokens", func(t *testing.T) {
		invalid := newActiveToken("device-2", "token-b")
		invalid.MarkInvalid(fixedNow)

		fx.tokenRepo.EXPECT().
			FindTokensByDevices(ctx, []string{"device-1", "device-2"}).
			Return([]*entity.Token{newActiveToken("device-1", "token-a"), invalid}, nil)

		tokens, err := fx.service.LookupMany(ctx, []string{"device-1", "device-2"})
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, "token-a", tokens[0].Value)
	})
}
