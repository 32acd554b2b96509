package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/globalmarket/backend/internal/models"
)

func sampleState() models.PersistedState {
	return models.PersistedState{
		WalletBalance: 42.5,
		Transactions: []models.Transaction{
			{
				ID:           "tx-1",
				Kind:         models.KindSale,
				Amount:       200,
				Commission:   10,
				ReferralName: "Adegan Global",
				Status:       models.StatusCompleted,
				Date:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				Items: []models.CartItem{
					{Product: models.Product{ID: 3, Name: "Coffee Maker", Price: 100}, Quantity: 2},
				},
			},
		},
		Cart: []models.CartItem{
			{Product: models.Product{ID: 7, Name: "Yoga Mat", Price: 25.99}, Quantity: 1},
		},
	}
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key yields defaults", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		s := New(db, "testKey")

		mock.ExpectGet("testKey").RedisNil()

		state := s.Load(ctx)
		assert.Equal(t, models.PersistedState{}, state)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed blob yields defaults", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		s := New(db, "testKey")

		mock.ExpectGet("testKey").SetVal("{not json")

		state := s.Load(ctx)
		assert.Equal(t, models.PersistedState{}, state)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage error yields defaults, not a panic", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		s := New(db, "testKey")

		mock.ExpectGet("testKey").SetErr(errors.New("connection reset"))

		state := s.Load(ctx)
		assert.Equal(t, models.PersistedState{}, state)
	})

	t.Run("nil client yields defaults", func(t *testing.T) {
		s := New(nil, "")
		assert.Equal(t, models.PersistedState{}, s.Load(ctx))
	})
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	s := New(db, "testKey")

	state := sampleState()
	blob, err := json.Marshal(state)
	assert.NoError(t, err)

	mock.ExpectSet("testKey", blob, 0).SetVal("OK")
	s.Save(ctx, state)

	mock.ExpectGet("testKey").SetVal(string(blob))
	loaded := s.Load(ctx)

	assert.Equal(t, state.WalletBalance, loaded.WalletBalance)
	assert.Equal(t, state.Cart, loaded.Cart)
	assert.Len(t, loaded.Transactions, 1)
	assert.Equal(t, state.Transactions[0].ID, loaded.Transactions[0].ID)
	assert.Equal(t, state.Transactions[0].Items, loaded.Transactions[0].Items)
	assert.True(t, state.Transactions[0].Date.Equal(loaded.Transactions[0].Date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveFailsSoft(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	s := New(db, "testKey")

	state := sampleState()
	blob, err := json.Marshal(state)
	assert.NoError(t, err)

	mock.ExpectSet("testKey", blob, 0).SetErr(errors.New("OOM command not allowed"))

	// must not panic or propagate
	s.Save(ctx, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the record", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		s := New(db, "testKey")

		mock.ExpectDel("testKey").SetVal(1)
		s.Clear(ctx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete errors are swallowed", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		s := New(db, "testKey")

		mock.ExpectDel("testKey").SetErr(errors.New("connection reset"))
		s.Clear(ctx)
	})
}
