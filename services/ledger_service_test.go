package services

import (
	"testing"
	"time"

	"rentmag/constants"
	"rentmag/errors"
	"rentmag/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOccupancy(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	room := createTestRoom(t, db, "Room A", 5000)
	family := createTestFamily(t, db, "Smith")

	entry, err := ledger.RecordOccupancy(db, room, family, room.Price)
	require.NoError(t, err)
	assert.Equal(t, room.ID, entry.RoomID)
	assert.Equal(t, family.ID, entry.FamilyID)
	assert.Equal(t, 5000.0, entry.Amount)

	var storedRoom models.Room
	require.NoError(t, db.First(&storedRoom, room.ID).Error)
	assert.Equal(t, constants.RoomStatusOccupied, storedRoom.Status)

	var storedFamily models.Family
	require.NoError(t, db.First(&storedFamily, family.ID).Error)
	require.NotNil(t, storedFamily.RoomID)
	assert.Equal(t, room.ID, *storedFamily.RoomID)
	assert.Equal(t, 5000.0, storedFamily.Amount)

	// Exactly one active history row for the room and for the family.
	assert.EqualValues(t, 1, countActiveHistories(t, db, "room_id = ?", room.ID))
	assert.EqualValues(t, 1, countActiveHistories(t, db, "family_id = ?", family.ID))
}

func TestRecordOccupancyOccupiedRoom(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	room := createTestRoom(t, db, "Room A", 5000)
	first := createTestFamily(t, db, "Smith")
	second := createTestFamily(t, db, "Jones")

	_, err := ledger.RecordOccupancy(db, room, first, room.Price)
	require.NoError(t, err)

	_, err = ledger.RecordOccupancy(db, room, second, room.Price)
	assert.ErrorIs(t, err, errors.ErrRoomOccupied)
}

func TestEndOccupancy(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	room := createTestRoom(t, db, "Room A", 5000)
	family := createTestFamily(t, db, "Smith")

	entry, err := ledger.RecordOccupancy(db, room, family, room.Price)
	require.NoError(t, err)

	require.NoError(t, ledger.EndOccupancy(db, room, family))

	var storedRoom models.Room
	require.NoError(t, db.First(&storedRoom, room.ID).Error)
	assert.Equal(t, constants.RoomStatusEmpty, storedRoom.Status)

	var storedFamily models.Family
	require.NoError(t, db.First(&storedFamily, family.ID).Error)
	assert.Nil(t, storedFamily.RoomID)

	// The stay survives as a soft-deleted row with a closed span.
	assert.EqualValues(t, 0, countActiveHistories(t, db, "room_id = ?", room.ID))

	var stored models.RoomFamilyHistory
	require.NoError(t, db.Unscoped().First(&stored, entry.ID).Error)
	require.True(t, stored.DeletedAt.Valid)

	span := stored.Span()
	assert.False(t, span.Active)
	assert.False(t, span.Until.IsZero())
}

func TestEndOccupancyNoActiveStay(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	room := createTestRoom(t, db, "Room A", 5000)
	family := createTestFamily(t, db, "Smith")

	err := ledger.EndOccupancy(db, room, family)
	assert.ErrorIs(t, err, errors.ErrNoActiveOccupancy)
}

func TestActiveOccupant(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	room := createTestRoom(t, db, "Room A", 5000)
	family := createTestFamily(t, db, "Smith")

	occupant, err := ledger.ActiveOccupant(db, room)
	require.NoError(t, err)
	assert.Nil(t, occupant)

	_, err = ledger.RecordOccupancy(db, room, family, room.Price)
	require.NoError(t, err)

	occupant, err = ledger.ActiveOccupant(db, room)
	require.NoError(t, err)
	require.NotNil(t, occupant)
	assert.Equal(t, family.ID, occupant.ID)
}

func TestHistoryForFamilyOrderingAndRange(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger()

	family := createTestFamily(t, db, "Smith")
	roomA := createTestRoom(t, db, "Room A", 3000)
	roomB := createTestRoom(t, db, "Room B", 4000)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	insertStay(t, db, roomA.ID, family.ID, 3000, base, ptrTime(base.AddDate(0, 0, 10)))
	insertStay(t, db, roomB.ID, family.ID, 4000, base.AddDate(0, 0, 10), nil)

	entries, err := ledger.HistoryForFamily(db, family.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Most recent first.
	assert.Equal(t, roomB.ID, entries[0].RoomID)
	assert.Equal(t, roomA.ID, entries[1].RoomID)

	// A range after the first stay ended only matches the second.
	entries, err = ledger.HistoryForFamily(db, family.ID, base.AddDate(0, 0, 15), base.AddDate(0, 0, 20))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, roomB.ID, entries[0].RoomID)
}
