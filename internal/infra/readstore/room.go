package readstore

import (
	"context"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/pgconv"
	"campus-rooms/internal/usecase/queries"
)

const roomViewSQL = `
SELECT id, building, room_num, sub_room, name, capacity
FROM rooms`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id room.ID) (*queries.RoomView, error) {
	var v queries.RoomView
	err := r.db.QueryRow(ctx, roomViewSQL+` WHERE id = $1`, id.Int64()).
		Scan(&v.ID, &v.Building, &v.RoomNum, &v.SubRoom, &v.Name, &v.Capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}
	return &v, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, roomViewSQL+` ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Building, &v.RoomNum, &v.SubRoom, &v.Name, &v.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room views", err)
	}
	return views, nil
}
