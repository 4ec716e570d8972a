package response

import "cinema-boxoffice/internal/data/entity"

type RoomResponse struct {
	ID           string   `json:"id"`
	Number       int      `json:"number"`
	TotalRows    int      `json:"total_rows"`
	VIPRows      int      `json:"vip_rows"`
	Columns      int      `json:"columns"`
	ScreeningIDs []string `json:"screening_ids"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	screeningIDs := make([]string, len(room.ScreeningIDs))
	for i, id := range room.ScreeningIDs {
		screeningIDs[i] = id.String()
	}

	return RoomResponse{
		ID:           room.ID.String(),
		Number:       room.Number,
		TotalRows:    room.TotalRows,
		VIPRows:      room.VIPRows,
		Columns:      room.Columns,
		ScreeningIDs: screeningIDs,
	}
}
