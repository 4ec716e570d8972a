package entity

import "github.com/google/uuid"

// Room describes a physical auditorium. Rows 0..VIPRows-1 are the VIP
// band and carry the higher seat price. Geometry is fixed once created;
// there is no resize operation.
type Room struct {
	Base
	Number       int         `db:"room_number"`
	TotalRows    int         `db:"total_rows"`
	VIPRows      int         `db:"vip_rows"`
	Columns      int         `db:"columns"`
	ScreeningIDs []uuid.UUID `db:"screening_ids"`
}

// ValidateLayout checks the geometry invariants: non-negative dimensions
// and VIPRows <= TotalRows.
func ValidateLayout(totalRows, vipRows, columns int) error {
	if totalRows < 0 {
		return &ValidationError{Field: "total_rows", Reason: "must not be negative"}
	}
	if columns < 0 {
		return &ValidationError{Field: "columns", Reason: "must not be negative"}
	}
	if vipRows < 0 {
		return &ValidationError{Field: "vip_rows", Reason: "must not be negative"}
	}
	if vipRows > totalRows {
		return &ValidationError{Field: "vip_rows", Reason: "VIP rows exceed total rows"}
	}
	return nil
}

func (r *Room) IsVIPRow(row int) bool {
	return row >= 0 && row < r.VIPRows
}

// HasScreening reports whether the screening is already assigned to this room.
func (r *Room) HasScreening(id uuid.UUID) bool {
	for _, sid := range r.ScreeningIDs {
		if sid == id {
			return true
		}
	}
	return false
}
