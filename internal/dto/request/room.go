package request

type RoomRequest struct {
	Number    int `json:"number" validate:"required,min=1,max=999"`
	TotalRows int `json:"total_rows" validate:"required,min=1,max=50"`
	VIPRows   int `json:"vip_rows" validate:"min=0,max=50"`
	Columns   int `json:"columns" validate:"required,min=1,max=50"`
}
