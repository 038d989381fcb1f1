package request

type ToggleContactRequest struct {
	OwnerId   string `json:"owner_id"`
	ContactId string `json:"contact_id" binding:"required"`
	// BelievedState 调用方最后一次渲染时认为关系是否存在，只作提示
	BelievedState bool `json:"believed_state"`
}

type GetContactStatusRequest struct {
	OwnerId   string `json:"owner_id"`
	ContactId string `json:"contact_id" binding:"required"`
}

type GetContactListRequest struct {
	OwnerId string `json:"owner_id"`
}
