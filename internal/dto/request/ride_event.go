package request

type RideEventRequest struct {
	RideID      *int64 `json:"id_ride" validate:"required"`
	Description string `json:"description" validate:"required,max=150"`
}

type RideEventPatchRequest struct {
	RideID      *int64  `json:"id_ride"`
	Description *string `json:"description" validate:"omitnil,min=1,max=150"`
}

func (r RideEventRequest) AsPatch() RideEventPatchRequest {
	return RideEventPatchRequest{
		RideID:      r.RideID,
		Description: &r.Description,
	}
}
