package request

type CreatePlaceRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
}

type UpdatePlaceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type ListPlacesRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type NearbyRequest struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lng" binding:"required"`
	Distance  *float64 `form:"distance" binding:"required"`
	Unit      string   `form:"unit"`
	Limit     int      `form:"limit" binding:"omitempty,min=1"`
}
