package request

type DistanceRequest struct {
	FromLat *float64 `form:"from_lat" binding:"required"`
	FromLng *float64 `form:"from_lng" binding:"required"`
	ToLat   *float64 `form:"to_lat" binding:"required"`
	ToLng   *float64 `form:"to_lng" binding:"required"`
	Unit    string   `form:"unit"`
}

type BoundsRequest struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lng" binding:"required"`
	Distance  *float64 `form:"distance" binding:"required"`
	Unit      string   `form:"unit"`
	// Radius overrides the earth radius of Unit when positive.
	Radius *float64 `form:"radius"`
}

type ConvertRequest struct {
	Value *float64 `form:"value" binding:"required"`
	From  string   `form:"from" binding:"required"`
	To    string   `form:"to" binding:"required"`
}
