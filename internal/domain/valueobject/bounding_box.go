package valueobject

// BoundingBox is a latitude/longitude rectangle in degrees. MinLng greater
// than MaxLng means the box wraps across the antimeridian.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(minLat, maxLat, minLng, maxLng float64) *BoundingBox {
	return &BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
	}
}

// NewBoundingBoxAround encloses every point within distance of center.
func NewBoundingBoxAround(center GeoPoint, distance float64, opts BoundingOptions) (*BoundingBox, error) {
	sw, ne, err := center.BoundingCoordinates(distance, opts)
	if err != nil {
		return nil, err
	}
	return NewBoundingBox(sw.Latitude(), ne.Latitude(), sw.Longitude(), ne.Longitude()), nil
}

func (bb *BoundingBox) IsValid() bool {
	return bb.MinLat <= bb.MaxLat &&
		bb.MinLat >= -90 && bb.MaxLat <= 90 &&
		bb.MinLng >= -180 && bb.MinLng <= 180 &&
		bb.MaxLng >= -180 && bb.MaxLng <= 180
}

func (bb *BoundingBox) CrossesAntimeridian() bool {
	return bb.MinLng > bb.MaxLng
}

func (bb *BoundingBox) Contains(lat, lng float64) bool {
	if lat < bb.MinLat || lat > bb.MaxLat {
		return false
	}
	if bb.CrossesAntimeridian() {
		return lng >= bb.MinLng || lng <= bb.MaxLng
	}
	return lng >= bb.MinLng && lng <= bb.MaxLng
}

func (bb *BoundingBox) ContainsPoint(p GeoPoint) bool {
	return p.IsValid() && bb.Contains(p.Latitude(), p.Longitude())
}

// Corners returns the south-west and north-east corners.
func (bb *BoundingBox) Corners() (sw, ne GeoPoint, err error) {
	if sw, err = NewGeoPoint(bb.MinLat, bb.MinLng); err != nil {
		return GeoPoint{}, GeoPoint{}, err
	}
	if ne, err = NewGeoPoint(bb.MaxLat, bb.MaxLng); err != nil {
		return GeoPoint{}, GeoPoint{}, err
	}
	return sw, ne, nil
}
