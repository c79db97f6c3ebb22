package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"WhereToGo-App/internal/domain/model"
)

// CalculateDistanceMeters は2地点間の大圏距離をhaversineで計算する (メートル)
func CalculateDistanceMeters(p1, p2 model.LatLng) float64 {
	from := orb.Point{p1.Lng, p1.Lat}
	to := orb.Point{p2.Lng, p2.Lat}
	return geo.DistanceHaversine(from, to)
}

// CalculateDistanceToPlace はユーザー座標からスポットまでの距離を計算する (メートル)
func CalculateDistanceToPlace(userLocation model.LatLng, place *model.Place) float64 {
	return CalculateDistanceMeters(userLocation, place.Location)
}
