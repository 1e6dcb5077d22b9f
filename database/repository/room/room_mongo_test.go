package roomRepo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPriceFilter(t *testing.T) {
	min, max := 50.0, 200.0

	cases := []struct {
		name     string
		minPrice *float64
		maxPrice *float64
		want     bson.M
	}{
		{"no bounds", nil, nil, bson.M{}},
		{"min only", &min, nil, bson.M{"price": bson.M{"$gte": 50.0}}},
		{"max only", nil, &max, bson.M{"price": bson.M{"$lte": 200.0}}},
		{"both bounds", &min, &max, bson.M{"price": bson.M{"$gte": 50.0, "$lte": 200.0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := priceFilter(tc.minPrice, tc.maxPrice)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
