package services

import (
	"fmt"

	"github.com/yishak-cs/campus-meals/internal/catalog"
	"github.com/yishak-cs/campus-meals/internal/models"
)

func ptr(v float64) *float64 { return &v }

// scriptedRand returns the queued values in order and then zeros
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// wideCatalog has nine restaurants; the last one has no items
func wideCatalog() *catalog.Catalog {
	var records []models.RestaurantRecord
	for r := 0; r < 8; r++ {
		rec := models.RestaurantRecord{Restaurant: fmt.Sprintf("R%d", r)}
		for i := 0; i < 3; i++ {
			rec.Items = append(rec.Items, models.RawItem{
				Name:         fmt.Sprintf("R%d-item%d", r, i),
				Price:        ptr(float64(5 + i)),
				CaloriesKcal: ptr(float64(300 + 10*i)),
			})
		}
		records = append(records, rec)
	}
	records = append(records, models.RestaurantRecord{Restaurant: "Empty"})
	return catalog.Load(records, nil)
}

func smallCatalog() *catalog.Catalog {
	return catalog.Load([]models.RestaurantRecord{
		{Restaurant: "A", Items: []models.RawItem{{Name: "a1", Price: ptr(5), CaloriesKcal: ptr(400), ProteinG: ptr(30), FatG: ptr(10)}, {Name: "a2"}}},
		{Restaurant: "B", Items: []models.RawItem{{Name: "b1", Price: ptr(7.49), CaloriesKcal: ptr(430), ProteinG: ptr(29), FatG: ptr(11)}}},
		{Restaurant: "C", Items: []models.RawItem{{Name: "c1", Price: ptr(6.99), CaloriesKcal: ptr(270), ProteinG: ptr(21), FatG: ptr(4)}}},
	}, catalog.NewLogoTable(nil, "default.png"))
}
