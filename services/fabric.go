package services

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// Fabric is a named price list for the product catalog; the record unit
// stored and synchronized through the fabrics collection. ID is the opaque
// identity assigned by the store. Name doubles as the deletion confirmation
// phrase.
type Fabric struct {
	ID     string
	Name   string
	Prices PriceTable
}

// FabricFromRecord maps a fabrics record onto a Fabric. A malformed or
// missing prices field degrades to an empty table; every read path defaults
// absent product keys to {0,0} anyway.
func FabricFromRecord(r *core.Record) Fabric {
	var prices PriceTable
	if err := r.UnmarshalJSONField("prices", &prices); err != nil {
		log.Printf("fabric: record %s has unreadable prices: %v", r.Id, err)
		prices = PriceTable{}
	}
	return Fabric{
		ID:     r.Id,
		Name:   r.GetString("name"),
		Prices: prices,
	}
}
